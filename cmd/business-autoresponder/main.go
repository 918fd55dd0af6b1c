package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/DIMO-Network/business-autoresponder/internal/app"
	"github.com/DIMO-Network/business-autoresponder/internal/config"
	"github.com/DIMO-Network/server-garage/pkg/env"
	"github.com/DIMO-Network/server-garage/pkg/logging"
	"github.com/DIMO-Network/server-garage/pkg/monserver"
	"github.com/DIMO-Network/server-garage/pkg/runner"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

func main() {
	envFile := flag.String("env-file", ".env", "path to env file")
	flag.Parse()

	logger := logging.GetAndSetDefaultLogger("business-autoresponder")

	settings, err := loadSettings(*envFile)
	if err != nil {
		logger.Fatal().Err(err).Str("env_file", *envFile).Msg("Invalid settings")
	}
	logger = logging.GetAndSetDefaultLogger(settings.ServiceName)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, settings, logger); err != nil {
		logger.Fatal().Err(err).Msg("Business autoresponder stopped with an error")
	}
	logger.Info().Msg("Business autoresponder stopped")
}

// loadSettings reads the environment (and the optional env file), applies defaults and
// sets the global log level.
func loadSettings(envFile string) (*config.Settings, error) {
	settings, err := env.LoadSettings[config.Settings](envFile)
	if err != nil {
		return nil, fmt.Errorf("could not load settings: %w", err)
	}
	settings.ApplyDefaults()

	level, err := zerolog.ParseLevel(settings.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("could not parse log level %q: %w", settings.LogLevel, err)
	}
	zerolog.SetGlobalLevel(level)
	return &settings, nil
}

// run serves the monitoring and webhook servers until ctx is cancelled or one of them fails.
func run(ctx context.Context, settings *config.Settings, logger zerolog.Logger) error {
	group, groupCtx := errgroup.WithContext(ctx)

	monAddr := ":" + strconv.Itoa(settings.MonPort)
	logger.Info().Str("addr", monAddr).Bool("pprof", settings.EnablePprof).Msg("Starting monitoring server")
	runner.RunHandler(groupCtx, group, monserver.NewMonitoringServer(&logger, settings.EnablePprof), monAddr)

	webhookApp, err := app.CreateServers(groupCtx, settings, logger)
	if err != nil {
		return fmt.Errorf("failed to create servers: %w", err)
	}
	webAddr := ":" + strconv.Itoa(settings.Port)
	logger.Info().Str("addr", webAddr).Msg("Starting webhook server")
	runner.RunFiber(groupCtx, group, webhookApp, webAddr)

	go func() {
		<-ctx.Done()
		logger.Info().Msg("Received signal, shutting down...")
	}()

	return group.Wait()
}
