package app

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/business-autoresponder/internal/clients/telegram"
	"github.com/DIMO-Network/business-autoresponder/internal/config"
	"github.com/DIMO-Network/business-autoresponder/internal/controllers/businesswebhook"
	"github.com/DIMO-Network/business-autoresponder/internal/responses"
	"github.com/DIMO-Network/business-autoresponder/internal/services/messagelog"
	"github.com/DIMO-Network/business-autoresponder/internal/services/triggermatcher"
	"github.com/DIMO-Network/business-autoresponder/internal/services/updatecache"
	"github.com/DIMO-Network/business-autoresponder/internal/services/webhookregistrar"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
)

type messageLog interface {
	businesswebhook.MessageLog
	Close() error
}

// CreateServers loads the responses configuration, builds the Telegram client and message log,
// registers the webhook with Telegram and returns the fiber app serving it.
func CreateServers(ctx context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	cfg, err := responses.Load(settings.ResponsesConfigPath, &logger)
	if err != nil {
		return nil, fmt.Errorf("failed to load responses: %w", err)
	}
	logger.Info().
		Int("languages", len(cfg.Responses)).
		Str("default_lang", cfg.DefaultLang).
		Dur("typing_delay", cfg.TypingDelay).
		Msg("Loaded responses configuration")

	telegramClient := telegram.New(settings.BotToken, settings.TelegramAPIURL, nil, logger)

	msgLog, err := newMessageLog(settings)
	if err != nil {
		return nil, fmt.Errorf("failed to create message log: %w", err)
	}
	go func() {
		<-ctx.Done()
		if err := msgLog.Close(); err != nil {
			logger.Error().Err(err).Msg("Failed to close message log")
		}
	}()

	// Registration failure is logged by the registrar and does not stop the server.
	_ = webhookregistrar.NewRegistrar(telegramClient, settings.WebhookURL, &logger).Register(ctx)

	controller := businesswebhook.NewController(cfg, triggermatcher.NewSelector(nil), telegramClient, msgLog,
		updatecache.New(settings.DedupTTL), telegram.ParseID(settings.OwnerID))

	return CreateFiberApp(logger, controller), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, controller *businesswebhook.Controller) *fiber.App {
	logger.Info().Msg("Starting Business Autoresponder API...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Business Autoresponder API!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	logger.Info().Msg("Registering routes...")
	app.Post(webhookregistrar.WebhookPath, controller.HandleBusinessWebhook)

	return app
}

func newMessageLog(settings *config.Settings) (messageLog, error) {
	if !settings.SaveLocal {
		return messagelog.Discard{}, nil
	}
	return messagelog.NewFileLog(settings.MessagesLogPath)
}
