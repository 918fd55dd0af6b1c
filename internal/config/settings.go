package config

import "time"

// Settings contains the application config
type Settings struct {
	Port        int    `env:"PORT"`
	MonPort     int    `env:"MON_PORT"`
	EnablePprof bool   `env:"ENABLE_PPROF"`
	LogLevel    string `env:"LOG_LEVEL"`
	ServiceName string `env:"SERVICE_NAME"`

	BotToken       string `env:"BOT_TOKEN"`
	OwnerID        string `env:"OWNER_ID"`
	WebhookURL     string `env:"WEBHOOK_URL"`
	TelegramAPIURL string `env:"TELEGRAM_API_URL"`

	SaveLocal           bool          `env:"SAVE_LOCAL"`
	MessagesLogPath     string        `env:"MESSAGES_LOG_PATH"`
	ResponsesConfigPath string        `env:"RESPONSES_CONFIG_PATH"`
	DedupTTL            time.Duration `env:"DEDUP_TTL" envDefault:"10m"`
}

// ApplyDefaults fills in values that were not set in the environment.
func (s *Settings) ApplyDefaults() {
	if s.Port == 0 {
		s.Port = 3000
	}
	if s.MonPort == 0 {
		s.MonPort = 8888
	}
	if s.LogLevel == "" {
		s.LogLevel = "info"
	}
	if s.ServiceName == "" {
		s.ServiceName = "business-autoresponder"
	}
	if s.MessagesLogPath == "" {
		s.MessagesLogPath = "messages.log"
	}
	if s.ResponsesConfigPath == "" {
		s.ResponsesConfigPath = "config.json"
	}
}
