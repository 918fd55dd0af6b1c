package e2e_test

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/DIMO-Network/business-autoresponder/internal/config"
	"github.com/DIMO-Network/business-autoresponder/tests"
)

const defaultResponses = `{
	"responses": {
		"en": [
			{"triggers": ["hello"], "replies": ["hi there"]},
			{"triggers": ["price", "cost"], "replies": ["It is free"]}
		],
		"es": [
			{"triggers": ["hola"], "replies": ["buenas"]}
		]
	},
	"defaultLang": "en",
	"typingDelay": 50
}`

type TestServices struct {
	Telegram *mockTelegramServer
	Settings config.Settings
	LogPath  string
}

func GetTestServices(t *testing.T) *TestServices {
	t.Helper()
	telegram := setupTelegramServer(t)
	logPath := filepath.Join(t.TempDir(), "messages.log")
	settings := config.Settings{
		Port:                3000,
		MonPort:             8888,
		BotToken:            tests.TestBotToken,
		OwnerID:             "1",
		WebhookURL:          "https://autoreply.example.com",
		TelegramAPIURL:      telegram.URL(),
		SaveLocal:           true,
		MessagesLogPath:     logPath,
		ResponsesConfigPath: tests.WriteResponsesConfig(t, defaultResponses),
		DedupTTL:            time.Minute,
	}
	settings.ApplyDefaults()
	return &TestServices{
		Telegram: telegram,
		Settings: settings,
		LogPath:  logPath,
	}
}
