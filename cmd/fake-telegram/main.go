// Command fake-telegram is a local stand-in for the Telegram Bot API. Point TELEGRAM_API_URL at it
// to see the calls the autoresponder makes without a real bot.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"strings"

	"github.com/rs/zerolog"
)

func botAPIHandler(logger zerolog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Path is /bot<token>/<method>.
		parts := strings.Split(strings.TrimPrefix(r.URL.Path, "/"), "/")
		if len(parts) != 2 || !strings.HasPrefix(parts[0], "bot") {
			http.Error(w, `{"ok":false,"error_code":404,"description":"Not Found"}`, http.StatusNotFound)
			return
		}
		method := parts[1]

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			http.Error(w, `{"ok":false,"error_code":400,"description":"Bad Request: invalid payload"}`, http.StatusBadRequest)
			return
		}
		logger.Info().Str("method", method).Interface("payload", payload).Msg("Bot API call received")

		w.Header().Set("Content-Type", "application/json")
		if method == "sendMessage" {
			resp := map[string]any{
				"ok": true,
				"result": map[string]any{
					"message_id": 1,
					"date":       0,
					"chat":       map[string]any{"id": payload["chat_id"], "type": "private"},
					"text":       payload["text"],
				},
			}
			_ = json.NewEncoder(w).Encode(resp)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true,"result":true}`))
	}
}

func main() {
	addr := flag.String("addr", ":8081", "listen address")
	flag.Parse()

	logger := zerolog.New(os.Stdout).With().Timestamp().Str("app", "fake-telegram").Logger()
	http.HandleFunc("/", botAPIHandler(logger))
	logger.Info().Str("addr", *addr).Msg("Fake Telegram Bot API listening")
	if err := http.ListenAndServe(*addr, nil); err != nil { //nolint:gosec // local development tool
		logger.Fatal().Err(err).Msg("Fake Telegram Bot API failed")
	}
}
