package telegram

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/mymmrac/telego"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

const (
	// DefaultAPIURL is the public Telegram Bot API server.
	DefaultAPIURL = "https://api.telegram.org"

	defaultTimeout = 30 * time.Second
)

var apiFailures = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "telegram_api_failures_total",
	Help: "Number of failed Telegram Bot API calls.",
}, []string{"method"})

// Client sends business replies through the Telegram Bot API.
// Calls are made once: no retries and no backoff.
type Client struct {
	bot    *telego.Bot
	botErr error
}

// New creates a new Client. An empty apiURL uses DefaultAPIURL and a nil httpClient
// gets a client with a 30s timeout. A malformed token does not stop the caller; it is
// logged and every call fails with it instead.
func New(token, apiURL string, httpClient *http.Client, logger zerolog.Logger) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: defaultTimeout,
		}
	}
	bot, err := telego.NewBot(token,
		telego.WithAPIServer(strings.TrimRight(apiURL, "/")),
		telego.WithHTTPClient(httpClient),
		telego.WithLogger(botLogger{logger: logger.With().Str("component", "telego").Logger()}),
	)
	if err != nil {
		err = fmt.Errorf("failed to create telegram bot client: %w", err)
		logger.Error().Err(err).Msg("Telegram calls will fail until the bot token is fixed")
		return &Client{botErr: err}
	}
	return &Client{bot: bot}
}

// SendChatAction shows a chat action (e.g. typing) in a business chat.
func (c *Client) SendChatAction(ctx context.Context, connectionID string, chatID ID, action string) error {
	if c.bot == nil {
		return failure("sendChatAction", c.botErr)
	}
	err := c.bot.SendChatAction(ctx, &telego.SendChatActionParams{
		BusinessConnectionID: connectionID,
		ChatID:               chatID.ChatID(),
		Action:               action,
	})
	if err != nil {
		return failure("sendChatAction", err)
	}
	return nil
}

// SendMessage sends text to a business chat on behalf of the connected account.
// Empty text is sent as-is.
func (c *Client) SendMessage(ctx context.Context, connectionID string, chatID ID, text string) error {
	if c.bot == nil {
		return failure("sendMessage", c.botErr)
	}
	_, err := c.bot.SendMessage(ctx, &telego.SendMessageParams{
		BusinessConnectionID: connectionID,
		ChatID:               chatID.ChatID(),
		Text:                 text,
	})
	if err != nil {
		return failure("sendMessage", err)
	}
	return nil
}

// SetWebhook tells Telegram where to deliver updates.
func (c *Client) SetWebhook(ctx context.Context, url string) error {
	if c.bot == nil {
		return failure("setWebhook", c.botErr)
	}
	err := c.bot.SetWebhook(ctx, &telego.SetWebhookParams{
		URL: url,
	})
	if err != nil {
		return failure("setWebhook", err)
	}
	return nil
}

func failure(method string, err error) error {
	apiFailures.WithLabelValues(method).Inc()
	return richerrors.Error{
		Code:        http.StatusBadGateway,
		ExternalMsg: "telegram " + method + " failed",
		Err:         fmt.Errorf("telegram %s: %w", method, err),
	}
}

// botLogger routes telego's internal logging into zerolog. Debug output from telego
// includes request URLs (and therefore the bot token), so it is only emitted at trace level.
type botLogger struct {
	logger zerolog.Logger
}

func (l botLogger) Debugf(format string, args ...any) {
	l.logger.Trace().Msgf(format, args...)
}

func (l botLogger) Errorf(format string, args ...any) {
	l.logger.Error().Msgf(format, args...)
}
