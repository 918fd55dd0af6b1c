package webhookregistrar

import (
	"context"
	"errors"
	"net/url"
	"strings"

	"github.com/rs/zerolog"
)

// WebhookPath is the route Telegram delivers business updates to.
const WebhookPath = "/business-webhook"

var errNoBaseURL = errors.New("webhook base URL is empty")

// WebhookSetter registers the callback URL with the platform.
type WebhookSetter interface {
	SetWebhook(ctx context.Context, url string) error
}

// Registrar registers the business webhook once at startup.
type Registrar struct {
	setter  WebhookSetter
	baseURL string
	logger  *zerolog.Logger
}

// NewRegistrar creates a new Registrar.
func NewRegistrar(setter WebhookSetter, baseURL string, logger *zerolog.Logger) *Registrar {
	return &Registrar{
		setter:  setter,
		baseURL: baseURL,
		logger:  logger,
	}
}

// CallbackURL returns the externally reachable webhook URL.
func CallbackURL(baseURL string) (string, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return "", errNoBaseURL
	}
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return "", err
	}
	return baseURL + WebhookPath, nil
}

// Register sends the callback URL to the platform. Failures are logged and returned so
// the caller can decide, but startup is never aborted by the registrar itself.
func (r *Registrar) Register(ctx context.Context) error {
	callbackURL, err := CallbackURL(r.baseURL)
	if err != nil {
		r.logger.Warn().Err(err).Msg("Skipping webhook registration")
		return err
	}
	if err := r.setter.SetWebhook(ctx, callbackURL); err != nil {
		r.logger.Error().Err(err).Str("url", callbackURL).Msg("Error setting webhook")
		return err
	}
	r.logger.Info().Str("url", callbackURL).Msg("Webhook registered")
	return nil
}
