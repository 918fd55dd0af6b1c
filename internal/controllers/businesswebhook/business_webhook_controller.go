package businesswebhook

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/DIMO-Network/business-autoresponder/internal/clients/telegram"
	"github.com/DIMO-Network/business-autoresponder/internal/responses"
	"github.com/DIMO-Network/business-autoresponder/internal/services/triggermatcher"
	"github.com/DIMO-Network/business-autoresponder/internal/services/updatecache"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// InvalidUpdateMsg is the plain text body returned for payloads without a business message.
const InvalidUpdateMsg = "Invalid update"

// MessagingClient sends replies to the messaging platform.
type MessagingClient interface {
	SendChatAction(ctx context.Context, connectionID string, chatID telegram.ID, action string) error
	SendMessage(ctx context.Context, connectionID string, chatID telegram.ID, text string) error
}

// MessageLog persists raw inbound business messages.
type MessageLog interface {
	Append(ctx context.Context, event json.RawMessage) error
}

// Controller handles business message webhooks and sends automatic replies.
type Controller struct {
	matcher     *triggermatcher.Matcher
	selector    *triggermatcher.Selector
	client      MessagingClient
	messageLog  MessageLog
	updates     *updatecache.Cache
	ownerID     telegram.ID
	typingDelay time.Duration

	wait func(ctx context.Context, d time.Duration)
}

// NewController creates a new Controller. A nil updates cache disables redelivery checks and
// a zero ownerID excludes nobody from automatic replies.
func NewController(cfg *responses.Configuration, selector *triggermatcher.Selector, client MessagingClient,
	messageLog MessageLog, updates *updatecache.Cache, ownerID telegram.ID) *Controller {
	if selector == nil {
		selector = triggermatcher.NewSelector(nil)
	}
	return &Controller{
		matcher:     triggermatcher.NewMatcher(cfg),
		selector:    selector,
		client:      client,
		messageLog:  messageLog,
		updates:     updates,
		ownerID:     ownerID,
		typingDelay: cfg.TypingDelay,
		wait:        sleepContext,
	}
}

// HandleBusinessWebhook godoc
// @Summary      Receive a business message
// @Description  Logs the business message and, when it matches a configured trigger and was not sent by the owner, replies with a canned response after a typing delay.
// @Tags         Webhooks
// @Accept       json
// @Produce      json
// @Param        request  body      BusinessUpdate  true  "Telegram update"
// @Success      200      {object}  Ack             "Acknowledged"
// @Failure      400      "Invalid update"
// @Failure      500      "Internal server error"
// @Router       /business-webhook [post]
func (w *Controller) HandleBusinessWebhook(c *fiber.Ctx) error {
	var update BusinessUpdate
	if err := json.Unmarshal(c.Body(), &update); err != nil && !isTypeError(err) {
		return c.Status(fiber.StatusBadRequest).SendString(InvalidUpdateMsg)
	}
	if !update.hasBusinessMessage() {
		return c.Status(fiber.StatusBadRequest).SendString(InvalidUpdateMsg)
	}
	messagesReceived.Inc()

	ctx := c.UserContext()
	logger := zerolog.Ctx(ctx).With().
		Str("event_id", uuid.NewString()).
		Int64("update_id", update.UpdateID).
		Logger()

	if err := w.messageLog.Append(ctx, update.BusinessMessage); err != nil {
		messageLogFailures.Inc()
		logger.Error().Err(err).Msg("Failed to save business message to log")
	}

	var msg BusinessMessage
	if err := json.Unmarshal(update.BusinessMessage, &msg); err != nil {
		return richerrors.Error{
			ExternalMsg: "Failed to process business message",
			Err:         fmt.Errorf("failed to decode business message: %w", err),
			Code:        fiber.StatusInternalServerError,
		}
	}
	logger = logger.With().Str("business_connection_id", msg.BusinessConnectionID).Logger()

	if !w.updates.FirstDelivery(updatecache.Key(update.UpdateID, msg.BusinessConnectionID, msg.chatID(), msg.MessageID)) {
		repliesTotal.WithLabelValues(outcomeDuplicate).Inc()
		logger.Debug().Msg("Ignoring redelivered business message")
		return c.JSON(Ack{OK: true})
	}

	lang := ""
	if msg.From != nil {
		lang = msg.From.LanguageCode
	}
	rule, ok := w.matcher.Match(msg.Text, lang)
	if !ok {
		repliesTotal.WithLabelValues(outcomeNoMatch).Inc()
		return c.JSON(Ack{OK: true})
	}
	if w.isOwner(msg.From) {
		repliesTotal.WithLabelValues(outcomeOwner).Inc()
		logger.Debug().Msg("Message sent by owner, not replying")
		return c.JSON(Ack{OK: true})
	}
	if msg.Chat == nil || msg.Chat.ID.IsZero() {
		repliesTotal.WithLabelValues(outcomeNoChat).Inc()
		return richerrors.Error{
			ExternalMsg: "Failed to process business message",
			Err:         errors.New("business message has no chat"),
			Code:        fiber.StatusInternalServerError,
		}
	}

	reply := w.selector.Select(rule)
	chatID := msg.Chat.ID

	if err := w.client.SendChatAction(ctx, msg.BusinessConnectionID, chatID, telegram.ChatActionTyping); err != nil {
		logger.Warn().Err(err).Str("chat_id", string(chatID)).Msg("Failed to send typing action")
	}

	w.wait(ctx, w.typingDelay)

	if err := w.client.SendMessage(ctx, msg.BusinessConnectionID, chatID, reply); err != nil {
		repliesTotal.WithLabelValues(outcomeSendFailed).Inc()
		logger.Error().Err(err).Str("chat_id", string(chatID)).Msg("Failed to send reply")
	} else {
		repliesTotal.WithLabelValues(outcomeReplied).Inc()
	}

	return c.JSON(Ack{OK: true, Reply: &reply})
}

// isTypeError reports whether err only describes a field of the wrong type. The decoder
// still fills every other field in that case.
func isTypeError(err error) bool {
	var typeErr *json.UnmarshalTypeError
	return errors.As(err, &typeErr)
}

func (w *Controller) isOwner(from *User) bool {
	if w.ownerID.IsZero() || from == nil {
		return false
	}
	return from.ID == w.ownerID
}

// sleepContext waits for d or until ctx is done. Only the calling request is suspended.
func sleepContext(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
