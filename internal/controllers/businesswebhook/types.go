package businesswebhook

import (
	"bytes"
	"encoding/json"

	"github.com/DIMO-Network/business-autoresponder/internal/clients/telegram"
)

// BusinessUpdate is the subset of a Telegram update delivered to the business webhook.
type BusinessUpdate struct {
	UpdateID int64 `json:"update_id"`
	// BusinessMessage is kept raw so it can be logged verbatim.
	BusinessMessage json.RawMessage `json:"business_message"`
}

// hasBusinessMessage reports whether the update carries a business_message object.
func (u *BusinessUpdate) hasBusinessMessage() bool {
	trimmed := bytes.TrimSpace(u.BusinessMessage)
	return len(trimmed) > 0 && trimmed[0] == '{'
}

// BusinessMessage is a message received on behalf of a connected business account.
type BusinessMessage struct {
	MessageID            int64   `json:"message_id"`
	BusinessConnectionID string  `json:"business_connection_id"`
	Text                 *string `json:"text,omitempty"`
	Chat                 *Chat   `json:"chat,omitempty"`
	From                 *User   `json:"from,omitempty"`
}

func (m *BusinessMessage) chatID() string {
	if m.Chat == nil {
		return ""
	}
	return string(m.Chat.ID)
}

// Chat identifies the conversation a business message belongs to.
type Chat struct {
	ID   telegram.ID `json:"id"`
	Type string      `json:"type,omitempty"`
}

// User is the sender of a business message.
type User struct {
	ID           telegram.ID `json:"id"`
	IsBot        bool        `json:"is_bot,omitempty"`
	Username     string      `json:"username,omitempty"`
	LanguageCode string      `json:"language_code,omitempty"`
}

// Ack is the acknowledgment returned to the platform.
type Ack struct {
	OK    bool    `json:"ok"`
	Reply *string `json:"reply,omitempty"`
}
