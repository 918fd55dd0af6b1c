package telegram

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/mymmrac/telego"
	tu "github.com/mymmrac/telego/telegoutil"
)

// ChatActionTyping is the chat action shown while a reply is being "typed".
const ChatActionTyping = "typing"

// ID is a platform identity (user or chat) normalized to its canonical string form.
// Telegram sends numeric ids, but the value is accepted as a JSON string too so that
// comparisons never depend on the wire type.
type ID string

// ParseID normalizes a raw identity. Integers lose surrounding whitespace and leading zeros.
func ParseID(raw string) ID {
	raw = strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return ID(strconv.FormatInt(n, 10))
	}
	return ID(raw)
}

// UnmarshalJSON accepts a JSON number or string.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid id: %w", err)
		}
		*id = ParseID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid id: %w", err)
	}
	*id = ParseID(n.String())
	return nil
}

// IsZero reports whether the id is empty.
func (id ID) IsZero() bool {
	return id == ""
}

// ChatID converts the id into a telego chat id. Non-numeric ids are treated as usernames.
func (id ID) ChatID() telego.ChatID {
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil {
		return tu.ID(n)
	}
	username := string(id)
	if username != "" && !strings.HasPrefix(username, "@") {
		username = "@" + username
	}
	return tu.Username(username)
}
