package updatecache

import (
	"strconv"
	"time"

	"github.com/patrickmn/go-cache"
)

// Cache remembers recently delivered updates so a redelivered webhook call is acknowledged once.
type Cache struct {
	cache *cache.Cache
}

// New creates a cache that forgets keys after ttl. A non-positive ttl returns nil,
// which disables redelivery checks.
func New(ttl time.Duration) *Cache {
	if ttl <= 0 {
		return nil
	}
	return &Cache{
		cache: cache.New(ttl, 2*ttl),
	}
}

// FirstDelivery records key and reports whether it had not been seen before.
// Empty keys are never deduplicated.
func (c *Cache) FirstDelivery(key string) bool {
	if c == nil || key == "" {
		return true
	}
	// Add fails when the key is already present and unexpired.
	return c.cache.Add(key, struct{}{}, cache.DefaultExpiration) == nil
}

// Key builds the redelivery key for an update. The update id is preferred; otherwise the
// business connection, chat and message id identify the message, since message ids are
// only unique within a chat.
func Key(updateID int64, connectionID, chatID string, messageID int64) string {
	if updateID != 0 {
		return "update:" + strconv.FormatInt(updateID, 10)
	}
	if connectionID == "" || chatID == "" || messageID == 0 {
		return ""
	}
	return "message:" + connectionID + ":" + chatID + ":" + strconv.FormatInt(messageID, 10)
}
