package responses

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// DefaultLang is used when the configuration file does not name a default language.
const DefaultLang = "en"

// Rule is a set of lowercase trigger substrings and the replies to pick from when one hits.
type Rule struct {
	Triggers []string `json:"triggers"`
	Replies  []string `json:"replies"`
}

// Configuration is the immutable auto-reply configuration loaded at startup.
type Configuration struct {
	Responses   map[string][]Rule
	DefaultLang string
	TypingDelay time.Duration
}

// fileFormat is the on-disk shape. responses is either a flat list of rules
// or an object keyed by language code.
type fileFormat struct {
	Responses   json.RawMessage `json:"responses"`
	DefaultLang string          `json:"defaultLang"`
	TypingDelay int64           `json:"typingDelay"`
}

// Load reads and parses the configuration file at path.
func Load(path string, logger *zerolog.Logger) (*Configuration, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read responses config %q: %w", path, err)
	}
	cfg, err := Parse(data, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to parse responses config %q: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes a configuration document. Rules that can never produce a reply and a
// default language without rules are logged; they only mean no match at runtime.
func Parse(data []byte, logger *zerolog.Logger) (*Configuration, error) {
	var raw fileFormat
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	if raw.TypingDelay < 0 {
		return nil, fmt.Errorf("typingDelay must not be negative, got %d", raw.TypingDelay)
	}

	cfg := &Configuration{
		Responses:   make(map[string][]Rule),
		DefaultLang: strings.ToLower(strings.TrimSpace(raw.DefaultLang)),
		TypingDelay: time.Duration(raw.TypingDelay) * time.Millisecond,
	}
	if cfg.DefaultLang == "" {
		cfg.DefaultLang = DefaultLang
	}

	byLang, err := decodeResponses(raw.Responses, cfg.DefaultLang)
	if err != nil {
		return nil, err
	}
	for lang, rules := range byLang {
		lang = strings.ToLower(strings.TrimSpace(lang))
		normalized := make([]Rule, 0, len(rules))
		for i, rule := range rules {
			if len(rule.Triggers) == 0 {
				logger.Warn().Str("lang", lang).Int("rule", i).Msg("Response rule has no triggers and will never match")
			}
			if len(rule.Replies) == 0 {
				logger.Warn().Str("lang", lang).Int("rule", i).Msg("Response rule has no replies, an empty reply will be sent")
			}
			normalized = append(normalized, normalizeRule(rule))
		}
		cfg.Responses[lang] = normalized
	}
	if len(cfg.Responses[cfg.DefaultLang]) == 0 {
		logger.Warn().Str("default_lang", cfg.DefaultLang).Msg("No response rules for default language")
	}
	return cfg, nil
}

// Rules returns the rule list for lang, falling back to the default language.
func (c *Configuration) Rules(lang string) []Rule {
	if rules, ok := c.Responses[strings.ToLower(lang)]; ok {
		return rules
	}
	return c.Responses[c.DefaultLang]
}

func decodeResponses(data json.RawMessage, defaultLang string) (map[string][]Rule, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] == '[' {
		var rules []Rule
		if err := json.Unmarshal(trimmed, &rules); err != nil {
			return nil, fmt.Errorf("invalid responses list: %w", err)
		}
		return map[string][]Rule{defaultLang: rules}, nil
	}
	var byLang map[string][]Rule
	if err := json.Unmarshal(trimmed, &byLang); err != nil {
		return nil, fmt.Errorf("invalid responses mapping: %w", err)
	}
	return byLang, nil
}

func normalizeRule(rule Rule) Rule {
	triggers := make([]string, len(rule.Triggers))
	for i, trigger := range rule.Triggers {
		triggers[i] = strings.ToLower(trigger)
	}
	replies := make([]string, len(rule.Replies))
	copy(replies, rule.Replies)
	return Rule{Triggers: triggers, Replies: replies}
}
