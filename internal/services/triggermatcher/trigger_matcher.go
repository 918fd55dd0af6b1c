package triggermatcher

import (
	"math/rand/v2"
	"strings"

	"github.com/DIMO-Network/business-autoresponder/internal/responses"
)

// Matcher finds the response rule whose triggers appear in a message.
type Matcher struct {
	cfg *responses.Configuration
}

// NewMatcher creates a new Matcher over an immutable configuration.
func NewMatcher(cfg *responses.Configuration) *Matcher {
	return &Matcher{cfg: cfg}
}

// Match returns the first rule, in configured order, with any trigger contained in
// the lowercased text. A nil text is matched as the empty string.
func (m *Matcher) Match(text *string, lang string) (*responses.Rule, bool) {
	if m.cfg == nil {
		return nil, false
	}
	normalized := ""
	if text != nil {
		normalized = strings.ToLower(*text)
	}

	rules := m.cfg.Rules(lang)
	for i := range rules {
		for _, trigger := range rules[i].Triggers {
			if strings.Contains(normalized, trigger) {
				return &rules[i], true
			}
		}
	}
	return nil, false
}

// IndexFunc returns an index in [0, n).
type IndexFunc func(n int) int

// Selector picks one reply from a rule.
type Selector struct {
	index IndexFunc
}

// NewSelector creates a Selector. A nil index func selects uniformly at random.
func NewSelector(index IndexFunc) *Selector {
	if index == nil {
		index = rand.IntN
	}
	return &Selector{index: index}
}

// Select picks a reply. A rule without replies yields the empty string.
func (s *Selector) Select(rule *responses.Rule) string {
	if rule == nil || len(rule.Replies) == 0 {
		return ""
	}
	i := s.index(len(rule.Replies))
	if i < 0 || i >= len(rule.Replies) {
		i = 0
	}
	return rule.Replies[i]
}
