package classify

import (
	"leadgate/internal/model"
)

// Classifier assigns role tags to raw source values via a static rule
// table. The table is built once and never mutated during a run.
type Classifier struct {
	rules    map[string]string
	fallback string
}

// NewClassifier creates a classifier with the given rule table. Rule keys
// must already be in normalized form (lowercase, single interior spaces).
// An empty fallback role defaults to model.FallbackRole.
func NewClassifier(rules map[string]string, fallback string) *Classifier {
	if fallback == "" {
		fallback = model.FallbackRole
	}
	return &Classifier{
		rules:    rules,
		fallback: fallback,
	}
}

// Classify determines the role for a raw source value.
// It never fails: an absent value yields the fallback role with status
// "missing", an unmapped value the fallback role with "unrecognized".
func (c *Classifier) Classify(rawSource string) (string, model.MatchStatus) {
	cleaned, ok := Normalize(rawSource)
	if !ok {
		return c.fallback, model.StatusMissing
	}

	if role, found := c.rules[cleaned]; found {
		return role, model.StatusMatched
	}

	return c.fallback, model.StatusUnrecognized
}

// Fallback returns the role assigned when no rule matches
func (c *Classifier) Fallback() string {
	return c.fallback
}
