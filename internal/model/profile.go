package model

import "sort"

// RoleProfile defines the knowledge scope and restrictions for one role.
// Profiles are loaded once at startup and never mutated during a run.
type RoleProfile struct {
	Role        string            `json:"role" yaml:"role"`               // Role tag (e.g., "BUYER")
	Identity    string            `json:"identity" yaml:"identity"`       // Human-facing identity label
	Description string            `json:"description,omitempty" yaml:"description,omitempty"`
	Knowledge   map[string]string `json:"knowledge" yaml:"knowledge"`     // Topic keyword -> canned answer text
	Banned      []string          `json:"banned" yaml:"banned"`           // Substrings that trigger a refusal, checked in order
}

// Topics returns the profile's knowledge topic keywords in sorted order.
// Sorted so that answer selection is deterministic when a query contains
// more than one topic keyword.
func (p RoleProfile) Topics() []string {
	topics := make([]string, 0, len(p.Knowledge))
	for topic := range p.Knowledge {
		topics = append(topics, topic)
	}
	sort.Strings(topics)
	return topics
}

// RouteResult is the outcome of routing one query through an agent
type RouteResult struct {
	Response  string `json:"response"`            // Text returned to the user
	Violation bool   `json:"violation"`           // Whether a banned term was detected
	Term      string `json:"term,omitempty"`      // The banned term that triggered the refusal
}
