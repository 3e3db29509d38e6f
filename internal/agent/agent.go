package agent

import (
	"context"
	"fmt"
	"strings"

	"leadgate/internal/llm"
	"leadgate/internal/model"
)

// Agent answers free-text queries strictly within the bounds of one role
// profile. There is one agent type for all roles; behavior differences
// live entirely in the profile data.
type Agent struct {
	profile   model.RoleProfile
	responder *llm.Responder // optional external expansion, may be nil
}

// NewAgent creates an agent bound to the given profile. responder may be
// nil, in which case unanswerable queries get the canned fallback.
func NewAgent(profile model.RoleProfile, responder *llm.Responder) *Agent {
	return &Agent{
		profile:   profile,
		responder: responder,
	}
}

// Guard checks the query against the profile's banned terms. Matching is
// plain substring over the lowercased query, in the order the terms are
// declared; the first hit wins. Word boundaries are intentionally not
// considered, so a banned term embedded in a longer word still refuses.
// Guard must run before any answer path is considered.
func (a *Agent) Guard(query string) (string, bool, string) {
	q := strings.ToLower(query)

	for _, term := range a.profile.Banned {
		if strings.Contains(q, term) {
			refusal := fmt.Sprintf(
				"SECURITY ALERT: I am authorized to share details only regarding %s. I am strictly restricted from providing information on '%s'.",
				strings.Join(a.profile.Topics(), ", "), term,
			)
			return refusal, true, term
		}
	}

	return "", false, ""
}

// Answer produces a response for a query that has already passed Guard.
// Resolution order: exact topic match, external expansion, canned
// fallback. Topic matching is substring over the lowercased query with
// topics checked in sorted order for determinism.
func (a *Agent) Answer(ctx context.Context, query string) string {
	q := strings.ToLower(query)

	// 1. Exact topic match
	for _, topic := range a.profile.Topics() {
		if strings.Contains(q, topic) {
			return a.attributed(a.profile.Knowledge[topic])
		}
	}

	// 2. External expansion; any failure falls through silently
	if a.responder != nil && a.responder.IsEnabled() {
		if text, ok := a.responder.Respond(ctx, BuildInstruction(a.profile), query); ok {
			return a.attributed(text)
		}
	}

	// 3. Canned fallback
	return a.attributed(fmt.Sprintf(
		"I can provide clear information about %s. Could you please repeat your question using one of these keywords so I can assist you better?",
		strings.Join(a.profile.Topics(), ", "),
	))
}

// attributed prefixes a response with the role's identity label
func (a *Agent) attributed(text string) string {
	return fmt.Sprintf("[%s] %s", a.profile.Identity, text)
}
