package agent

import (
	"context"

	"leadgate/internal/llm"
	"leadgate/internal/model"
)

// UnknownRoleResponse is returned when a query arrives with a role tag
// that has no registered profile.
const UnknownRoleResponse = "Unknown role."

// Router selects a role-bound agent for each query and enforces the
// guard-before-answer ordering.
type Router struct {
	registry  *Registry
	responder *llm.Responder // shared across agents, may be nil
}

// NewRouter creates a router over the given registry. responder may be
// nil to disable external expansion entirely.
func NewRouter(registry *Registry, responder *llm.Responder) *Router {
	return &Router{
		registry:  registry,
		responder: responder,
	}
}

// Route processes one query under the given role tag. An unrecognized
// role yields the unknown-role result immediately, with no violation.
// Otherwise the profile's agent guards the query first; only clean
// queries reach the answer path.
func (r *Router) Route(ctx context.Context, role, query string) model.RouteResult {
	profile, ok := r.registry.Lookup(role)
	if !ok {
		return model.RouteResult{Response: UnknownRoleResponse}
	}

	a := NewAgent(profile, r.responder)

	if refusal, violated, term := a.Guard(query); violated {
		return model.RouteResult{
			Response:  refusal,
			Violation: true,
			Term:      term,
		}
	}

	return model.RouteResult{Response: a.Answer(ctx, query)}
}
