package llm

import (
	"context"

	"golang.org/x/time/rate"

	"leadgate/internal/cache"
)

// Responder wraps an optional Provider behind a fail-soft interface.
// Every failure mode (disabled, unavailable, API error, empty output)
// collapses to ok=false so callers can fall through to their local
// fallback without ever seeing an error.
type Responder struct {
	provider Provider
	config   Config
	cache    cache.Cache   // optional completion memoization
	limiter  *rate.Limiter // optional bound on external call rate
}

// NewResponder creates a responder from configuration. An empty provider
// name yields a disabled responder, not an error.
func NewResponder(config Config) (*Responder, error) {
	provider, err := NewProvider(config)
	if err != nil {
		return nil, err
	}

	return &Responder{
		provider: provider,
		config:   config,
	}, nil
}

// NewResponderWithProvider creates a responder around an existing
// provider instance
func NewResponderWithProvider(provider Provider, config Config) *Responder {
	return &Responder{
		provider: provider,
		config:   config,
	}
}

// WithCache attaches a completion cache
func (r *Responder) WithCache(c cache.Cache) *Responder {
	r.cache = c
	return r
}

// WithLimiter attaches a rate limiter applied before each external call
func (r *Responder) WithLimiter(l *rate.Limiter) *Responder {
	r.limiter = l
	return r
}

// IsEnabled reports whether an external provider is configured
func (r *Responder) IsEnabled() bool {
	return r.provider != nil
}

// ProviderName returns the configured provider's name, or "" when disabled
func (r *Responder) ProviderName() string {
	if r.provider == nil {
		return ""
	}
	return r.provider.Name()
}

// Respond asks the external provider for a completion. Returns the text
// and true on success; "" and false on any failure. It never returns an
// error: external-collaborator failure must degrade, not propagate.
func (r *Responder) Respond(ctx context.Context, system, prompt string) (string, bool) {
	if r.provider == nil {
		return "", false
	}

	key := cache.Key(r.provider.Name(), r.config.Model, system, prompt)
	if r.cache != nil {
		if cached, found := r.cache.Get(key); found {
			return string(cached), true
		}
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			return "", false
		}
	}

	if !r.provider.IsAvailable(ctx) {
		return "", false
	}

	resp, err := r.provider.Complete(ctx, CompletionRequest{
		System:    system,
		Prompt:    prompt,
		Model:     r.config.Model,
		MaxTokens: r.config.MaxTokens,
	})
	if err != nil || resp == nil || resp.Text == "" {
		return "", false
	}

	if r.cache != nil {
		_ = r.cache.Set(key, []byte(resp.Text), 0)
	}

	return resp.Text, true
}
