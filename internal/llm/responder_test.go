package llm

import (
	"context"
	"testing"
	"time"

	"golang.org/x/time/rate"

	"leadgate/internal/cache"
)

// MockProvider implements the Provider interface for testing
type MockProvider struct {
	name      string
	available bool
	response  *CompletionResponse
	err       error
	calls     int
}

func (m *MockProvider) Name() string {
	return m.name
}

func (m *MockProvider) Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.response, nil
}

func (m *MockProvider) IsAvailable(ctx context.Context) bool {
	return m.available
}

type mockError struct {
	msg string
}

func (e *mockError) Error() string {
	return e.msg
}

func TestNewResponder_DisabledProvider(t *testing.T) {
	config := Config{
		Provider: "", // Empty = disabled
	}

	responder, err := NewResponder(config)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if responder.IsEnabled() {
		t.Error("Expected responder to be disabled")
	}

	if responder.ProviderName() != "" {
		t.Error("Expected empty provider name when disabled")
	}

	text, ok := responder.Respond(context.Background(), "system", "query")
	if ok || text != "" {
		t.Errorf("Expected empty result when disabled, got %q ok=%v", text, ok)
	}
}

func TestNewResponder_UnknownProvider(t *testing.T) {
	if _, err := NewResponder(Config{Provider: "duckduckgo"}); err == nil {
		t.Error("Expected error for unknown provider")
	}
}

func TestResponder_Respond_ProviderUnavailable(t *testing.T) {
	responder := &Responder{
		provider: &MockProvider{name: "test-provider", available: false},
		config:   Config{},
	}

	text, ok := responder.Respond(context.Background(), "system", "query")
	if ok {
		t.Error("Expected ok=false when provider unavailable")
	}
	if text != "" {
		t.Errorf("Expected empty text, got %q", text)
	}
}

func TestResponder_Respond_ProviderError(t *testing.T) {
	responder := &Responder{
		provider: &MockProvider{
			name:      "test-provider",
			available: true,
			err:       &mockError{msg: "API rate limit exceeded"},
		},
		config: Config{},
	}

	// Errors must degrade, never propagate
	text, ok := responder.Respond(context.Background(), "system", "query")
	if ok {
		t.Error("Expected ok=false on provider error")
	}
	if text != "" {
		t.Errorf("Expected empty text on error, got %q", text)
	}
}

func TestResponder_Respond_EmptyCompletion(t *testing.T) {
	responder := &Responder{
		provider: &MockProvider{
			name:      "test-provider",
			available: true,
			response:  &CompletionResponse{Text: ""},
		},
		config: Config{},
	}

	if _, ok := responder.Respond(context.Background(), "system", "query"); ok {
		t.Error("Expected ok=false for empty completion text")
	}
}

func TestResponder_Respond_Success(t *testing.T) {
	responder := &Responder{
		provider: &MockProvider{
			name:      "test-provider",
			available: true,
			response: &CompletionResponse{
				Text:       "The clubhouse spans 50,000 sq. ft.",
				Model:      "test-model",
				TokensUsed: 42,
			},
		},
		config: Config{Model: "test-model"},
	}

	text, ok := responder.Respond(context.Background(), "system", "tell me about the clubhouse")
	if !ok {
		t.Fatal("Expected ok=true")
	}
	if text != "The clubhouse spans 50,000 sq. ft." {
		t.Errorf("Unexpected response text: %q", text)
	}
}

func TestResponder_Respond_CachesCompletions(t *testing.T) {
	provider := &MockProvider{
		name:      "test-provider",
		available: true,
		response:  &CompletionResponse{Text: "cached answer"},
	}

	responder := (&Responder{
		provider: provider,
		config:   Config{},
	}).WithCache(cache.NewMemoryCache(time.Minute))

	for i := 0; i < 3; i++ {
		text, ok := responder.Respond(context.Background(), "system", "same query")
		if !ok || text != "cached answer" {
			t.Fatalf("call %d: expected cached answer, got %q ok=%v", i, text, ok)
		}
	}

	if provider.calls != 1 {
		t.Errorf("Expected 1 provider call with caching, got %d", provider.calls)
	}
}

func TestResponder_Respond_LimiterCancellation(t *testing.T) {
	responder := (&Responder{
		provider: &MockProvider{name: "test-provider", available: true, response: &CompletionResponse{Text: "x"}},
		config:   Config{},
	}).WithLimiter(rate.NewLimiter(rate.Every(time.Hour), 1))

	ctx, cancel := context.WithCancel(context.Background())

	// First call consumes the burst token
	if _, ok := responder.Respond(ctx, "system", "first"); !ok {
		t.Fatal("Expected first call to succeed")
	}

	// Second call would block on the limiter; cancellation must degrade to ok=false
	cancel()
	if _, ok := responder.Respond(ctx, "system", "second"); ok {
		t.Error("Expected ok=false when limiter wait is cancelled")
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Provider != "" {
		t.Error("Expected provider disabled by default")
	}
	if config.Timeout != 30 {
		t.Errorf("Expected 30s timeout, got %d", config.Timeout)
	}
	if config.MaxTokens != 500 {
		t.Errorf("Expected 500 max tokens, got %d", config.MaxTokens)
	}
}
