package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"leadgate/internal/llm"
	"leadgate/internal/model"
)

// scriptedProvider implements llm.Provider for testing
type scriptedProvider struct {
	available bool
	text      string
	err       error
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llm.CompletionResponse{Text: p.text}, nil
}

func (p *scriptedProvider) IsAvailable(ctx context.Context) bool { return p.available }

func profileByRole(t *testing.T, role string) model.RoleProfile {
	t.Helper()
	for _, p := range DefaultProfiles() {
		if p.Role == role {
			return p
		}
	}
	t.Fatalf("no default profile for role %s", role)
	return model.RoleProfile{}
}

func TestAgent_Guard_BannedTermRefused(t *testing.T) {
	a := NewAgent(profileByRole(t, "CHANNEL_PARTNER"), nil)

	refusal, violated, term := a.Guard("what is the pricing for a 2BHK")
	if !violated {
		t.Fatal("Expected violation for banned term")
	}
	if term != "pricing" {
		t.Errorf("Expected violating term 'pricing', got '%s'", term)
	}
	if !strings.Contains(refusal, "'pricing'") {
		t.Errorf("Expected refusal to name the violating term, got: %s", refusal)
	}
	// Refusal names the allowed topic set
	if !strings.Contains(refusal, "commission") || !strings.Contains(refusal, "payout") {
		t.Errorf("Expected refusal to list allowed topics, got: %s", refusal)
	}
}

func TestAgent_Guard_CleanQueryPasses(t *testing.T) {
	a := NewAgent(profileByRole(t, "BUYER"), nil)

	refusal, violated, term := a.Guard("tell me about the emi options")
	if violated {
		t.Errorf("Expected no violation, got term '%s'", term)
	}
	if refusal != "" {
		t.Errorf("Expected empty refusal, got: %s", refusal)
	}
}

func TestAgent_Guard_CaseInsensitive(t *testing.T) {
	a := NewAgent(profileByRole(t, "BUYER"), nil)

	_, violated, term := a.Guard("What COMMISSION do partners get?")
	if !violated || term != "commission" {
		t.Errorf("Expected violation on 'commission' regardless of case, got violated=%v term=%s", violated, term)
	}
}

func TestAgent_Guard_SubstringInsideLongerWord(t *testing.T) {
	// Matching is substring, not word-boundary: "emirates" contains "emi"
	a := NewAgent(profileByRole(t, "SITE_VISIT"), nil)

	_, violated, term := a.Guard("I'm flying in from the emirates")
	if !violated || term != "emi" {
		t.Errorf("Expected substring match on 'emi', got violated=%v term=%s", violated, term)
	}
}

func TestAgent_Guard_FirstDeclaredTermWins(t *testing.T) {
	profile := model.RoleProfile{
		Role:      "TEST",
		Identity:  "Tester",
		Knowledge: map[string]string{"alpha": "a"},
		Banned:    []string{"cost", "pricing"},
	}
	a := NewAgent(profile, nil)

	_, violated, term := a.Guard("pricing and cost please")
	if !violated || term != "cost" {
		t.Errorf("Expected first declared banned term 'cost' to win, got '%s'", term)
	}
}

func TestAgent_Answer_ExactTopicMatch(t *testing.T) {
	profile := profileByRole(t, "BUYER")
	a := NewAgent(profile, nil)

	response := a.Answer(context.Background(), "tell me about the emi options")
	if !strings.Contains(response, profile.Knowledge["emi"]) {
		t.Errorf("Expected the fixed emi text, got: %s", response)
	}
	if !strings.Contains(response, "[Residential Sales Expert]") {
		t.Errorf("Expected response attributed to the role identity, got: %s", response)
	}
}

func TestAgent_Answer_ExactMatchBeatsExternal(t *testing.T) {
	profile := profileByRole(t, "BUYER")
	responder := llm.NewResponderWithProvider(&scriptedProvider{
		available: true,
		text:      "external answer that must not be used",
	}, llm.Config{})

	a := NewAgent(profile, responder)

	response := a.Answer(context.Background(), "what about booking")
	if !strings.Contains(response, profile.Knowledge["booking"]) {
		t.Errorf("Expected fixed booking text to take precedence, got: %s", response)
	}
	if strings.Contains(response, "external answer") {
		t.Error("External responder must not be consulted when a topic matches")
	}
}

func TestAgent_Answer_ExternalExpansion(t *testing.T) {
	profile := profileByRole(t, "BUYER")
	responder := llm.NewResponderWithProvider(&scriptedProvider{
		available: true,
		text:      "We have excellent vastu-compliant layouts.",
	}, llm.Config{})

	a := NewAgent(profile, responder)

	response := a.Answer(context.Background(), "do you have vastu compliant flats")
	if !strings.Contains(response, "vastu-compliant layouts") {
		t.Errorf("Expected external expansion to be used, got: %s", response)
	}
	if !strings.Contains(response, "[Residential Sales Expert]") {
		t.Errorf("Expected attribution on external answer, got: %s", response)
	}
}

func TestAgent_Answer_ExternalFailureFallsBack(t *testing.T) {
	profile := profileByRole(t, "BUYER")

	cases := map[string]*scriptedProvider{
		"unavailable": {available: false, text: "x"},
		"erroring":    {available: true, err: errors.New("boom")},
		"empty":       {available: true, text: ""},
	}

	for name, provider := range cases {
		responder := llm.NewResponderWithProvider(provider, llm.Config{})
		a := NewAgent(profile, responder)

		response := a.Answer(context.Background(), "do you allow pets")
		if !strings.Contains(response, "Could you please repeat your question") {
			t.Errorf("%s: expected canned fallback, got: %s", name, response)
		}
	}
}

func TestAgent_Answer_NoResponderFallback(t *testing.T) {
	profile := profileByRole(t, "ENQUIRY")
	a := NewAgent(profile, nil)

	response := a.Answer(context.Background(), "something entirely unrelated")
	if !strings.Contains(response, "Could you please repeat your question") {
		t.Errorf("Expected canned fallback, got: %s", response)
	}
	// Fallback lists the allowed topics
	if !strings.Contains(response, "developer") || !strings.Contains(response, "legacy") {
		t.Errorf("Expected fallback to list allowed topics, got: %s", response)
	}
}

func TestAgent_Answer_DeterministicTopicSelection(t *testing.T) {
	profile := model.RoleProfile{
		Role:     "TEST",
		Identity: "Tester",
		Knowledge: map[string]string{
			"zeta":  "zeta text",
			"alpha": "alpha text",
		},
	}
	a := NewAgent(profile, nil)

	// Both topics occur; sorted order means "alpha" wins every time
	for i := 0; i < 10; i++ {
		response := a.Answer(context.Background(), "alpha and zeta")
		if !strings.Contains(response, "alpha text") {
			t.Fatalf("Expected deterministic selection of 'alpha', got: %s", response)
		}
	}
}

func TestBuildInstruction_Bounded(t *testing.T) {
	profile := profileByRole(t, "SITE_VISIT")

	instruction := BuildInstruction(profile)

	if !strings.Contains(instruction, "Site Visit Coordinator") {
		t.Error("Expected instruction to carry the role identity")
	}
	for _, topic := range profile.Topics() {
		if !strings.Contains(instruction, topic) {
			t.Errorf("Expected instruction to list topic '%s'", topic)
		}
	}
	if !strings.Contains(instruction, "DO NOT mention anything about") {
		t.Error("Expected instruction to forbid banned topics")
	}
	if !strings.Contains(instruction, "commission") {
		t.Error("Expected banned list to appear in the instruction")
	}
	if !strings.Contains(instruction, profile.Knowledge["shuttle"]) {
		t.Error("Expected knowledge content to appear in the instruction")
	}
}
