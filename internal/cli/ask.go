package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"leadgate/internal/agent"
	"leadgate/internal/audit"
	"leadgate/internal/cache"
	"leadgate/internal/llm"
	"leadgate/internal/model"
	"leadgate/internal/store"
)

var (
	askRole        string
	askPhone       string
	classifiedPath string
	profilesPath   string
	auditPath      string
	noAudit        bool
	llmEnabled     bool
	llmProvider    string
	llmModel       string
)

// askCmd represents the ask command
var askCmd = &cobra.Command{
	Use:   "ask <query>",
	Short: "Route a query to a role-restricted knowledge agent",
	Long: `Ask routes one free-text query to the agent for a role. The role is
given directly with --role, or resolved from a classified phone number
with --phone.

The agent refuses queries touching its banned topics before composing
any answer, responds from its fixed knowledge on topic keyword match,
and otherwise defers to an external text-generation provider (if
enabled) or a canned fallback listing its allowed topics. Every
interaction is appended to the audit trail.

Example:
  leadgate ask --role BUYER "tell me about the emi options"
  leadgate ask --phone 9999999999 "when can I visit"
  leadgate ask --role ENQUIRY --llm --llm-provider openai "who is the developer"`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	rootCmd.AddCommand(askCmd)

	defaults := model.DefaultConfig()
	askCmd.Flags().StringVar(&askRole, "role", "", "role tag (e.g., BUYER, CHANNEL_PARTNER)")
	askCmd.Flags().StringVar(&askPhone, "phone", "", "resolve role from this phone number")
	askCmd.Flags().StringVar(&classifiedPath, "classified", defaults.Output.ClassifiedPath, "classified leads CSV used for phone lookup")
	askCmd.Flags().StringVar(&profilesPath, "profiles", "", "YAML role profiles (default: built-in profiles)")
	askCmd.Flags().StringVar(&auditPath, "audit-file", defaults.Audit.Path, "audit trail path")
	askCmd.Flags().BoolVar(&noAudit, "no-audit", false, "skip audit trail append")

	// LLM flags
	askCmd.Flags().BoolVar(&llmEnabled, "llm", false, "enable external text-generation expansion")
	askCmd.Flags().StringVar(&llmProvider, "llm-provider", "openai", "LLM provider (openai, anthropic, ollama)")
	askCmd.Flags().StringVar(&llmModel, "llm-model", "", "LLM model name (provider default if empty)")
}

func runAsk(cmd *cobra.Command, args []string) error {
	query := args[0]

	role, err := resolveRole()
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "Role: %s\n", role)
		fmt.Fprintf(os.Stderr, "Query: %s\n", query)
	}

	registry, err := loadRegistry()
	if err != nil {
		return err
	}

	responder, err := buildResponder()
	if err != nil {
		return err
	}

	router := agent.NewRouter(registry, responder)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	result := router.Route(ctx, role, query)

	fmt.Println(result.Response)
	if result.Violation && verbose {
		fmt.Fprintf(os.Stderr, "✗ Violation recorded (term: %s)\n", result.Term)
	}

	if !noAudit {
		trail := audit.NewTrail(auditPath)
		if err := trail.RecordInteraction(role, query, result.Response, result.Violation); err != nil {
			// Audit failure shouldn't hide the answer, just warn
			fmt.Fprintf(os.Stderr, "Warning: failed to append audit entry: %v\n", err)
		} else if verbose {
			fmt.Fprintf(os.Stderr, "✓ Audit entry appended: %s\n", auditPath)
		}
	}

	return nil
}

// resolveRole determines the role tag from --role or a --phone lookup
func resolveRole() (string, error) {
	if askRole != "" {
		return askRole, nil
	}
	if askPhone == "" {
		return "", fmt.Errorf("either --role or --phone is required")
	}

	defaults := model.DefaultConfig()
	lookup := store.NewLookup(classifiedPath)
	if defaults.Cache.Enabled {
		lookup = lookup.WithCache(cache.NewMemoryCache(time.Duration(defaults.Cache.TTLMinutes) * time.Minute))
	}

	role := lookup.RoleByPhone(askPhone)
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Phone %s resolved to role %s\n", askPhone, role)
	}
	return role, nil
}

// loadRegistry returns the profile registry from the --profiles file, or
// the built-in defaults when none is given
func loadRegistry() (*agent.Registry, error) {
	if profilesPath == "" {
		return agent.NewRegistry(agent.DefaultProfiles()), nil
	}

	profiles, err := agent.LoadProfiles(profilesPath)
	if err != nil {
		return nil, fmt.Errorf("load profiles: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d profiles from %s\n", len(profiles), profilesPath)
	}
	return agent.NewRegistry(profiles), nil
}

// buildResponder configures the external text-generation responder from
// the LLM flags. Returns nil (disabled) when --llm is not set.
func buildResponder() (*llm.Responder, error) {
	if !llmEnabled {
		return nil, nil
	}

	cfg := model.DefaultConfig()
	cfg.LLM.Provider = llmProvider
	cfg.LLM.Model = llmModel

	// Get API key from environment
	switch llmProvider {
	case "openai":
		cfg.LLM.APIKey = os.Getenv("OPENAI_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		cfg.LLM.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		if cfg.LLM.APIKey == "" {
			return nil, fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		// Ollama doesn't need an API key
		if baseURL := os.Getenv("OLLAMA_BASE_URL"); baseURL != "" {
			cfg.LLM.BaseURL = baseURL
		}
	}

	responder, err := llm.NewResponder(llm.ConfigFromModel(cfg.LLM))
	if err != nil {
		return nil, fmt.Errorf("configure LLM provider: %w", err)
	}

	if cfg.Cache.Enabled {
		responder.WithCache(cache.NewMemoryCache(time.Duration(cfg.Cache.TTLMinutes) * time.Minute))
	}
	responder.WithLimiter(rate.NewLimiter(rate.Limit(cfg.RateLimiting.RequestsPerSecond), cfg.RateLimiting.BurstSize))

	return responder, nil
}
