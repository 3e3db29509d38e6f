package model

// Config is the complete leadgate configuration
type Config struct {
	Rules       RulesConfig    `json:"rules" yaml:"rules"`
	Profiles    ProfilesConfig `json:"profiles" yaml:"profiles"`
	Output      OutputConfig   `json:"output" yaml:"output"`
	Audit       AuditConfig    `json:"audit" yaml:"audit"`
	Cache       CacheConfig    `json:"cache" yaml:"cache"`
	LLM         LLMConfig      `json:"llm" yaml:"llm"`
	RateLimiting RateConfig    `json:"rate_limiting" yaml:"rate_limiting"`
}

// RulesConfig controls the classification rule table
type RulesConfig struct {
	// Path to a YAML file mapping normalized source values to role tags.
	// Empty means use the built-in defaults.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`

	// FallbackRole is assigned when no rule matches
	FallbackRole string `json:"fallback_role" yaml:"fallback_role"`
}

// ProfilesConfig controls the role profile registry
type ProfilesConfig struct {
	// Path to a YAML file of role profiles. Empty means built-in defaults.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
}

// OutputConfig controls report and file output
type OutputConfig struct {
	ClassifiedPath string `json:"classified_path" yaml:"classified_path"` // Classified leads CSV
	Verbose        bool   `json:"verbose" yaml:"verbose"`
	SampleRows     int    `json:"sample_rows" yaml:"sample_rows"` // Rows shown in the report preview
}

// AuditConfig controls the append-only audit trail
type AuditConfig struct {
	Path string `json:"path" yaml:"path"`
}

// CacheConfig controls the in-memory completion/lookup cache
type CacheConfig struct {
	Enabled    bool `json:"enabled" yaml:"enabled"`
	TTLMinutes int  `json:"ttl_minutes" yaml:"ttl_minutes"`
}

// LLMConfig holds external text-generation settings
type LLMConfig struct {
	// Provider name: "openai", "ollama", "" (disabled)
	Provider string `json:"provider,omitempty" yaml:"provider,omitempty"`

	// Model name (provider-specific)
	Model string `json:"model,omitempty" yaml:"model,omitempty"`

	// APIKey for OpenAI
	APIKey string `json:"-" yaml:"-"`

	// BaseURL for custom endpoints (e.g., Ollama)
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// Timeout for API requests, in seconds
	Timeout int `json:"timeout" yaml:"timeout"`

	// MaxTokens for response generation
	MaxTokens int `json:"max_tokens" yaml:"max_tokens"`
}

// RateConfig bounds the external text-generation call rate
type RateConfig struct {
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`
	BurstSize         int     `json:"burst_size" yaml:"burst_size"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Rules: RulesConfig{
			FallbackRole: FallbackRole,
		},
		Output: OutputConfig{
			ClassifiedPath: "classified_leads_output.csv",
			SampleRows:     10,
		},
		Audit: AuditConfig{
			Path: "interaction_audit.json",
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLMinutes: 30,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 500,
		},
		RateLimiting: RateConfig{
			RequestsPerSecond: 1,
			BurstSize:         2,
		},
	}
}
