package model

// FallbackRole is assigned when a lead's source value is missing or
// doesn't match any classification rule.
const FallbackRole = "UNKNOWN"

// Lead represents a single classified lead record
type Lead struct {
	ID     string      `json:"lead_id" yaml:"lead_id"`          // Sequential identifier (e.g., "LEAD-0001")
	Name   string      `json:"name" yaml:"name"`                // Lead name as read from input
	Phone  string      `json:"phone" yaml:"phone"`              // Phone number as read from input
	Source string      `json:"source" yaml:"source"`            // Raw source-type text before normalization
	Role   string      `json:"assigned_role" yaml:"assigned_role"` // Role tag assigned by classification
	Status MatchStatus `json:"status" yaml:"status"`            // How the role was determined
}

// MatchStatus describes how a lead's role assignment was determined
type MatchStatus string

const (
	StatusMatched      MatchStatus = "matched"      // Source value matched a classification rule
	StatusMissing      MatchStatus = "missing"      // Source value was empty or whitespace-only
	StatusUnrecognized MatchStatus = "unrecognized" // Source value present but not in the rules
)

// Summary aggregates the results of a classification run
type Summary struct {
	TotalLeads   int                 `json:"total_leads"`
	RoleCounts   map[string]int      `json:"role_counts"`
	StatusCounts map[MatchStatus]int `json:"status_counts"`
	Problems     []string            `json:"problems,omitempty"` // Data-quality issues, recorded but never fatal
}

// NewSummary creates an empty summary with initialized counters
func NewSummary() Summary {
	return Summary{
		RoleCounts: make(map[string]int),
		StatusCounts: map[MatchStatus]int{
			StatusMatched:      0,
			StatusMissing:      0,
			StatusUnrecognized: 0,
		},
	}
}
