package classify

import "strings"

// Normalize cleans a raw source value for rule lookup: trims surrounding
// whitespace, lowercases, and collapses interior runs of spaces to one.
// Returns ok=false when the value is empty or whitespace-only.
// Normalization is idempotent.
func Normalize(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return "", false
	}

	cleaned = strings.ToLower(cleaned)

	// Collapse runs of interior whitespace
	cleaned = strings.Join(strings.Fields(cleaned), " ")

	return cleaned, true
}
