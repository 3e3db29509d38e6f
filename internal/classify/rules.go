package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultRules returns the built-in source-to-role rule table. Two naming
// conventions appear in real lead exports (the "_line" suffixed form and
// the plain form), so both are mapped.
func DefaultRules() map[string]string {
	return map[string]string{
		"buyer_line":   "BUYER",
		"partner_line": "CHANNEL_PARTNER",
		"visit_line":   "SITE_VISIT",
		"enquiry_line": "ENQUIRY",

		"buyer":           "BUYER",
		"channel partner": "CHANNEL_PARTNER",
		"site visit":      "SITE_VISIT",
		"enquiry":         "ENQUIRY",
	}
}

// LoadRules reads a rule table from a YAML file mapping source values to
// role tags. Keys are normalized on load, so the file may use any casing
// or spacing. Adding a role is a data edit only; no code change needed.
func LoadRules(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read rules file: %w", err)
	}

	var raw map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse rules file: %w", err)
	}

	rules := make(map[string]string, len(raw))
	for key, role := range raw {
		normalized, ok := Normalize(key)
		if !ok {
			continue
		}
		if existing, dup := rules[normalized]; dup && existing != role {
			return nil, fmt.Errorf("rules file: %q maps to both %q and %q after normalization", key, existing, role)
		}
		rules[normalized] = role
	}

	if len(rules) == 0 {
		return nil, fmt.Errorf("rules file %s contains no usable entries", path)
	}

	return rules, nil
}
