package agent

import (
	"fmt"
	"strings"

	"leadgate/internal/model"
)

// BuildInstruction constructs the bounded system instruction handed to
// the external text-generation provider. The instruction carries the
// role identity, the allowed topic set, the full knowledge content, and
// the banned-topic list, with an explicit directive to stay in scope.
// The guard has already rejected banned queries by the time this runs;
// the instruction is a second fence, not the first.
func BuildInstruction(profile model.RoleProfile) string {
	var b strings.Builder

	fmt.Fprintf(&b, "You are the %s for Aurora Heights.\n", profile.Identity)
	fmt.Fprintf(&b, "Your expertise is ONLY: %s.\n\n", strings.Join(profile.Topics(), ", "))

	b.WriteString("Base your answer on this knowledge:\n")
	for _, topic := range profile.Topics() {
		fmt.Fprintf(&b, "- %s: %s\n", topic, profile.Knowledge[topic])
	}

	fmt.Fprintf(&b, "\nDO NOT mention anything about %s.\n", strings.Join(profile.Banned, ", "))
	b.WriteString("Stay strictly within your allowed topics. Be professional and clear.")

	return b.String()
}
