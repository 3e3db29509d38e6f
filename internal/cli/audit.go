package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"leadgate/internal/audit"
	"leadgate/internal/model"
)

var auditViolationsOnly bool

// auditCmd represents the audit command
var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Inspect the interaction audit trail",
}

var auditShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print all audit trail entries",
	Long: `Show prints every recorded interaction and mismatch report in append
order. A missing or unreadable trail is treated as empty.

Example:
  leadgate audit show
  leadgate audit show --violations`,
	RunE: runAuditShow,
}

func init() {
	rootCmd.AddCommand(auditCmd)
	auditCmd.AddCommand(auditShowCmd)

	defaults := model.DefaultConfig()
	auditShowCmd.Flags().StringVar(&auditPath, "audit-file", defaults.Audit.Path, "audit trail path")
	auditShowCmd.Flags().BoolVar(&auditViolationsOnly, "violations", false, "show only flagged entries")
}

func runAuditShow(cmd *cobra.Command, args []string) error {
	entries := audit.NewTrail(auditPath).Entries()

	shown := 0
	for _, e := range entries {
		if auditViolationsOnly && !e.ViolationFlag {
			continue
		}
		shown++

		flag := " "
		if e.ViolationFlag {
			flag = "!"
		}

		if e.Event != "" {
			fmt.Printf("%s %s  %s  phone=%s current_role=%s\n", flag, e.Timestamp, e.Event, e.Phone, e.CurrentRole)
			continue
		}
		fmt.Printf("%s %s  [%s] %s\n", flag, e.Timestamp, e.Role, e.Query)
		fmt.Printf("    -> %s\n", e.Response)
	}

	if shown == 0 {
		fmt.Println("No audit entries.")
	}

	return nil
}
