package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leadgate/internal/audit"
	"leadgate/internal/model"
	"leadgate/internal/store"
)

// lookupCmd represents the lookup command
var lookupCmd = &cobra.Command{
	Use:   "lookup <phone>",
	Short: "Resolve a phone number to its classified role",
	Long: `Lookup scans the classified leads store for an exact phone match and
prints the recorded role. Prints UNKNOWN when the phone is absent or no
classified store exists.

Example:
  leadgate lookup 9999999999
  leadgate lookup 9999999999 --classified ./classified.csv`,
	Args: cobra.ExactArgs(1),
	RunE: runLookup,
}

// mismatchCmd represents the report-mismatch command
var mismatchCmd = &cobra.Command{
	Use:   "report-mismatch <phone>",
	Short: "Report that a caller's classified role is wrong",
	Long: `Report-mismatch records that the person behind a phone number
disputes their classified role. The report is appended to the audit
trail flagged for admin review; the classified store itself is never
modified.

Example:
  leadgate report-mismatch 9999999999`,
	Args: cobra.ExactArgs(1),
	RunE: runMismatch,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
	rootCmd.AddCommand(mismatchCmd)

	defaults := model.DefaultConfig()
	lookupCmd.Flags().StringVar(&classifiedPath, "classified", defaults.Output.ClassifiedPath, "classified leads CSV")
	mismatchCmd.Flags().StringVar(&classifiedPath, "classified", defaults.Output.ClassifiedPath, "classified leads CSV")
	mismatchCmd.Flags().StringVar(&auditPath, "audit-file", defaults.Audit.Path, "audit trail path")
}

func runLookup(cmd *cobra.Command, args []string) error {
	phone := args[0]

	role := store.NewLookup(classifiedPath).RoleByPhone(phone)
	fmt.Println(role)

	return nil
}

func runMismatch(cmd *cobra.Command, args []string) error {
	phone := args[0]

	currentRole := store.NewLookup(classifiedPath).RoleByPhone(phone)

	trail := audit.NewTrail(auditPath)
	if err := trail.RecordMismatch(phone, currentRole); err != nil {
		return fmt.Errorf("record mismatch: %w", err)
	}

	fmt.Printf("✓ Mismatch reported for %s (current role: %s)\n", phone, currentRole)
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Audit entry appended: %s\n", auditPath)
	}

	return nil
}
