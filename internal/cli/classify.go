package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leadgate/internal/classify"
	"leadgate/internal/model"
	"leadgate/internal/process"
	"leadgate/internal/store"
)

var (
	outputPath string
	rulesPath  string
	fallback   string
)

// classifyCmd represents the classify command
var classifyCmd = &cobra.Command{
	Use:   "classify <input.csv>",
	Short: "Classify a leads CSV and write role-tagged output",
	Long: `Classify reads raw lead rows (name, phone, source type), assigns
each a sequential lead ID and a role tag, and writes the enriched rows
to a new CSV. Source values are normalized (case, surrounding and
interior whitespace) before rule lookup; rows that don't match any rule
fall back to UNKNOWN. Bad rows are recorded as data issues, never
skipped.

Example:
  leadgate classify leads_1000.csv
  leadgate classify leads_1000.csv --output classified.csv
  leadgate classify leads_1000.csv --rules role_rules.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func init() {
	rootCmd.AddCommand(classifyCmd)

	defaults := model.DefaultConfig()
	classifyCmd.Flags().StringVar(&outputPath, "output", defaults.Output.ClassifiedPath, "output CSV path")
	classifyCmd.Flags().StringVar(&rulesPath, "rules", "", "YAML rule table (default: built-in rules)")
	classifyCmd.Flags().StringVar(&fallback, "fallback-role", defaults.Rules.FallbackRole, "role assigned when no rule matches")
}

func runClassify(cmd *cobra.Command, args []string) error {
	inputPath := args[0]

	if verbose {
		fmt.Fprintf(os.Stderr, "Processing: %s\n", inputPath)
	}

	rules, err := loadRules()
	if err != nil {
		return err
	}

	processor := process.NewProcessor(classify.NewClassifier(rules, fallback))

	leads, summary, err := processor.Run(store.NewCSVReader(inputPath), store.NewCSVWriter(outputPath))
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Classified %d leads\n", summary.TotalLeads)
		fmt.Fprintf(os.Stderr, "✓ Wrote output: %s\n", outputPath)
	}

	process.RenderReport(os.Stdout, leads, summary, outputPath, model.DefaultConfig().Output.SampleRows)

	return nil
}

// loadRules returns the rule table from the --rules file, or the
// built-in defaults when none is given
func loadRules() (map[string]string, error) {
	if rulesPath == "" {
		return classify.DefaultRules(), nil
	}

	rules, err := classify.LoadRules(rulesPath)
	if err != nil {
		return nil, fmt.Errorf("load rules: %w", err)
	}
	if verbose {
		fmt.Fprintf(os.Stderr, "✓ Loaded %d rules from %s\n", len(rules), rulesPath)
	}
	return rules, nil
}
