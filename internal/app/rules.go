package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/clarify/internal/engine"
	"github.com/blackwell-systems/clarify/internal/output"
)

var rulesJSON bool

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the clarity rule battery",
	Long: `Rules prints every check in the battery in its fixed evaluation
order, with the issue type it emits, its severity, and its score deduction.`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().BoolVar(&rulesJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	if _, err := setupCommand(); err != nil {
		return err
	}

	infos := engine.NewDetector().Rules()

	if rulesJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	fmt.Println(output.Section("Clarity Rules"))
	fmt.Println()
	for i, info := range infos {
		deduction := fmt.Sprintf("-%d", info.Deduction)
		if info.PerMatch {
			deduction += " per match"
		}
		fmt.Printf(" #%d %s %s (%s)\n", i+1,
			output.SeverityBadge(info.Severity),
			output.StyleBold.Render(info.Name),
			output.StyleMuted.Render(deduction))
		fmt.Printf("    %s\n", info.Summary)
		fmt.Println()
	}
	return nil
}
