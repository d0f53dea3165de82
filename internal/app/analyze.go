package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/clarify/internal/engine"
	"github.com/blackwell-systems/clarify/internal/output"
	"github.com/blackwell-systems/clarify/internal/report"
)

var (
	analyzeFile string
	analyzeJSON bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [text]",
	Short: "Run the full clarity analysis",
	Long: `Analyze runs all three analysis operations concurrently against the
same text and merges the results: a 0-100 clarity score with detected
issues, a rewritten clearer version, and extracted action items.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeFile, "file", "f", "", "Read instruction text from a file")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := setupCommand()
	if err != nil {
		return err
	}

	text, err := readText(args, analyzeFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	rep, err := newRunner(cfg).Run(cmd.Context(), text)
	if err != nil {
		return err
	}

	if analyzeJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(rep)
	}

	renderReport(rep, cfg.Output.Width)
	return nil
}

func renderReport(rep *report.Report, width int) {
	fmt.Println(output.Section("Clarity Score"))
	fmt.Println()
	fmt.Printf(" %s\n", output.ScoreBar(rep.ClarityScore, width/4))
	fmt.Println()
	fmt.Printf(" Clarity %d  Completeness %d  Specificity %d  Actionability %d\n",
		rep.Breakdown.Clarity, rep.Breakdown.Completeness,
		rep.Breakdown.Specificity, rep.Breakdown.Actionability)

	renderIssues(rep.Issues)

	fmt.Println(output.Section("Improved Version"))
	fmt.Println()
	fmt.Println(rep.ImprovedVersion)

	renderActionItems(rep.ActionItems)
}

func renderIssues(issues []engine.Issue) {
	fmt.Println(output.Section("Detected Issues"))
	fmt.Println()
	if len(issues) == 0 {
		fmt.Println(" No clarity issues detected.")
		return
	}
	for i, issue := range issues {
		fmt.Printf(" #%d %s %s\n", i+1, output.SeverityBadge(issue.Severity), output.StyleBold.Render(string(issue.Type)))
		fmt.Printf("    %s\n", issue.Description)
		if issue.Location != "" {
			fmt.Printf("    Location: %s\n", output.StyleMuted.Render(issue.Location))
		}
		if issue.Suggestion != "" {
			fmt.Printf("    Suggestion: %s\n", issue.Suggestion)
		}
		fmt.Println()
	}
}

func renderActionItems(items []engine.ActionItem) {
	fmt.Println(output.Section("Action Items"))
	fmt.Println()
	for _, item := range items {
		fmt.Printf(" [ ] %s %s\n", output.PriorityBadge(item.Priority), item.Text)
	}
}
