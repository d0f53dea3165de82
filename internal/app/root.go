// Package app contains the Cobra command tree for clarify.
package app

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
	rootCmd.Version = v
}

var (
	flagNoColor bool
	flagJSON    bool
	flagVerbose bool
	flagConfig  string
)

var rootCmd = &cobra.Command{
	Use:   "clarify",
	Short: "Analyze written instructions for clarity",
	Long: `clarify scores free-form written instructions (emails, chat messages,
task descriptions) for clarity. It detects defects like vague language,
missing deadlines, and ambiguous references, produces a rewritten clearer
version, and decomposes the text into prioritized action items.

Analysis is fully local and deterministic: pattern heuristics only, no
network or model calls.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Println("clarify", appVersion)
		fmt.Println()
		fmt.Println("Use a subcommand:")
		fmt.Println("  analyze   Run the full analysis (score, issues, rewrite, action items)")
		fmt.Println("  score     Score clarity and list detected issues")
		fmt.Println("  rewrite   Produce a structured, clearer version of the text")
		fmt.Println("  actions   Extract prioritized action items")
		fmt.Println("  rules     List the clarity rule battery")
		return nil
	},
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: ~/.config/clarify/config.yaml)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose output")
}
