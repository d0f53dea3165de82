package app

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/clarify/internal/engine"
)

var (
	actionsFile string
	actionsJSON bool
)

var actionsCmd = &cobra.Command{
	Use:   "actions [text]",
	Short: "Extract prioritized action items",
	Long: `Actions splits the instruction into sentences, keeps the actionable
ones, and assigns each a priority. When nothing qualifies, a generic
three-item checklist is produced instead.`,
	Args: cobra.ArbitraryArgs,
	RunE: runActions,
}

func init() {
	actionsCmd.Flags().StringVarP(&actionsFile, "file", "f", "", "Read instruction text from a file")
	actionsCmd.Flags().BoolVar(&actionsJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(actionsCmd)
}

func runActions(cmd *cobra.Command, args []string) error {
	cfg, err := setupCommand()
	if err != nil {
		return err
	}

	text, err := readText(args, actionsFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	extractor := engine.NewExtractor(engine.WithLatency(cfg.Latency.Extract))
	items := extractor.Extract(text)

	if actionsJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(items)
	}

	renderActionItems(items)
	return nil
}
