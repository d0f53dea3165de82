package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/clarify/internal/engine"
	"github.com/blackwell-systems/clarify/internal/output"
)

var (
	scoreFile string
	scoreJSON bool
)

var scoreCmd = &cobra.Command{
	Use:   "score [text]",
	Short: "Score clarity and list detected issues",
	Long: `Score runs only the issue detector: the text is checked against the
fixed rule battery and the resulting 0-100 score and issues are shown.`,
	Args: cobra.ArbitraryArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().StringVarP(&scoreFile, "file", "f", "", "Read instruction text from a file")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	cfg, err := setupCommand()
	if err != nil {
		return err
	}

	text, err := readText(args, scoreFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	detector := engine.NewDetector(engine.WithLatency(cfg.Latency.Analyze))
	analysis := detector.Analyze(text)

	if scoreJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(analysis)
	}

	fmt.Println(output.Section("Clarity Score"))
	fmt.Println()
	fmt.Printf(" %s\n", output.ScoreBar(analysis.Score, cfg.Output.Width/4))
	renderIssues(analysis.Issues)
	return nil
}
