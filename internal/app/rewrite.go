package app

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/clarify/internal/engine"
)

var (
	rewriteFile string
	rewriteJSON bool
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [text]",
	Short: "Produce a structured, clearer version of the text",
	Long: `Rewrite restructures the instruction into a Task line, numbered
completion steps, and a confirmation request. A deadline sentence is
appended when the original specifies none.`,
	Args: cobra.ArbitraryArgs,
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().StringVarP(&rewriteFile, "file", "f", "", "Read instruction text from a file")
	rewriteCmd.Flags().BoolVar(&rewriteJSON, "json", false, "Output as JSON")
	rootCmd.AddCommand(rewriteCmd)
}

func runRewrite(cmd *cobra.Command, args []string) error {
	cfg, err := setupCommand()
	if err != nil {
		return err
	}

	text, err := readText(args, rewriteFile, cmd.InOrStdin())
	if err != nil {
		return err
	}

	rewriter := engine.NewRewriter(engine.WithLatency(cfg.Latency.Rewrite))
	improved := rewriter.Rewrite(text)

	if rewriteJSON || flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(map[string]string{"improved_version": improved})
	}

	fmt.Println(improved)
	return nil
}
