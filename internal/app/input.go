package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/blackwell-systems/clarify/internal/config"
	"github.com/blackwell-systems/clarify/internal/engine"
	"github.com/blackwell-systems/clarify/internal/output"
	"github.com/blackwell-systems/clarify/internal/report"
)

// errNoText is returned when no instruction text was supplied via
// arguments, --file, or stdin.
var errNoText = errors.New("no instruction text provided (pass text as an argument, use --file, or pipe to stdin)")

// readText resolves the instruction text from, in order of precedence:
// a --file path, positional arguments joined with spaces, or stdin.
func readText(args []string, file string, stdin io.Reader) (string, error) {
	if file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", file, err)
		}
		return requireText(string(data))
	}

	if len(args) > 0 {
		return requireText(strings.Join(args, " "))
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return requireText(string(data))
}

func requireText(text string) (string, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return "", errNoText
	}
	return trimmed, nil
}

// setupCommand loads configuration and applies output settings shared by
// every subcommand.
func setupCommand() (*config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	output.AutoDetect()
	if flagNoColor || !cfg.Output.Color {
		output.SetNoColor(true)
	}
	return cfg, nil
}

// newRunner builds the combined-analysis runner from configuration.
func newRunner(cfg *config.Config) *report.Runner {
	return report.NewRunner(
		report.WithAnalyzer(engine.NewDetector(engine.WithLatency(cfg.Latency.Analyze))),
		report.WithRewriter(engine.NewRewriter(engine.WithLatency(cfg.Latency.Rewrite))),
		report.WithExtractor(engine.NewExtractor(engine.WithLatency(cfg.Latency.Extract))),
		report.WithFallbackScore(cfg.FallbackScore),
	)
}
