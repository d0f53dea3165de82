// Package report merges the three independent analyzer operations into one
// presentation-ready result. Input validation and failure isolation live
// here, at the orchestration boundary, so the engine itself stays a set of
// total functions.
package report

import (
	"context"
	"errors"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/clarify/internal/engine"
)

// ErrEmptyText is returned when Run receives blank input. The engine
// assumes non-empty text; rejecting blanks is the orchestrator's job.
var ErrEmptyText = errors.New("report: text is empty")

// DefaultFallbackScore replaces the clarity score when the detector fails.
const DefaultFallbackScore = 50

// Analyzer scores instruction text and reports clarity issues.
type Analyzer interface {
	Analyze(text string) engine.Analysis
}

// Rewriter produces a clearer version of instruction text.
type Rewriter interface {
	Rewrite(text string) string
}

// Extractor decomposes instruction text into action items.
type Extractor interface {
	Extract(text string) []engine.ActionItem
}

// Report combines the outputs of the three analyzer operations.
type Report struct {
	ClarityScore    int                   `json:"clarity_score"`
	Label           string                `json:"label"`
	Issues          []engine.Issue        `json:"issues"`
	ImprovedVersion string                `json:"improved_version"`
	ActionItems     []engine.ActionItem   `json:"action_items"`
	Breakdown       engine.ScoreBreakdown `json:"breakdown"`
}

// Runner fans the three analyzer operations out concurrently and merges
// their results. The operations share no state, so no synchronization
// beyond the join is needed. One operation failing never aborts the others;
// its slot falls back to a neutral default instead.
type Runner struct {
	analyzer      Analyzer
	rewriter      Rewriter
	extractor     Extractor
	fallbackScore int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithAnalyzer replaces the default detector.
func WithAnalyzer(a Analyzer) RunnerOption {
	return func(r *Runner) { r.analyzer = a }
}

// WithRewriter replaces the default rewrite generator.
func WithRewriter(w Rewriter) RunnerOption {
	return func(r *Runner) { r.rewriter = w }
}

// WithExtractor replaces the default action-item extractor.
func WithExtractor(e Extractor) RunnerOption {
	return func(r *Runner) { r.extractor = e }
}

// WithFallbackScore sets the score substituted when the analyzer fails.
func WithFallbackScore(score int) RunnerOption {
	return func(r *Runner) { r.fallbackScore = score }
}

// NewRunner creates a Runner backed by the built-in engine services.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		analyzer:      engine.NewDetector(),
		rewriter:      engine.NewRewriter(),
		extractor:     engine.NewExtractor(),
		fallbackScore: DefaultFallbackScore,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run analyzes the given text with all three operations in parallel and
// merges the results. Blank input returns ErrEmptyText. Once started, each
// operation runs to completion; there is no per-operation cancellation.
func (r *Runner) Run(ctx context.Context, text string) (*Report, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmptyText
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var (
		analysis engine.Analysis
		improved string
		items    []engine.ActionItem
	)

	var g errgroup.Group
	g.Go(func() error {
		analysis = r.runAnalyze(text)
		return nil
	})
	g.Go(func() error {
		improved = r.runRewrite(text)
		return nil
	})
	g.Go(func() error {
		items = r.runExtract(text)
		return nil
	})

	// The goroutines recover their own panics and never return errors.
	_ = g.Wait()

	return &Report{
		ClarityScore:    analysis.Score,
		Label:           engine.ScoreLabel(analysis.Score),
		Issues:          analysis.Issues,
		ImprovedVersion: improved,
		ActionItems:     items,
		Breakdown:       engine.Breakdown(analysis.Score, analysis.Issues),
	}, nil
}

// runAnalyze isolates detector failures, substituting a neutral mid-range
// score with no issues.
func (r *Runner) runAnalyze(text string) (a engine.Analysis) {
	defer func() {
		if recover() != nil {
			a = engine.Analysis{Score: r.fallbackScore}
		}
	}()
	return r.analyzer.Analyze(text)
}

// runRewrite isolates rewriter failures, echoing the original text.
func (r *Runner) runRewrite(text string) (improved string) {
	defer func() {
		if recover() != nil {
			improved = text
		}
	}()
	return r.rewriter.Rewrite(text)
}

// runExtract isolates extractor failures, leaving the item list empty.
func (r *Runner) runExtract(text string) (items []engine.ActionItem) {
	defer func() {
		if recover() != nil {
			items = nil
		}
	}()
	return r.extractor.Extract(text)
}
