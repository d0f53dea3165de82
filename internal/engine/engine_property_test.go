package engine

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

// genText draws arbitrary non-empty instruction text, mixing fully random
// strings with realistic office-speak so the interesting rule branches get
// exercised often.
func genText() *rapid.Generator[string] {
	words := rapid.SampledFrom([]string{
		"please", "update", "the", "report", "asap", "soon", "it", "this",
		"that", "they", "them", "deploy", "server", "config", "by", "friday",
		"urgent", "if", "possible", "eventually", "verify", "numbers",
		"team", "deadline", "maybe", "review",
	})
	sentenceLike := rapid.Custom(func(t *rapid.T) string {
		n := rapid.IntRange(1, 30).Draw(t, "word_count")
		parts := make([]string, n)
		for i := range parts {
			parts[i] = words.Draw(t, "word")
		}
		text := strings.Join(parts, " ")
		if rapid.Bool().Draw(t, "terminated") {
			text += rapid.SampledFrom([]string{".", "!", "?", "..."}).Draw(t, "terminator")
		}
		return text
	})
	return rapid.OneOf(sentenceLike, rapid.StringN(1, 200, -1))
}

func TestPropertyAnalyzeScoreAlwaysInRange(t *testing.T) {
	detector := NewDetector()
	rapid.Check(t, func(rt *rapid.T) {
		text := genText().Draw(rt, "text")
		analysis := detector.Analyze(text)
		if analysis.Score < 0 || analysis.Score > 100 {
			rt.Fatalf("Analyze(%q).Score = %d, outside [0,100]", text, analysis.Score)
		}
	})
}

func TestPropertyAnalyzeDeterministicOrder(t *testing.T) {
	detector := NewDetector()
	rapid.Check(t, func(rt *rapid.T) {
		text := genText().Draw(rt, "text")
		first := detector.Analyze(text)
		second := detector.Analyze(text)

		if first.Score != second.Score {
			rt.Fatalf("score not deterministic for %q: %d vs %d", text, first.Score, second.Score)
		}
		if len(first.Issues) != len(second.Issues) {
			rt.Fatalf("issue count not deterministic for %q", text)
		}
		for i := range first.Issues {
			if first.Issues[i].Type != second.Issues[i].Type {
				rt.Fatalf("issue order not deterministic for %q at index %d", text, i)
			}
		}
	})
}

func TestPropertyAnalyzeIssuesWellFormed(t *testing.T) {
	detector := NewDetector()
	validSeverities := map[Severity]bool{SeverityHigh: true, SeverityMedium: true, SeverityLow: true}

	rapid.Check(t, func(rt *rapid.T) {
		text := genText().Draw(rt, "text")
		analysis := detector.Analyze(text)

		seen := make(map[string]bool, len(analysis.Issues))
		for _, issue := range analysis.Issues {
			if issue.ID == "" {
				rt.Fatalf("empty issue ID for %q", text)
			}
			if seen[issue.ID] {
				rt.Fatalf("duplicate issue ID within one call for %q", text)
			}
			seen[issue.ID] = true
			if !validSeverities[issue.Severity] {
				rt.Fatalf("invalid severity %q for %q", issue.Severity, text)
			}
			if SeverityTier(issue.Severity) == TierMuted {
				rt.Fatalf("severity %q did not map to a dedicated tier", issue.Severity)
			}
		}
	})
}

func TestPropertyRewriteAlwaysStructured(t *testing.T) {
	rewriter := NewRewriter()
	rapid.Check(t, func(rt *rapid.T) {
		text := genText().Draw(rt, "text")
		improved := rewriter.Rewrite(text)

		if improved == "" {
			rt.Fatalf("empty rewrite for %q", text)
		}
		if len(improved) <= len(strings.TrimSpace(text)) {
			rt.Fatalf("rewrite not longer than trimmed input for %q", text)
		}
		if !strings.Contains(improved, "Steps to complete") {
			rt.Fatalf("rewrite missing steps heading for %q", text)
		}
		if !strings.Contains(improved, "1.") {
			rt.Fatalf("rewrite missing numbered list for %q", text)
		}
	})
}

func TestPropertyExtractNeverEmpty(t *testing.T) {
	extractor := NewExtractor()
	validPriorities := map[Priority]bool{PriorityHigh: true, PriorityMedium: true, PriorityLow: true}

	rapid.Check(t, func(rt *rapid.T) {
		text := genText().Draw(rt, "text")
		items := extractor.Extract(text)

		if len(items) == 0 {
			rt.Fatalf("empty extraction for %q", text)
		}
		seen := make(map[string]bool, len(items))
		for _, item := range items {
			if item.Completed {
				rt.Fatalf("item created as completed for %q", text)
			}
			if !validPriorities[item.Priority] {
				rt.Fatalf("invalid priority %q for %q", item.Priority, text)
			}
			if item.ID == "" || seen[item.ID] {
				rt.Fatalf("missing or duplicate item ID for %q", text)
			}
			seen[item.ID] = true
		}
	})
}

func TestPropertyBreakdownComponentsInRange(t *testing.T) {
	detector := NewDetector()
	rapid.Check(t, func(rt *rapid.T) {
		text := genText().Draw(rt, "text")
		analysis := detector.Analyze(text)
		breakdown := Breakdown(analysis.Score, analysis.Issues)

		components := map[string]int{
			"total":         breakdown.Total,
			"clarity":       breakdown.Clarity,
			"completeness":  breakdown.Completeness,
			"specificity":   breakdown.Specificity,
			"actionability": breakdown.Actionability,
		}
		for name, v := range components {
			if v < 0 || v > 100 {
				rt.Fatalf("%s = %d, outside [0,100] for %q", name, v, text)
			}
		}
	})
}

func TestPropertyNoPanicOnArbitraryInput(t *testing.T) {
	detector := NewDetector()
	rewriter := NewRewriter()
	extractor := NewExtractor()

	rapid.Check(t, func(rt *rapid.T) {
		// Raw unicode, punctuation runs, no terminators: every operation
		// must still return a well-formed result.
		text := rapid.StringN(1, 500, -1).Draw(rt, "text")
		_ = detector.Analyze(text)
		_ = rewriter.Rewrite(text)
		if items := extractor.Extract(text); len(items) == 0 {
			rt.Fatalf("empty extraction for %q", text)
		}
	})
}
