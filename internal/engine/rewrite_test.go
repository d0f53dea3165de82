package engine

import (
	"strings"
	"testing"
)

func TestRewrite_AddsStructure(t *testing.T) {
	original := "Update the dashboard by EOD."
	improved := NewRewriter().Rewrite(original)

	if improved == "" {
		t.Fatal("expected non-empty rewrite")
	}
	if len(improved) <= len(strings.TrimSpace(original)) {
		t.Errorf("expected rewrite longer than input, got %d <= %d", len(improved), len(original))
	}
	if !strings.Contains(improved, "Steps to complete") {
		t.Error("expected rewrite to contain the steps heading")
	}
	if !strings.Contains(improved, "1.") {
		t.Error("expected rewrite to contain a numbered list")
	}
	if !strings.Contains(improved, "Task: "+original) {
		t.Errorf("expected rewrite to echo the original on the Task line, got %q", improved)
	}
}

func TestRewrite_AppendsDeadlineWhenMissing(t *testing.T) {
	improved := NewRewriter().Rewrite("Complete the report.")
	lower := strings.ToLower(improved)
	if !strings.Contains(lower, "end of day") {
		t.Errorf("expected an end-of-day deadline to be added, got %q", improved)
	}
}

func TestRewrite_KeepsExistingDeadline(t *testing.T) {
	improved := NewRewriter().Rewrite("Complete the report by Friday.")
	if strings.Contains(improved, "This should be completed by end of day today.") {
		t.Errorf("deadline sentence should not be appended when the text has one, got %q", improved)
	}
}

func TestRewrite_TrimsEchoedText(t *testing.T) {
	improved := NewRewriter().Rewrite("   Complete the report by Friday.  \n")
	if !strings.Contains(improved, "Task: Complete the report by Friday.\n") {
		t.Errorf("expected trimmed echo on the Task line, got %q", improved)
	}
}

func TestRewrite_Deterministic(t *testing.T) {
	rewriter := NewRewriter()
	text := "Update the system."
	if rewriter.Rewrite(text) != rewriter.Rewrite(text) {
		t.Error("rewrite output differs between identical calls")
	}
}
