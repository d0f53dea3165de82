package engine

import (
	"fmt"
	"strings"
)

// Rewriter produces a structured, clearer version of instruction text. The
// output is a fixed scaffold, not a semantic rewrite: the original text is
// echoed verbatim on a Task line above five generic completion steps.
type Rewriter struct {
	opts options
}

// NewRewriter creates a Rewriter.
func NewRewriter(opts ...Option) *Rewriter {
	return &Rewriter{opts: applyOptions(opts)}
}

// rewriteTemplate takes the trimmed original text and the optional deadline
// sentence appended when the original specifies none.
const rewriteTemplate = `Task: %s

Steps to complete:
1. Review the current status and identify what needs to be updated
2. Make the necessary changes ensuring accuracy of all information
3. Verify all numbers and data points are correct
4. Coordinate with team members if you have any questions or need clarification
5. Complete a final review before submission%s

Please confirm once completed.`

// Rewrite restructures the given text into the numbered-step scaffold. The
// result is always non-empty and strictly longer than the trimmed input.
// Deadline detection reuses the detector's marker set but is evaluated
// independently per call.
func (r *Rewriter) Rewrite(text string) string {
	r.opts.wait()

	deadline := ""
	if !deadlineMarkers.MatchString(strings.ToLower(text)) {
		deadline = " This should be completed by end of day today."
	}
	return fmt.Sprintf(rewriteTemplate, strings.TrimSpace(text), deadline)
}
