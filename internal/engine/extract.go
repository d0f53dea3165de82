package engine

import (
	"regexp"
	"strings"
)

// Extractor decomposes instruction text into discrete, prioritized tasks.
type Extractor struct {
	opts options
}

// NewExtractor creates an Extractor.
func NewExtractor(opts ...Option) *Extractor {
	return &Extractor{opts: applyOptions(opts)}
}

// sentenceTerminators splits text into sentence-like segments. Repeated
// terminators collapse into one split point.
var sentenceTerminators = regexp.MustCompile(`[.!?]+`)

// actionVerbs mark a segment as actionable when present anywhere in it.
var actionVerbs = []string{
	"update", "check", "make sure", "verify", "review",
	"contact", "send", "complete", "finish",
}

// Extract segments the text into sentences, keeps the actionable ones, and
// assigns each a priority. The first sentence of a terminated text is kept
// even without an action verb, so a meaningful opening line always yields a
// candidate. Text with no sentence terminator at all has no sentences to
// keep and falls through to the generic fallback items, which guarantee a
// non-empty result for every non-empty input.
func (e *Extractor) Extract(text string) []ActionItem {
	e.opts.wait()

	var items []ActionItem
	if strings.ContainsAny(text, ".!?") {
		index := 0
		for _, raw := range sentenceTerminators.Split(text, -1) {
			segment := strings.TrimSpace(raw)
			if segment == "" {
				continue
			}
			if containsActionVerb(segment) || index == 0 {
				items = append(items, ActionItem{
					ID:        newActionID(),
					Text:      segment,
					Priority:  segmentPriority(segment),
					Completed: false,
				})
			}
			index++
		}
	}

	if len(items) == 0 {
		items = fallbackItems()
	}
	return items
}

func containsActionVerb(segment string) bool {
	lower := strings.ToLower(segment)
	for _, verb := range actionVerbs {
		if strings.Contains(lower, verb) {
			return true
		}
	}
	return false
}

// segmentPriority classifies one segment. Urgency markers win over
// deferral markers; everything else is medium.
func segmentPriority(segment string) Priority {
	lower := strings.ToLower(segment)
	switch {
	case strings.Contains(lower, "urgent") || strings.Contains(lower, "asap"):
		return PriorityHigh
	case strings.Contains(lower, "if possible") || strings.Contains(lower, "eventually"):
		return PriorityLow
	default:
		return PriorityMedium
	}
}

// fallbackItems are emitted when no segment qualifies, so extraction never
// returns an empty batch.
func fallbackItems() []ActionItem {
	return []ActionItem{
		{ID: newActionID(), Text: "Review and understand the instructions", Priority: PriorityHigh},
		{ID: newActionID(), Text: "Complete the requested task", Priority: PriorityHigh},
		{ID: newActionID(), Text: "Follow up with relevant team members", Priority: PriorityMedium},
	}
}
