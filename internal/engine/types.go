// Package engine implements the heuristic instruction-clarity engine: a
// rule-based issue detector, a clarity score, a rewrite generator, and an
// action-item extractor. Every operation is a deterministic function of its
// input text and never fails for non-empty input; network calls, model
// calls, and persisted state are all out of scope.
package engine

import "github.com/google/uuid"

// Severity levels for detected issues.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

// Priority levels for action items. Drawn from the same closed three-value
// set as Severity.
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// IssueType identifies the category of clarity defect a rule detects.
type IssueType string

const (
	IssueMissingSteps          IssueType = "missing_steps"
	IssueVagueLanguage         IssueType = "vague_language"
	IssueAmbiguousReference    IssueType = "ambiguous_reference"
	IssueUnclearDeadline       IssueType = "unclear_deadline"
	IssueAssumedKnowledge      IssueType = "assumed_knowledge"
	IssueMissingContext        IssueType = "missing_context"
	IssueUnclearResponsibility IssueType = "unclear_responsibility"
)

// Issue represents one detected clarity defect. Issues are immutable once
// created and are never merged or deduplicated across rule firings.
type Issue struct {
	ID          string    `json:"id"`
	Type        IssueType `json:"type"`
	Severity    Severity  `json:"severity"`
	Description string    `json:"description"`

	// Location describes what matched, not a character offset.
	Location   string `json:"location,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

// Analysis pairs a clarity score with the issues that produced it. Issues
// appear in rule-evaluation order, which is fixed, so the same input always
// yields the same sequence.
type Analysis struct {
	Score  int     `json:"score"`
	Issues []Issue `json:"issues"`
}

// ActionItem is one discrete task extracted from instruction text. The
// engine always emits items with Completed false; only consumers toggle it.
type ActionItem struct {
	ID        string   `json:"id"`
	Text      string   `json:"text"`
	Priority  Priority `json:"priority"`
	Completed bool     `json:"completed"`
}

// newIssueID returns an identifier guaranteed unique within an analysis
// call. Random ids replace the original clock-derived scheme, which could
// collide when rules fired within the same millisecond.
func newIssueID() string {
	return "issue-" + uuid.NewString()
}

func newActionID() string {
	return "action-" + uuid.NewString()
}
