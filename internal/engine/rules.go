package engine

import (
	"fmt"
	"regexp"
	"strings"
)

// document caches derived views of the input text shared by rules.
type document struct {
	text  string
	lower string
}

func newDocument(text string) *document {
	return &document{text: text, lower: strings.ToLower(text)}
}

// rule pairs one clarity check with its descriptive metadata. A check
// returns the issues it found plus the score deduction they incur.
type rule struct {
	info  RuleInfo
	check func(d *document) ([]Issue, int)
}

// RuleInfo describes one rule in the battery.
type RuleInfo struct {
	Name      string    `json:"name"`
	Type      IssueType `json:"type"`
	Severity  Severity  `json:"severity"`
	Deduction int       `json:"deduction"`

	// PerMatch marks rules that deduct once per matched term rather
	// than once per firing.
	PerMatch bool   `json:"per_match"`
	Summary  string `json:"summary"`
}

// deadlineMarkers matches any recognizable deadline or timeline phrase,
// including digit/digit date forms. Matched against lowercased text.
var deadlineMarkers = regexp.MustCompile(`by|before|until|deadline|due|eod|end of day|\d+/\d+`)

// vagueWords are terms that defer a commitment without specifying one.
var vagueWords = []string{"asap", "soon", "later", "eventually", "maybe", "probably"}

// ambiguousPronouns matches whole-word pronouns whose referent is unclear.
var ambiguousPronouns = regexp.MustCompile(`(?i)\b(it|this|that|they|them)\b`)

// responsibilityPhrases signal that the text names who owns the task.
var responsibilityPhrases = []string{"you should", "please", "you need to", "your task", "assigned to"}

// technicalTerms are jargon words that assume reader knowledge unless the
// text points at documentation.
var technicalTerms = []string{"api", "endpoint", "database", "server", "deploy", "config"}

// builtinRules returns the full battery in its fixed evaluation order.
// The order is part of the contract: issues come back in this sequence.
func builtinRules() []rule {
	return []rule{
		{
			info: RuleInfo{
				Name:      "deadline",
				Type:      IssueUnclearDeadline,
				Severity:  SeverityHigh,
				Deduction: 15,
				Summary:   "No deadline marker (by, before, until, due, EOD, or a date) anywhere in the text",
			},
			check: checkDeadline,
		},
		{
			info: RuleInfo{
				Name:      "vague_language",
				Type:      IssueVagueLanguage,
				Severity:  SeverityMedium,
				Deduction: 8,
				PerMatch:  true,
				Summary:   "Vague terms such as asap, soon, later, eventually, maybe, probably",
			},
			check: checkVagueLanguage,
		},
		{
			info: RuleInfo{
				Name:      "ambiguous_pronouns",
				Type:      IssueAmbiguousReference,
				Severity:  SeverityMedium,
				Deduction: 10,
				Summary:   "More than two ambiguous pronouns (it, this, that, they, them)",
			},
			check: checkAmbiguousPronouns,
		},
		{
			info: RuleInfo{
				Name:      "missing_steps",
				Type:      IssueMissingSteps,
				Severity:  SeverityHigh,
				Deduction: 12,
				Summary:   "Longer text with fewer than three sentences, suggesting missing detail",
			},
			check: checkMissingSteps,
		},
		{
			info: RuleInfo{
				Name:      "responsibility",
				Type:      IssueUnclearResponsibility,
				Severity:  SeverityMedium,
				Deduction: 8,
				Summary:   "No phrase naming who owns the task (please, you should, assigned to, ...)",
			},
			check: checkResponsibility,
		},
		{
			info: RuleInfo{
				Name:      "assumed_knowledge",
				Type:      IssueAssumedKnowledge,
				Severity:  SeverityLow,
				Deduction: 5,
				Summary:   "Technical terms used without pointing at documentation",
			},
			check: checkAssumedKnowledge,
		},
	}
}

// checkDeadline flags text containing no recognizable deadline marker.
func checkDeadline(d *document) ([]Issue, int) {
	if deadlineMarkers.MatchString(d.lower) {
		return nil, 0
	}
	return []Issue{{
		ID:          newIssueID(),
		Type:        IssueUnclearDeadline,
		Severity:    SeverityHigh,
		Description: "No clear deadline or timeline is specified",
		Location:    "Throughout the instruction",
		Suggestion:  `Add a specific deadline like "by Friday 5pm" or "before end of day"`,
	}}, 15
}

// checkVagueLanguage emits one issue per vague term present, in list order.
// Each match deducts independently; there is no cap.
func checkVagueLanguage(d *document) ([]Issue, int) {
	var issues []Issue
	deduction := 0
	for _, word := range vagueWords {
		if !strings.Contains(d.lower, word) {
			continue
		}
		issues = append(issues, Issue{
			ID:          newIssueID(),
			Type:        IssueVagueLanguage,
			Severity:    SeverityMedium,
			Description: fmt.Sprintf("Vague term %q found - this could cause confusion", word),
			Location:    fmt.Sprintf("%q in the text", word),
			Suggestion:  fmt.Sprintf("Replace %q with a specific timeline or action", word),
		})
		deduction += 8
	}
	return issues, deduction
}

// checkAmbiguousPronouns fires when the text contains more than two
// whole-word pronoun matches. The threshold is strictly greater than two.
func checkAmbiguousPronouns(d *document) ([]Issue, int) {
	matches := ambiguousPronouns.FindAllString(d.text, -1)
	if len(matches) <= 2 {
		return nil, 0
	}

	// Name up to the first three distinct surface forms.
	seen := make(map[string]bool, 3)
	var distinct []string
	for _, m := range matches {
		if seen[m] {
			continue
		}
		seen[m] = true
		distinct = append(distinct, m)
		if len(distinct) == 3 {
			break
		}
	}

	return []Issue{{
		ID:          newIssueID(),
		Type:        IssueAmbiguousReference,
		Severity:    SeverityMedium,
		Description: "Multiple ambiguous pronouns could cause confusion",
		Location:    fmt.Sprintf(`Words like "%s"`, strings.Join(distinct, `", "`)),
		Suggestion:  `Replace pronouns with specific nouns (e.g., "the dashboard" instead of "it")`,
	}}, 10
}

// checkMissingSteps flags longer text that splits into fewer than three
// period-delimited segments.
func checkMissingSteps(d *document) ([]Issue, int) {
	if len(strings.Split(d.text, ".")) >= 3 || len(d.text) <= 50 {
		return nil, 0
	}
	return []Issue{{
		ID:          newIssueID(),
		Type:        IssueMissingSteps,
		Severity:    SeverityHigh,
		Description: "Instructions appear to be missing detailed steps",
		Location:    "Overall structure",
		Suggestion:  "Break down the task into numbered steps with clear actions",
	}}, 12
}

// checkResponsibility flags text that never names who owns the task.
func checkResponsibility(d *document) ([]Issue, int) {
	for _, phrase := range responsibilityPhrases {
		if strings.Contains(d.lower, phrase) {
			return nil, 0
		}
	}
	return []Issue{{
		ID:          newIssueID(),
		Type:        IssueUnclearResponsibility,
		Severity:    SeverityMedium,
		Description: "It's unclear who is responsible for this task",
		Location:    "Throughout the instruction",
		Suggestion:  "Clearly state who should complete this task",
	}}, 8
}

// checkAssumedKnowledge flags technical jargon used without a documentation
// pointer. A single issue names all matched terms and deducts once.
func checkAssumedKnowledge(d *document) ([]Issue, int) {
	var found []string
	for _, term := range technicalTerms {
		if strings.Contains(d.lower, term) {
			found = append(found, term)
		}
	}
	if len(found) == 0 || strings.Contains(d.lower, "see documentation") {
		return nil, 0
	}
	return []Issue{{
		ID:          newIssueID(),
		Type:        IssueAssumedKnowledge,
		Severity:    SeverityLow,
		Description: fmt.Sprintf("Technical terms used without context: %s", strings.Join(found, ", ")),
		Location:    "Technical terminology",
		Suggestion:  "Provide links to documentation or brief explanations of technical terms",
	}}, 5
}
