package engine

// ScoreBreakdown decomposes an overall clarity score into per-aspect
// component scores derived from the issue set. Components are heuristic
// views of the same findings, not independent analyses.
type ScoreBreakdown struct {
	Total         int `json:"total"`
	Clarity       int `json:"clarity"`
	Completeness  int `json:"completeness"`
	Specificity   int `json:"specificity"`
	Actionability int `json:"actionability"`
}

// Breakdown derives component scores from the overall score and its issues.
// Every component is clamped to [0,100].
func Breakdown(score int, issues []Issue) ScoreBreakdown {
	var high, medium int
	for _, issue := range issues {
		switch issue.Severity {
		case SeverityHigh:
			high++
		case SeverityMedium:
			medium++
		}
	}
	count := len(issues)

	return ScoreBreakdown{
		Total:         score,
		Clarity:       floorScore(100 - (high*15 + medium*8)),
		Completeness:  floorScore(100 - count*10),
		Specificity:   floorScore(100 - high*12),
		Actionability: floorScore(100 - count*8),
	}
}

func floorScore(v int) int {
	if v < 0 {
		return 0
	}
	return v
}
