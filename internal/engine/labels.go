package engine

// Tier is a display-agnostic category shared with the presentation layer.
// Severity, priority, and score ranges each map onto tiers; how a tier
// renders (color, icon, ordering) is the consumer's decision.
type Tier string

const (
	TierDanger  Tier = "danger"
	TierWarning Tier = "warning"
	TierCaution Tier = "caution"
	TierInfo    Tier = "info"
	TierMuted   Tier = "muted"
	TierGood    Tier = "good"
)

// SeverityTier maps an issue severity to its presentation tier. The
// function is total over the closed severity set; anything else maps to
// TierMuted.
func SeverityTier(s Severity) Tier {
	switch s {
	case SeverityHigh:
		return TierDanger
	case SeverityMedium:
		return TierWarning
	case SeverityLow:
		return TierInfo
	}
	return TierMuted
}

// PriorityTier maps an action-item priority to its presentation tier.
func PriorityTier(p Priority) Tier {
	switch p {
	case PriorityHigh:
		return TierDanger
	case PriorityMedium:
		return TierWarning
	case PriorityLow:
		return TierMuted
	}
	return TierMuted
}

// ScoreTier buckets a clarity score for display.
func ScoreTier(score int) Tier {
	switch {
	case score >= 80:
		return TierGood
	case score >= 60:
		return TierWarning
	case score >= 40:
		return TierCaution
	default:
		return TierDanger
	}
}

// ScoreLabel returns the qualitative rating for a clarity score.
func ScoreLabel(score int) string {
	switch {
	case score >= 90:
		return "Excellent"
	case score >= 80:
		return "Good"
	case score >= 70:
		return "Fair"
	case score >= 60:
		return "Needs Improvement"
	case score >= 40:
		return "Poor"
	default:
		return "Very Poor"
	}
}
