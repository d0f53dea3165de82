package output

import (
	"fmt"
	"strings"

	"github.com/blackwell-systems/clarify/internal/engine"
)

// TierStyle returns the lipgloss style for a presentation tier. The engine
// decides which tier a value belongs to; this is the only place tiers pick
// up concrete colors.
func TierStyle(t engine.Tier) func(...string) string {
	switch t {
	case engine.TierGood:
		return StyleSuccess.Render
	case engine.TierWarning:
		return StyleWarning.Render
	case engine.TierCaution:
		return StyleCaution.Render
	case engine.TierDanger:
		return StyleError.Render
	case engine.TierInfo:
		return StyleInfo.Render
	default:
		return StyleMuted.Render
	}
}

// SeverityBadge renders a bracketed severity label, e.g. "[HIGH]".
func SeverityBadge(s engine.Severity) string {
	label := "[" + strings.ToUpper(string(s)) + "]"
	return TierStyle(engine.SeverityTier(s))(label)
}

// PriorityBadge renders a bracketed priority label for an action item.
func PriorityBadge(p engine.Priority) string {
	label := "[" + strings.ToUpper(string(p)) + "]"
	return TierStyle(engine.PriorityTier(p))(label)
}

// ScoreBar renders a visual bar for a 0-100 clarity score.
// Example: "████████░░ 80/100 Good"
func ScoreBar(score int, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := score * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	style := TierStyle(engine.ScoreTier(score))

	return fmt.Sprintf("%s %s %s",
		style(bar),
		StyleMuted.Render(fmt.Sprintf("%d/100", score)),
		StyleBold.Render(engine.ScoreLabel(score)),
	)
}

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}
