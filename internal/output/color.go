// Package output provides styled terminal rendering helpers for clarify.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#64b5f6")

	// ColorSuccess is used for good scores and positive indicators.
	ColorSuccess = lipgloss.Color("#66bb6a")

	// ColorError is used for high-severity findings and bad scores.
	ColorError = lipgloss.Color("#ef5350")

	// ColorWarning is used for medium-severity findings.
	ColorWarning = lipgloss.Color("#fff59d")

	// ColorCaution is used for low-range scores above the failure band.
	ColorCaution = lipgloss.Color("#ffb74d")

	// ColorInfo is used for low-severity findings.
	ColorInfo = lipgloss.Color("#4fc3f7")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#888888")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for good scores.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleError is used for high-severity values.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleWarning is used for medium-severity values.
	StyleWarning = lipgloss.NewStyle().
			Foreground(ColorWarning)

	// StyleCaution is used for low-range scores.
	StyleCaution = lipgloss.NewStyle().
			Foreground(ColorCaution)

	// StyleInfo is used for low-severity values.
	StyleInfo = lipgloss.NewStyle().
			Foreground(ColorInfo)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)
)

// noColor tracks whether color output is disabled.
var noColor bool

// SetNoColor disables or enables color output globally.
// When disabled, all package-level styles are reassigned to unstyled renderers.
func SetNoColor(disabled bool) {
	noColor = disabled
	if disabled {
		plain := lipgloss.NewStyle()
		StyleHeader = plain
		StyleSuccess = plain
		StyleError = plain
		StyleWarning = plain
		StyleCaution = plain
		StyleInfo = plain
		StyleMuted = plain
		StyleBold = plain
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// AutoDetect disables color when stdout is not a terminal or the NO_COLOR
// convention is in effect. An explicit SetNoColor call afterwards still wins.
func AutoDetect() {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		SetNoColor(true)
		return
	}
	fd := os.Stdout.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		SetNoColor(true)
	}
}
