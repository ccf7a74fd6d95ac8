// Package output provides styled terminal rendering helpers for the habitr CLI.
package output

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
)

// Color constants for consistent styling across the CLI.
var (
	// ColorPrimary is used for headers and emphasis.
	ColorPrimary = lipgloss.Color("#6C63FF")

	// ColorSuccess marks habits done for the current period.
	ColorSuccess = lipgloss.Color("#2ECC71")

	// ColorError is used for failures.
	ColorError = lipgloss.Color("#E74C3C")

	// ColorStreak highlights active streaks.
	ColorStreak = lipgloss.Color("#F39C12")

	// ColorMuted is used for secondary text and borders.
	ColorMuted = lipgloss.Color("#666666")
)

// Styles provides reusable lipgloss styles.
var (
	// StyleHeader is used for section headers.
	StyleHeader = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	// StyleSuccess is used for done markers.
	StyleSuccess = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	// StyleError is used for error text.
	StyleError = lipgloss.NewStyle().
			Foreground(ColorError)

	// StyleStreak is used for non-zero streak counts.
	StyleStreak = lipgloss.NewStyle().
			Foreground(ColorStreak).
			Bold(true)

	// StyleMuted is used for de-emphasized text.
	StyleMuted = lipgloss.NewStyle().
			Foreground(ColorMuted)

	// StyleBold is used for emphasized text.
	StyleBold = lipgloss.NewStyle().
			Bold(true)

	// StyleLabel is used for metric labels.
	StyleLabel = lipgloss.NewStyle().
			Width(22)
)

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
		StyleStreak = plain
		StyleMuted = plain
		StyleBold = plain
		StyleLabel = plain.Width(22)
	}
}

// IsNoColor returns whether color output is currently disabled.
func IsNoColor() bool {
	return noColor
}

// Mark renders the done/pending marker for a period.
func Mark(done bool) string {
	if done {
		return StyleSuccess.Render("✓")
	}
	return StyleMuted.Render("○")
}

// Count renders a streak count, highlighted when non-zero.
func Count(n int) string {
	s := strconv.Itoa(n)
	if n > 0 {
		return StyleStreak.Render(s)
	}
	return s
}
