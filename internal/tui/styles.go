package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	colorPrimary   = lipgloss.Color("#6C63FF")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#2ECC71")
	colorWarning   = lipgloss.Color("#F39C12")
	colorError     = lipgloss.Color("#E74C3C")
	colorFg        = lipgloss.Color("#C0CAF5")
	colorSubtle    = lipgloss.Color("#414868")
	colorHighlight = lipgloss.Color("#7AA2F7")
)

// Styles
var (
	// Tabs
	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2)

	inactiveTabStyle = lipgloss.NewStyle().
				Foreground(colorMuted).
				Padding(0, 2)

	// Panels
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSubtle).
			Padding(1, 2)

	activePanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Padding(1, 2)

	// Streak figures
	streakStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWarning)

	doneMarkStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	pendingMarkStyle = lipgloss.NewStyle().
				Foreground(colorMuted)

	// Text
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorFg)

	successStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	highlightStyle = lipgloss.NewStyle().
			Foreground(colorHighlight)

	// Header/footer
	headerStyle = lipgloss.NewStyle().
			Padding(0, 1)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Padding(0, 1)

	// List items
	selectedItemStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true)

	normalItemStyle = lipgloss.NewStyle().
			Foreground(colorFg)

	// Chart segments
	chartCurrentStyle = lipgloss.NewStyle().
				Foreground(colorSuccess)

	chartBestStyle = lipgloss.NewStyle().
			Foreground(colorPrimary)
)

// SetNoColor strips foreground colors from every style. Layout (borders,
// padding, bold) is kept so the views still line up.
func SetNoColor(disabled bool) {
	if !disabled {
		return
	}
	for _, s := range []*lipgloss.Style{
		&activeTabStyle, &inactiveTabStyle, &streakStyle, &doneMarkStyle,
		&pendingMarkStyle, &titleStyle, &successStyle, &errorStyle,
		&mutedStyle, &highlightStyle, &footerStyle, &selectedItemStyle,
		&normalItemStyle, &chartCurrentStyle, &chartBestStyle,
	} {
		*s = s.UnsetForeground().UnsetBorderForeground()
	}
	panelStyle = panelStyle.UnsetBorderForeground()
	activePanelStyle = activePanelStyle.UnsetBorderForeground()
}
