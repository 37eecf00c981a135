package core

import "github.com/charmbracelet/lipgloss"

var (
	appStyle          lipgloss.Style
	headerAppStyle    lipgloss.Style
	headerBarStyle    lipgloss.Style
	statusBarStyle    lipgloss.Style
	statusErrBarStyle lipgloss.Style
	footerStyle       lipgloss.Style

	paneTitleStyle  lipgloss.Style
	paneBorderStyle lipgloss.Style
	cursorRowStyle  lipgloss.Style
	dimRowStyle     lipgloss.Style
	tableHeadStyle  lipgloss.Style
)

func rebuildStyles() {
	appStyle = lipgloss.NewStyle().Foreground(colors.Text)
	headerAppStyle = lipgloss.NewStyle().Foreground(colors.Accent).Bold(true)
	headerBarStyle = lipgloss.NewStyle().Background(colors.Mantle).Foreground(colors.Text)
	statusBarStyle = lipgloss.NewStyle().Foreground(colors.Success).Background(colors.Surface)
	statusErrBarStyle = lipgloss.NewStyle().Foreground(colors.Error).Background(colors.Surface)
	footerStyle = lipgloss.NewStyle().Background(colors.Mantle)

	paneTitleStyle = lipgloss.NewStyle().Foreground(colors.Accent).Bold(true)
	paneBorderStyle = lipgloss.NewStyle().BorderForeground(colors.Border)
	cursorRowStyle = lipgloss.NewStyle().Foreground(colors.Accent).Bold(true)
	dimRowStyle = lipgloss.NewStyle().Foreground(colors.Muted)
	tableHeadStyle = lipgloss.NewStyle().Foreground(colors.Muted).Bold(true)
}

func init() {
	rebuildStyles()
}
