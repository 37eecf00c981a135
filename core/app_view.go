package core

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/rssowl/prefdeck/widgets"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	available := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if available < 0 {
		available = 0
	}
	var body string
	if available > 0 {
		layout := widgets.HStack{
			Widgets: []widgets.Widget{
				m.deckPane(),
				widgets.VStack{
					Widgets: []widgets.Widget{m.workspacePane(), m.historyPane()},
					Ratios:  []float64{1, 1.6},
				},
			},
			Ratios: []float64{1.1, 1},
			Gap:    1,
		}
		body = layout.Render(max(1, m.width-2), available)
	}
	if top := m.screens.Top(); top != nil && available > 0 {
		body = widgets.RenderPopup(body, top.View(max(20, m.width-12), max(8, m.height-8)), m.width-2, available)
	}
	body = fitHeight(body, available)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return appStyle.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	left := headerAppStyle.Render("prefdeck")
	folders := m.workspace.Folders()
	summary := m.workspace.Topology().String()
	if n := len(folders); n > 0 {
		summary = fmt.Sprintf("%s · %d folder(s)", summary, n)
	}
	right := headerBarStyle.Render(summary)
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	return renderBar(headerBarStyle, max(1, m.width), left+strings.Repeat(" ", gap)+right, colors.Mantle)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
