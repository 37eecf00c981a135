package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Box frames content with a rounded border and an inline title.
type Box struct {
	Title       string
	Content     string
	TitleStyle  lipgloss.Style
	BorderStyle lipgloss.Style
}

func (b Box) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	inner := make([]string, 0, height)
	for _, line := range strings.Split(b.Content, "\n") {
		inner = append(inner, ansi.Truncate(line, max(1, width-4), "…"))
	}
	body := strings.Join(inner, "\n")
	frame := b.BorderStyle.
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(max(1, width-2)).
		Height(max(1, height-2)).
		Render(body)
	if b.Title == "" {
		return frame
	}
	title := b.TitleStyle.Render(" " + b.Title + " ")
	lines := strings.Split(frame, "\n")
	if len(lines) == 0 {
		return frame
	}
	top := lines[0]
	tw := ansi.StringWidth(title)
	if tw+4 < ansi.StringWidth(top) {
		lines[0] = ansi.Truncate(top, 2, "") + title + dropColumns(top, 2+tw)
	}
	return strings.Join(lines, "\n")
}
