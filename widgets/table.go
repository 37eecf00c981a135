package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Table renders rows under a header with columns sized to content.
type Table struct {
	Headers     []string
	Rows        [][]string
	HeaderStyle lipgloss.Style
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 || len(t.Headers) == 0 {
		return ""
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	line := func(cells []string, style *lipgloss.Style) string {
		parts := make([]string, 0, len(widths))
		for i := range widths {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			parts = append(parts, padCell(cell, widths[i]))
		}
		s := strings.TrimRight(strings.Join(parts, "  "), " ")
		s = ansi.Truncate(s, width, "…")
		if style != nil {
			return style.Render(s)
		}
		return s
	}
	out := []string{line(t.Headers, &t.HeaderStyle)}
	for _, row := range t.Rows {
		if len(out) >= height {
			break
		}
		out = append(out, line(row, nil))
	}
	return strings.Join(out, "\n")
}

func padCell(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
