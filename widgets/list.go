package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type ListRow struct {
	Text string
	Note string
	Dim  bool
}

// List renders rows with an optional highlight cursor. Dim rows carry their
// note inline so disabled entries explain themselves.
type List struct {
	Rows        []ListRow
	Cursor      int
	ShowCursor  bool
	CursorStyle lipgloss.Style
	DimStyle    lipgloss.Style
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	out := make([]string, 0, len(l.Rows))
	for i, row := range l.Rows {
		if len(out) >= height {
			break
		}
		prefix := "  "
		if l.ShowCursor && i == l.Cursor {
			prefix = "> "
		}
		text := row.Text
		if row.Note != "" {
			text += "  (" + row.Note + ")"
		}
		line := ansi.Truncate(prefix+text, width, "…")
		switch {
		case row.Dim:
			line = l.DimStyle.Render(line)
		case l.ShowCursor && i == l.Cursor:
			line = l.CursorStyle.Render(line)
		}
		out = append(out, line)
	}
	if len(out) == 0 {
		out = append(out, l.DimStyle.Render("  (empty)"))
	}
	return strings.Join(out, "\n")
}
