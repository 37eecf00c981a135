package core

import (
	"fmt"
	"strings"

	"github.com/rssowl/prefdeck/internal/actions"
	"github.com/rssowl/prefdeck/widgets"
)

// DisabledReason explains why an availability-gated action cannot run now.
func DisabledReason(id string) string {
	switch id {
	case actions.IDOpenWorkspaceSettings:
		return "open a folder first"
	case actions.IDOpenFolderSettings:
		return "needs a multi-root workspace"
	}
	return "unavailable"
}

func (m *Model) deckPane() widgets.Widget {
	rows := make([]widgets.ListRow, 0, len(m.deck))
	for _, a := range m.deck {
		row := widgets.ListRow{Text: a.Label()}
		if !a.Enabled() {
			row.Dim = true
			row.Note = DisabledReason(a.ID())
		}
		rows = append(rows, row)
	}
	list := widgets.List{
		Rows:        rows,
		Cursor:      m.cursor,
		ShowCursor:  true,
		CursorStyle: cursorRowStyle,
		DimStyle:    dimRowStyle,
	}
	return paneBox("Actions", list)
}

func (m *Model) workspacePane() widgets.Widget {
	var b strings.Builder
	b.WriteString(m.workspace.Topology().String())
	folders := m.workspace.Folders()
	for _, f := range folders {
		b.WriteString("\n" + f.Name + "  " + dimRowStyle.Render(f.Path))
	}
	if len(folders) == 0 {
		b.WriteString("\n" + dimRowStyle.Render("no folders open"))
	}
	return paneBox("Workspace", rawWidget(b.String()))
}

func (m *Model) historyPane() widgets.Widget {
	rows := make([][]string, 0, len(m.histRows))
	for _, e := range m.histRows {
		rows = append(rows, []string{e.RunAt.Local().Format("15:04:05"), e.ActionID, e.Detail})
	}
	table := widgets.Table{
		Headers:     []string{"TIME", "ACTION", "DETAIL"},
		Rows:        rows,
		HeaderStyle: tableHeadStyle,
	}
	title := "History"
	if n := len(m.histRows); n > 0 {
		title = fmt.Sprintf("History (%d)", n)
	}
	return paneBox(title, table)
}

type rawWidget string

func (r rawWidget) Render(width, height int) string { return string(r) }

type boxed struct {
	title string
	inner widgets.Widget
}

func (b boxed) Render(width, height int) string {
	content := b.inner.Render(max(1, width-4), max(1, height-2))
	return widgets.Box{
		Title:       b.title,
		Content:     content,
		TitleStyle:  paneTitleStyle,
		BorderStyle: paneBorderStyle,
	}.Render(width, height)
}

func paneBox(title string, inner widgets.Widget) widgets.Widget {
	return boxed{title: title, inner: inner}
}
