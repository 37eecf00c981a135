package screens

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/core"
	"github.com/rssowl/prefdeck/internal/actions"
)

// QuickPickScreen renders a filterable list of entries and reports the
// outcome exactly once, whether selected, dismissed, or discarded.
type QuickPickScreen struct {
	title  string
	picker *core.Picker
	onDone func(index int, ok bool)
	done   bool
}

func NewQuickPickScreen(title string, entries []actions.PickEntry, onDone func(index int, ok bool)) *QuickPickScreen {
	items := make([]core.PickerItem, 0, len(entries))
	for _, e := range entries {
		items = append(items, core.PickerItem{
			Label:  e.Label,
			Detail: e.Description,
			Sample: e.SamplePath,
		})
	}
	return &QuickPickScreen{
		title:  title,
		picker: core.NewPicker(title, items),
		onDone: onDone,
	}
}

func (s *QuickPickScreen) Title() string { return s.title }
func (s *QuickPickScreen) Scope() string { return "screen:pick" }

func (s *QuickPickScreen) finish(index int, ok bool) {
	if s.done {
		return
	}
	s.done = true
	if s.onDone != nil {
		s.onDone(index, ok)
	}
}

func (s *QuickPickScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil, false
	}
	result := s.picker.HandleKey(keyMsg.String())
	switch result.Action {
	case core.PickerActionCancelled:
		s.finish(0, false)
		return s, nil, true
	case core.PickerActionSelected:
		s.finish(result.Index, true)
		return s, nil, true
	default:
		return s, nil, false
	}
}

func (s *QuickPickScreen) View(width, height int) string {
	lines := []string{s.title}
	filter := s.picker.Query()
	if filter == "" {
		filter = "(type to filter)"
	}
	lines = append(lines, "Filter: "+filter, "")
	items := s.picker.Items()
	if len(items) == 0 {
		lines = append(lines, "  No matches")
	} else {
		for idx, item := range items {
			prefix := "  "
			if idx == s.picker.Cursor() {
				prefix = "> "
			}
			label := item.Label
			if item.Sample != "" {
				label += "  " + item.Sample
			} else if item.Detail != "" {
				label += "  " + item.Detail
			}
			lines = append(lines, prefix+label)
		}
	}
	lines = append(lines, "", "Enter select. Esc cancel.")
	return core.ClipHeight(strings.Join(lines, "\n"), max(6, height))
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
