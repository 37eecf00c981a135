package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/core"
)

// ColonScreen runs a command by typed ID or name, with a nearest-match
// suggestion when the input resolves to nothing.
type ColonScreen struct {
	resolve func(input string) (string, bool)
	closest func(input string) string
	input   textinput.Model
}

func NewColonScreen(resolve func(string) (string, bool), closest func(string) string) *ColonScreen {
	inp := textinput.New()
	inp.Prompt = ":"
	inp.Placeholder = "command id or name"
	inp.Focus()
	return &ColonScreen{resolve: resolve, closest: closest, input: inp}
}

func (s *ColonScreen) Title() string { return "Run Command" }
func (s *ColonScreen) Scope() string { return "screen:colon" }

func (s *ColonScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return s, nil, true
		case "enter":
			raw := strings.TrimSpace(s.input.Value())
			if raw == "" {
				return s, nil, true
			}
			if id, ok := s.resolve(raw); ok {
				return s, func() tea.Msg { return core.CommandExecuteMsg{CommandID: id} }, true
			}
			text := "Unknown command: " + raw
			if hint := s.closest(raw); hint != "" {
				text += " (did you mean " + hint + "?)"
			}
			return s, core.StatusCmd(text), true
		}
	}
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd, false
}

func (s *ColonScreen) View(width, height int) string {
	return "Run Command\n" + s.input.View() + "\nEnter run. Esc cancel."
}
