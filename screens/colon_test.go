package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/core"
)

func typeInput(s core.Screen, text string) core.Screen {
	for _, r := range text {
		s, _, _ = s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return s
}

func TestColonExecutesResolvedCommand(t *testing.T) {
	s := NewColonScreen(
		func(input string) (string, bool) {
			if input == "quit" {
				return "app.quit", true
			}
			return "", false
		},
		func(string) string { return "" },
	)
	scr := typeInput(s, "quit")
	_, cmd, pop := scr.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("enter should pop")
	}
	msg, ok := cmd().(core.CommandExecuteMsg)
	if !ok || msg.CommandID != "app.quit" {
		t.Fatalf("unexpected msg: %#v", cmd())
	}
}

func TestColonSuggestsClosestOnUnknown(t *testing.T) {
	s := NewColonScreen(
		func(string) (string, bool) { return "", false },
		func(string) string { return "settings.openGlobal" },
	)
	scr := typeInput(s, "setings")
	_, cmd, pop := scr.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop {
		t.Fatal("enter should pop")
	}
	msg := cmd().(core.StatusMsg)
	if !strings.Contains(msg.Text, "did you mean settings.openGlobal?") {
		t.Fatalf("missing suggestion: %q", msg.Text)
	}
}

func TestColonEmptyInputJustCloses(t *testing.T) {
	s := NewColonScreen(
		func(string) (string, bool) { return "", false },
		func(string) string { return "" },
	)
	_, cmd, pop := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if !pop || cmd != nil {
		t.Fatalf("empty enter should close silently, pop=%v cmd=%v", pop, cmd)
	}
}
