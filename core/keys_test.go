package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	if len(s) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "ctrl+k":
		return tea.KeyMsg{Type: tea.KeyCtrlK}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestActionForRespectsScope(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"home"}},
		{Keys: []string{"esc"}, Action: "close", Scopes: []string{"screen:pick"}},
	})
	if a, ok := reg.ActionFor(keyMsg("q"), "home"); !ok || a != "quit" {
		t.Fatalf("expected quit in home, got %q ok=%v", a, ok)
	}
	if _, ok := reg.ActionFor(keyMsg("q"), "screen:pick"); ok {
		t.Fatal("quit should not match inside picker scope")
	}
	if a, ok := reg.ActionFor(keyMsg("esc"), "screen:pick"); !ok || a != "close" {
		t.Fatalf("expected close in picker scope, got %q ok=%v", a, ok)
	}
}

func TestWildcardScopeMatchesEverywhere(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Scopes: []string{"*"}},
	})
	for _, scope := range []string{"home", "screen:pick", "screen:document"} {
		if !reg.IsAction(keyMsg("ctrl+k"), "open-command-palette", scope) {
			t.Fatalf("ctrl+k should match in scope %q", scope)
		}
	}
}

func TestApplyActionKeybindingsOverrides(t *testing.T) {
	defaults := []KeyBinding{
		{Keys: []string{"s"}, Action: "settings.openGlobal", Scopes: []string{"home"}},
		{Keys: []string{"q"}, Action: "quit", Scopes: []string{"home"}},
	}
	out := ApplyActionKeybindings(defaults, map[string][]string{
		"settings.openGlobal": {"S", "ctrl+s"},
	})
	if len(out) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(out))
	}
	if out[0].Keys[0] != "S" || len(out[0].Keys) != 2 {
		t.Fatalf("override not applied: %#v", out[0].Keys)
	}
	if out[1].Keys[0] != "q" {
		t.Fatalf("unrelated binding changed: %#v", out[1].Keys)
	}
	if defaults[0].Keys[0] != "s" {
		t.Fatal("defaults mutated")
	}
}

func TestExportFlattensScopes(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{"s"}, Action: "settings.openGlobal", Description: "settings", Scopes: []string{"home"}},
	})
	out := reg.Export()
	if len(out) != 2 {
		t.Fatalf("expected 2 exported bindings, got %d", len(out))
	}
	if out[0].Scope != "global" {
		t.Fatalf("wildcard scope should export as global, got %q", out[0].Scope)
	}
	if out[1].Scope != "home" || out[1].Action != "settings.openGlobal" {
		t.Fatalf("unexpected export row: %#v", out[1])
	}
}

func TestDefaultBindingsCoverDeckActions(t *testing.T) {
	reg := NewKeyRegistry(DefaultKeyBindings())
	for _, action := range []string{"quit", "deck-run", "open-command-palette", "settings.openGlobal", "settings.configureLanguage"} {
		found := false
		for _, b := range reg.BindingsForScope("home") {
			if b.Action == action {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("no home binding for %q", action)
		}
	}
}
