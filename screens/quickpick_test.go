package screens

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/internal/actions"
)

func pickEntries() []actions.PickEntry {
	return []actions.PickEntry{
		{Label: "C", Description: "c", SamplePath: "sample.c"},
		{Label: "Go", Description: "go", SamplePath: "sample.go"},
		{Label: "TypeScript", Description: "typescript", SamplePath: "sample.ts"},
	}
}

func press(s *QuickPickScreen, key tea.KeyMsg) bool {
	_, _, pop := s.Update(key)
	return pop
}

func TestQuickPickSelectReportsIndex(t *testing.T) {
	var gotIndex int
	var gotOK bool
	called := 0
	s := NewQuickPickScreen("Select Language", pickEntries(), func(index int, ok bool) {
		called++
		gotIndex, gotOK = index, ok
	})
	press(s, tea.KeyMsg{Type: tea.KeyDown})
	if !press(s, tea.KeyMsg{Type: tea.KeyEnter}) {
		t.Fatal("enter should pop the screen")
	}
	if called != 1 || !gotOK || gotIndex != 1 {
		t.Fatalf("callback called=%d ok=%v index=%d", called, gotOK, gotIndex)
	}
}

func TestQuickPickDismissReportsNotOK(t *testing.T) {
	var gotOK bool
	s := NewQuickPickScreen("Select Language", pickEntries(), func(index int, ok bool) {
		gotOK = ok
	})
	if !press(s, tea.KeyMsg{Type: tea.KeyEsc}) {
		t.Fatal("esc should pop the screen")
	}
	if gotOK {
		t.Fatal("dismissal should report ok=false")
	}
}

func TestQuickPickFilteredSelectionKeepsOriginalIndex(t *testing.T) {
	var gotIndex int
	s := NewQuickPickScreen("Select Language", pickEntries(), func(index int, ok bool) {
		gotIndex = index
	})
	press(s, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	press(s, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("s")})
	press(s, tea.KeyMsg{Type: tea.KeyEnter})
	if gotIndex != 2 {
		t.Fatalf("expected original index 2, got %d", gotIndex)
	}
}

func TestQuickPickReportsOnce(t *testing.T) {
	called := 0
	s := NewQuickPickScreen("Select Language", pickEntries(), func(index int, ok bool) {
		called++
	})
	press(s, tea.KeyMsg{Type: tea.KeyEnter})
	s.finish(0, false)
	if called != 1 {
		t.Fatalf("callback fired %d times", called)
	}
}
