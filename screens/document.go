package screens

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/core"
	"github.com/rssowl/prefdeck/internal/prefs"
)

// DocumentScreen shows an opened preference document in a scrollable view.
type DocumentScreen struct {
	doc   prefs.Document
	view  viewport.Model
	ready bool
}

func NewDocumentScreen(doc prefs.Document) *DocumentScreen {
	return &DocumentScreen{doc: doc}
}

func (s *DocumentScreen) Title() string { return s.doc.Title }
func (s *DocumentScreen) Scope() string { return "screen:document" }

func (s *DocumentScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd, bool) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q":
			return s, nil, true
		}
	}
	var cmd tea.Cmd
	s.view, cmd = s.view.Update(msg)
	return s, cmd, false
}

func (s *DocumentScreen) View(width, height int) string {
	bodyHeight := max(4, height-3)
	if !s.ready || s.view.Width != width || s.view.Height != bodyHeight {
		s.view = viewport.New(width, bodyHeight)
		s.view.SetContent(s.doc.Body)
		s.ready = true
	}
	header := s.doc.Title
	if s.doc.Path != "" {
		header += "  " + s.doc.Path
	}
	return header + "\n\n" + s.view.View()
}
