package core

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/internal/actions"
	"github.com/rssowl/prefdeck/internal/history"
	"github.com/rssowl/prefdeck/internal/workspace"
)

type Screen interface {
	Update(msg tea.Msg) (Screen, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type Model struct {
	width        int
	height       int
	screens      ScreenStack
	keys         *KeyRegistry
	commands     *CommandRegistry
	status       string
	statusErr    bool
	quitting     bool
	cursor       int
	deck         []actions.Action
	workspace    workspace.Context
	history      *history.Store
	histRows     []history.Entry
	HistoryLimit int

	// Screen constructors are injected to keep core free of screens/.
	OpenCommandModal func(m *Model, scope string) Screen
	OpenColonModal   func(m *Model) Screen
}

func NewModel(deck *actions.Set, ws workspace.Context, keys *KeyRegistry, commands *CommandRegistry, store *history.Store) Model {
	return Model{
		deck:         deck.All(),
		workspace:    ws,
		keys:         keys,
		commands:     commands,
		history:      store,
		status:       "Ready",
		HistoryLimit: 10,
		width:        100,
		height:       32,
	}
}

func (m Model) Init() tea.Cmd {
	return LoadHistoryCmd(m.history, m.HistoryLimit)
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if top := m.screens.Top(); top != nil {
		return top.Scope()
	}
	return "home"
}

func (m *Model) PushScreen(s Screen) {
	m.screens.Push(s)
}

func (m *Model) SelectedAction() (actions.Action, bool) {
	if len(m.deck) == 0 {
		return nil, false
	}
	idx := m.cursor
	if idx < 0 {
		idx = 0
	}
	if idx >= len(m.deck) {
		idx = len(m.deck) - 1
	}
	return m.deck[idx], true
}

func (m *Model) CommandRegistry() *CommandRegistry {
	return m.commands
}

func (m *Model) Workspace() workspace.Context {
	return m.workspace
}
