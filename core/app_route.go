package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop()
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case ActionDoneMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		m.SetStatus(msg.Label + ": done")
		detail := msg.Detail
		if detail == "" {
			detail = msg.Label
		}
		return m, RecordHistoryCmd(m.history, msg.ActionID, detail, m.HistoryLimit)
	case HistoryLoadedMsg:
		if msg.Err != nil {
			m.SetError(msg.Err)
			return m, nil
		}
		m.histRows = msg.Entries
		return m, nil
	case WorkspaceChangedMsg:
		return m, nil
	case tea.KeyMsg:
		return m.routeKey(msg)
	}

	// Non-key messages still reach the top screen so spinners and inputs tick.
	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		if next != nil {
			m.screens.ReplaceTop(next)
		}
		return m, cmd
	}
	return m, nil
}

func (m Model) routeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop()
			return m, cmd
		}
		if next != nil {
			m.screens.ReplaceTop(next)
		}
		return m, cmd
	}

	scope := m.ActiveScope()
	action, ok := m.keys.ActionFor(msg, scope)
	if !ok {
		return m, nil
	}
	switch action {
	case "quit":
		m.quitting = true
		return m, tea.Quit
	case "deck-up":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "deck-down":
		if m.cursor < len(m.deck)-1 {
			m.cursor++
		}
		return m, nil
	case "deck-run":
		if a, ok := m.SelectedAction(); ok {
			return m, m.commands.Execute(a.ID(), &m)
		}
		return m, nil
	case "open-command-palette":
		if m.OpenCommandModal != nil {
			m.screens.Push(m.OpenCommandModal(&m, scope))
		}
		return m, nil
	case "colon-command":
		if m.OpenColonModal != nil {
			m.screens.Push(m.OpenColonModal(&m))
		}
		return m, nil
	case "history-refresh":
		return m, LoadHistoryCmd(m.history, m.HistoryLimit)
	default:
		// Remaining bindings name command IDs directly.
		return m, m.commands.Execute(action, &m)
	}
}
