package core

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/internal/actions"
	"github.com/rssowl/prefdeck/internal/history"
	"github.com/rssowl/prefdeck/internal/workspace"
)

type StatusMsg struct {
	Text  string
	IsErr bool
}

type PushScreenMsg struct {
	Screen Screen
}

type PopScreenMsg struct{}

type CommandExecuteMsg struct {
	CommandID string
}

type ActionDoneMsg struct {
	ActionID string
	Label    string
	Detail   string
	Err      error
}

type HistoryLoadedMsg struct {
	Entries []history.Entry
	Err     error
}

type WorkspaceChangedMsg struct {
	Folders []workspace.Folder
}

func StatusCmd(text string) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text} }
}

func ErrorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		if err == nil {
			return StatusMsg{Text: "", IsErr: false}
		}
		return StatusMsg{Text: err.Error(), IsErr: true}
	}
}

// RunActionCmd executes the action off the update loop. Dismissed pickers
// surface as a nil error and a no-op. The context carries no deadline: a
// run may legitimately sit inside a picker for as long as the user needs.
func RunActionCmd(a actions.Action) tea.Cmd {
	return func() tea.Msg {
		err := a.Run(context.Background())
		detail := a.Label()
		if d, ok := a.(actions.Detailer); ok {
			if v := d.RunDetail(); v != "" {
				detail = v
			}
		}
		return ActionDoneMsg{ActionID: a.ID(), Label: a.Label(), Detail: detail, Err: err}
	}
}

func LoadHistoryCmd(store *history.Store, limit int) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		entries, err := store.Recent(ctx, limit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}

// RecordHistoryCmd appends a run to the history store and reloads the
// recent entries in one pass.
func RecordHistoryCmd(store *history.Store, actionID, detail string, limit int) tea.Cmd {
	if store == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Record(ctx, actionID, detail); err != nil {
			return HistoryLoadedMsg{Err: err}
		}
		entries, err := store.Recent(ctx, limit)
		return HistoryLoadedMsg{Entries: entries, Err: err}
	}
}
