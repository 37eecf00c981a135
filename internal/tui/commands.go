package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/core"
	"github.com/rssowl/prefdeck/internal/actions"
	"github.com/rssowl/prefdeck/internal/history"
)

func commandDesc(id string) string {
	switch id {
	case actions.IDOpenGlobalSettings:
		return "Edit the global settings document"
	case actions.IDOpenGlobalKeybindings:
		return "Browse keyboard shortcuts"
	case actions.IDOpenRawKeybindings:
		return "Edit the keybindings file directly"
	case actions.IDOpenWorkspaceSettings:
		return "Edit settings scoped to this workspace"
	case actions.IDOpenFolderSettings:
		return "Edit settings for one workspace folder"
	case actions.IDConfigureLanguage:
		return "Edit settings for a specific language"
	}
	return ""
}

func buildCommands(deck *actions.Set, store *history.Store) []core.Command {
	cmds := make([]core.Command, 0, len(deck.All())+2)
	for _, a := range deck.All() {
		a := a
		cmds = append(cmds, core.Command{
			ID:          a.ID(),
			Name:        a.Label(),
			Description: commandDesc(a.ID()),
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return core.RunActionCmd(a)
			},
			Disabled: func(m *core.Model) (bool, string) {
				if a.Enabled() {
					return false, ""
				}
				return true, core.DisabledReason(a.ID())
			},
		})
	}
	cmds = append(cmds,
		core.Command{
			ID:          "history.refresh",
			Name:        "Reload History",
			Description: "Reload the recent action history",
			Scopes:      []string{"*"},
			Execute: func(m *core.Model) tea.Cmd {
				return core.LoadHistoryCmd(store, m.HistoryLimit)
			},
		},
		core.Command{
			ID:          "app.quit",
			Name:        "Quit",
			Description: "Exit prefdeck",
			Scopes:      []string{"home"},
			Execute: func(m *core.Model) tea.Cmd {
				return tea.Quit
			},
		},
	)
	return cmds
}
