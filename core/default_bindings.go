package core

import "github.com/rssowl/prefdeck/internal/actions"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{"home"}},
		{Keys: []string{"j", "down"}, Action: "deck-down", Description: "next action", Scopes: []string{"home"}},
		{Keys: []string{"k", "up"}, Action: "deck-up", Description: "prev action", Scopes: []string{"home"}},
		{Keys: []string{"enter"}, Action: "deck-run", Description: "run action", Scopes: []string{"home"}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{"*"}},
		{Keys: []string{":"}, Action: "colon-command", Description: "command by name", Scopes: []string{"home"}},
		{Keys: []string{"r"}, Action: "history-refresh", Description: "reload history", Scopes: []string{"home"}},
		{Keys: []string{"s"}, Action: actions.IDOpenGlobalSettings, Description: "settings", Scopes: []string{"home"}},
		{Keys: []string{"b"}, Action: actions.IDOpenGlobalKeybindings, Description: "shortcuts", Scopes: []string{"home"}},
		{Keys: []string{"B"}, Action: actions.IDOpenRawKeybindings, Description: "raw keybindings", Scopes: []string{"home"}},
		{Keys: []string{"w"}, Action: actions.IDOpenWorkspaceSettings, Description: "workspace", Scopes: []string{"home"}},
		{Keys: []string{"f"}, Action: actions.IDOpenFolderSettings, Description: "folder", Scopes: []string{"home"}},
		{Keys: []string{"l"}, Action: actions.IDConfigureLanguage, Description: "language", Scopes: []string{"home"}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{"screen:pick", "screen:command", "screen:colon", "screen:document"}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{"screen:pick", "screen:command", "screen:colon"}},
	}
}
