package actions

import (
	"context"

	"github.com/rssowl/prefdeck/internal/prefs"
)

// Action identifiers. Stable: they key keybindings, palette entries, and
// history rows.
const (
	IDOpenGlobalSettings     = "settings.openGlobal"
	IDOpenGlobalKeybindings  = "settings.openGlobalKeybindings"
	IDOpenRawKeybindings     = "settings.openRawKeybindings"
	IDOpenWorkspaceSettings  = "settings.openWorkspace"
	IDOpenFolderSettings     = "settings.openFolder"
	IDConfigureLanguage      = "settings.configureLanguage"
)

// openAction delegates its whole run to a single service call. Always
// enabled, nothing to tear down.
type openAction struct {
	base
	run func(ctx context.Context) error
}

func (a *openAction) Enabled() bool               { return true }
func (a *openAction) Run(ctx context.Context) error { return a.run(ctx) }
func (a *openAction) Close() error                { return nil }

// NewOpenGlobalSettings opens the user settings document.
func NewOpenGlobalSettings(svc prefs.Service) Action {
	return &openAction{
		base: base{id: IDOpenGlobalSettings, label: "Open Settings"},
		run:  svc.OpenGlobalSettings,
	}
}

// NewOpenGlobalKeybindings opens the structured keyboard shortcuts view.
func NewOpenGlobalKeybindings(svc prefs.Service) Action {
	return &openAction{
		base: base{id: IDOpenGlobalKeybindings, label: "Open Keyboard Shortcuts"},
		run: func(ctx context.Context) error {
			return svc.OpenGlobalKeybindings(ctx, false)
		},
	}
}

// NewOpenRawKeybindings opens the keybindings file as an editable document.
func NewOpenRawKeybindings(svc prefs.Service) Action {
	return &openAction{
		base: base{id: IDOpenRawKeybindings, label: "Open Keybindings File"},
		run: func(ctx context.Context) error {
			return svc.OpenGlobalKeybindings(ctx, true)
		},
	}
}
