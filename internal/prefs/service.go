// Package prefs is the preferences surface of the editor: it locates,
// materializes, and opens settings and keybinding documents.
package prefs

import (
	"context"

	"github.com/rssowl/prefdeck/internal/workspace"
)

// Document is a settings or keybindings surface ready to present.
type Document struct {
	Title string
	Path  string
	Body  string
}

// Opener presents an opened document to the user. The TUI pushes a
// document screen; the CLI prints it.
type Opener interface {
	OpenDocument(ctx context.Context, doc Document) error
}

// OpenerFunc adapts a function to the Opener interface.
type OpenerFunc func(ctx context.Context, doc Document) error

func (f OpenerFunc) OpenDocument(ctx context.Context, doc Document) error {
	return f(ctx, doc)
}

// KeyBinding is one entry of the structured keybindings document.
type KeyBinding struct {
	Scope  string   `json:"scope"`
	Action string   `json:"action"`
	Keys   []string `json:"keys"`
	Help   string   `json:"help,omitempty"`
}

// Service opens the editor's settings and keybinding surfaces. Every
// operation resolves once the surface is open; failures from the
// underlying store or opener propagate unmodified.
type Service interface {
	OpenGlobalSettings(ctx context.Context) error
	// OpenGlobalKeybindings opens the keybindings surface: the structured
	// view when raw is false, the editable document when raw is true.
	OpenGlobalKeybindings(ctx context.Context, raw bool) error
	OpenWorkspaceSettings(ctx context.Context) error
	OpenFolderSettings(ctx context.Context, folder workspace.Folder) error
	ConfigureLanguageSettings(ctx context.Context, languageID string) error
}
