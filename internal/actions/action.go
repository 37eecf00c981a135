// Package actions contains the user-triggerable preference actions: the
// commands that open settings and keybinding surfaces. Each action is thin
// glue over injected collaborators; it owns no state beyond its
// availability flag and the change subscriptions feeding it.
package actions

import (
	"context"

	"github.com/rssowl/prefdeck/internal/workspace"
)

// Action is a user-triggerable command with an identifier, a label, an
// availability flag, and a run operation. Run resolves when the delegated
// work completes; collaborator failures propagate unmodified. Close
// releases change subscriptions and is safe to call more than once.
type Action interface {
	ID() string
	Label() string
	Enabled() bool
	Run(ctx context.Context) error
	Close() error
}

// Detailer is implemented by actions whose runs have a meaningful subject
// (the picked folder, the picked language). RunDetail reports the subject
// of the most recent Run, or "" when the run was a no-op.
type Detailer interface {
	RunDetail() string
}

// PickEntry is one row of a quick-pick list. SamplePath, when present, is a
// representative file path used only for icon hinting; it is never touched
// on disk.
type PickEntry struct {
	Label       string
	Description string
	SamplePath  string
}

// QuickPicker presents entries and reports the user's single selection.
// The boolean result is false when the user dismissed the picker.
type QuickPicker interface {
	Pick(ctx context.Context, title string, entries []PickEntry) (int, bool, error)
}

// FolderPicker runs the pick-one-workspace-folder command. The boolean
// result is false when the user dismissed the picker.
type FolderPicker interface {
	PickFolder(ctx context.Context) (workspace.Folder, bool, error)
}

type base struct {
	id    string
	label string
}

func (b base) ID() string    { return b.id }
func (b base) Label() string { return b.label }

// subscriptions collects change-listener handles and releases them exactly
// once, on whichever teardown path runs first.
type subscriptions struct {
	subs     []workspace.Subscription
	released bool
}

func (s *subscriptions) add(sub workspace.Subscription) {
	if sub == nil || s.released {
		return
	}
	s.subs = append(s.subs, sub)
}

func (s *subscriptions) release() {
	if s.released {
		return
	}
	s.released = true
	for _, sub := range s.subs {
		sub.Cancel()
	}
	s.subs = nil
}
