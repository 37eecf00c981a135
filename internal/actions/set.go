package actions

import (
	"context"

	"github.com/rssowl/prefdeck/internal/langs"
	"github.com/rssowl/prefdeck/internal/prefs"
	"github.com/rssowl/prefdeck/internal/workspace"
)

// WorkspaceFolderPicker is the pick-one-workspace-folder command,
// implemented on top of the quick picker.
type WorkspaceFolderPicker struct {
	Workspace workspace.Context
	UI        QuickPicker
}

func (p *WorkspaceFolderPicker) PickFolder(ctx context.Context) (workspace.Folder, bool, error) {
	folders := p.Workspace.Folders()
	if len(folders) == 0 {
		return workspace.Folder{}, false, nil
	}
	entries := make([]PickEntry, 0, len(folders))
	for _, f := range folders {
		entries = append(entries, PickEntry{
			Label:       f.Name,
			Description: f.Path,
			SamplePath:  f.Path,
		})
	}
	idx, ok, err := p.UI.Pick(ctx, "Select Workspace Folder", entries)
	if err != nil || !ok {
		return workspace.Folder{}, false, err
	}
	return folders[idx], true, nil
}

// Set bundles every preference action behind one constructor and one
// teardown.
type Set struct {
	actions []Action
	byID    map[string]Action
}

func NewSet(svc prefs.Service, ws workspace.Context, registry langs.Registry, ui QuickPicker) *Set {
	folderPicker := &WorkspaceFolderPicker{Workspace: ws, UI: ui}
	s := &Set{byID: make(map[string]Action)}
	for _, a := range []Action{
		NewOpenGlobalSettings(svc),
		NewOpenGlobalKeybindings(svc),
		NewOpenRawKeybindings(svc),
		NewWorkspaceSettings(svc, ws),
		NewFolderSettings(svc, ws, folderPicker),
		NewConfigureLanguage(svc, registry, ui),
	} {
		s.actions = append(s.actions, a)
		s.byID[a.ID()] = a
	}
	return s
}

// All returns the actions in registration order.
func (s *Set) All() []Action {
	return append([]Action(nil), s.actions...)
}

func (s *Set) Get(id string) (Action, bool) {
	a, ok := s.byID[id]
	return a, ok
}

// Close tears down every action. Safe to call more than once.
func (s *Set) Close() error {
	for _, a := range s.actions {
		_ = a.Close()
	}
	return nil
}
