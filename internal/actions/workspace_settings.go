package actions

import (
	"context"

	"github.com/rssowl/prefdeck/internal/prefs"
	"github.com/rssowl/prefdeck/internal/workspace"
)

// WorkspaceSettingsAction opens the workspace settings document. Available
// whenever the session has at least one folder open; the flag tracks
// topology changes.
type WorkspaceSettingsAction struct {
	base
	svc     prefs.Service
	enabled bool
	subs    subscriptions
}

func NewWorkspaceSettings(svc prefs.Service, ws workspace.Context) *WorkspaceSettingsAction {
	a := &WorkspaceSettingsAction{
		base:    base{id: IDOpenWorkspaceSettings, label: "Open Workspace Settings"},
		svc:     svc,
		enabled: ws.Topology() != workspace.TopologyEmpty,
	}
	a.subs.add(ws.OnTopologyChange(func(t workspace.Topology) {
		a.enabled = t != workspace.TopologyEmpty
	}))
	return a
}

func (a *WorkspaceSettingsAction) Enabled() bool { return a.enabled }

func (a *WorkspaceSettingsAction) Run(ctx context.Context) error {
	return a.svc.OpenWorkspaceSettings(ctx)
}

func (a *WorkspaceSettingsAction) Close() error {
	a.subs.release()
	return nil
}

// FolderSettingsAction opens the settings document of one workspace folder.
// Available only in a multi-root workspace with at least one folder; the
// flag tracks both topology and folder-list changes. Run first asks the
// user to pick a folder; a dismissed picker resolves with no effect.
type FolderSettingsAction struct {
	base
	svc        prefs.Service
	picker     FolderPicker
	enabled    bool
	lastDetail string
	subs       subscriptions
}

func NewFolderSettings(svc prefs.Service, ws workspace.Context, picker FolderPicker) *FolderSettingsAction {
	a := &FolderSettingsAction{
		base:   base{id: IDOpenFolderSettings, label: "Open Folder Settings"},
		svc:    svc,
		picker: picker,
	}
	recompute := func() {
		a.enabled = ws.Topology() == workspace.TopologyMultiRoot && len(ws.Folders()) > 0
	}
	recompute()
	a.subs.add(ws.OnTopologyChange(func(workspace.Topology) { recompute() }))
	a.subs.add(ws.OnFoldersChange(func([]workspace.Folder) { recompute() }))
	return a
}

func (a *FolderSettingsAction) Enabled() bool { return a.enabled }

func (a *FolderSettingsAction) Run(ctx context.Context) error {
	a.lastDetail = ""
	folder, ok, err := a.picker.PickFolder(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	a.lastDetail = folder.Path
	return a.svc.OpenFolderSettings(ctx, folder)
}

// RunDetail reports the path of the folder picked by the last Run.
func (a *FolderSettingsAction) RunDetail() string { return a.lastDetail }

func (a *FolderSettingsAction) Close() error {
	a.subs.release()
	return nil
}
