package tui

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rssowl/prefdeck/core"
	"github.com/rssowl/prefdeck/internal/actions"
	"github.com/rssowl/prefdeck/internal/config"
	"github.com/rssowl/prefdeck/internal/history"
	"github.com/rssowl/prefdeck/internal/langs"
	"github.com/rssowl/prefdeck/internal/prefs"
	"github.com/rssowl/prefdeck/internal/workspace"
	"github.com/rssowl/prefdeck/screens"
)

// Run wires the preference service, workspace session, and action set into
// a bubbletea program and blocks until the user quits.
func Run(cfg config.Config, folders []string) error {
	core.SetTheme(cfg.UI.Theme)

	paths := cfg.Workspace.Folders
	if len(folders) > 0 {
		paths = folders
	}
	session := workspace.NewSession(workspace.FoldersFromPaths(paths)...)

	registry := langs.BuiltinWith(cfg.Languages...)

	dir := cfg.Documents.Dir
	if dir == "" {
		var err error
		dir, err = prefs.DefaultDir()
		if err != nil {
			return fmt.Errorf("resolve documents dir: %w", err)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir documents dir: %w", err)
	}

	var store *history.Store
	if cfg.History.Enabled {
		if err := os.MkdirAll(filepath.Dir(cfg.History.Path), 0o755); err != nil {
			return fmt.Errorf("mkdir history dir: %w", err)
		}
		db, err := history.Open(cfg.History.Path)
		if err != nil {
			return fmt.Errorf("open history: %w", err)
		}
		defer db.Close()
		if err := history.RunMigrations(db); err != nil {
			return fmt.Errorf("migrate history: %w", err)
		}
		store = history.NewStore(db)
	}

	// The program pointer is assigned after construction; actions only run
	// once the loop is live, so Send never sees a nil program.
	var program *tea.Program
	send := func(msg tea.Msg) { program.Send(msg) }

	keyReg := core.NewKeyRegistry(loadKeyBindings(dir))

	svc := &prefs.FileService{
		Dir:       dir,
		Opener:    &screens.DocumentOpener{Send: send},
		Workspace: session,
		Bindings:  keyReg.Export,
	}

	deck := actions.NewSet(svc, session, registry, &screens.ModalPicker{Send: send})
	defer deck.Close()

	commands := core.NewCommandRegistry(buildCommands(deck, store))
	model := core.NewModel(deck, session, keyReg, commands, store)
	model.OpenCommandModal = func(m *core.Model, scope string) core.Screen {
		return openCommandModal(m, scope, cfg.UI.PickerHeight)
	}
	model.OpenColonModal = openColonModal

	program = tea.NewProgram(model, tea.WithAltScreen())
	sub := session.OnFoldersChange(func(folders []workspace.Folder) {
		program.Send(core.WorkspaceChangedMsg{Folders: folders})
	})
	defer sub.Cancel()
	_, err := program.Run()
	return err
}

// loadKeyBindings applies overrides from the raw keybindings document when
// one has been written, so edits there take effect on the next start.
func loadKeyBindings(dir string) []core.KeyBinding {
	defaults := core.DefaultKeyBindings()
	data, err := os.ReadFile(filepath.Join(dir, "keybindings.json"))
	if err != nil {
		return defaults
	}
	var saved []prefs.KeyBinding
	if err := json.Unmarshal(data, &saved); err != nil {
		return defaults
	}
	overrides := make(map[string][]string, len(saved))
	for _, b := range saved {
		if b.Action == "" || len(b.Keys) == 0 {
			continue
		}
		overrides[b.Action] = b.Keys
	}
	return core.ApplyActionKeybindings(defaults, overrides)
}

func openCommandModal(m *core.Model, scope string, height int) core.Screen {
	reg := m.CommandRegistry()
	search := func(query string) []screens.CommandOption {
		results := reg.Search(query, scope, m)
		out := make([]screens.CommandOption, 0, len(results))
		for _, r := range results {
			out = append(out, screens.CommandOption{
				ID:       r.CommandID,
				Name:     r.Name,
				Desc:     r.Desc,
				Disabled: r.Disabled,
				Reason:   r.Reason,
			})
		}
		return out
	}
	onSelect := func(id string) tea.Msg { return core.CommandExecuteMsg{CommandID: id} }
	return screens.NewCommandScreen(scope, height, search, onSelect)
}

func openColonModal(m *core.Model) core.Screen {
	reg := m.CommandRegistry()
	return screens.NewColonScreen(reg.Resolve, reg.Closest)
}
