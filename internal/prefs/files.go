package prefs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/rssowl/prefdeck/internal/workspace"
)

const (
	settingsFile    = "settings.toml"
	keybindingsFile = "keybindings.json"
	folderDirName   = ".prefdeck"
)

const defaultSettingsTOML = `# prefdeck user settings
# Values here apply to every workspace unless a workspace or folder
# document overrides them.

[editor]
tab_size = 4
insert_spaces = true
trim_trailing_whitespace = true

[files]
auto_save = "off"
exclude = [".git", "node_modules"]
`

const defaultWorkspaceTOML = `# prefdeck workspace settings
# Values here override user settings for every folder of this workspace.

[editor]
`

const defaultFolderTOML = `# prefdeck folder settings
# Values here override workspace settings for this folder only.

[editor]
`

// FileService is the file-backed preferences surface. Global documents
// live under Dir; workspace and folder documents live inside the
// workspace folders themselves.
type FileService struct {
	Dir       string
	Opener    Opener
	Workspace workspace.Context
	// Bindings supplies the current key registry export for the
	// keybinding surfaces.
	Bindings func() []KeyBinding
}

// DefaultDir returns the per-user document directory.
func DefaultDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "prefdeck"), nil
}

func (s *FileService) SettingsPath() string {
	return filepath.Join(s.Dir, settingsFile)
}

func (s *FileService) KeybindingsPath() string {
	return filepath.Join(s.Dir, keybindingsFile)
}

// WorkspaceSettingsPath resolves the workspace document. The workspace
// document is anchored at the first root folder.
func (s *FileService) WorkspaceSettingsPath() (string, error) {
	folders := s.Workspace.Folders()
	if len(folders) == 0 {
		return "", fmt.Errorf("no workspace folder is open")
	}
	return filepath.Join(folders[0].Path, folderDirName, "workspace.toml"), nil
}

func FolderSettingsPath(folder workspace.Folder) string {
	return filepath.Join(folder.Path, folderDirName, settingsFile)
}

func (s *FileService) OpenGlobalSettings(ctx context.Context) error {
	body, err := ensureFile(s.SettingsPath(), defaultSettingsTOML)
	if err != nil {
		return err
	}
	return s.open(ctx, Document{Title: "User Settings", Path: s.SettingsPath(), Body: body})
}

func (s *FileService) OpenGlobalKeybindings(ctx context.Context, raw bool) error {
	if raw {
		body, err := ensureFile(s.KeybindingsPath(), s.defaultKeybindingsJSON())
		if err != nil {
			return err
		}
		return s.open(ctx, Document{Title: "Keybindings File", Path: s.KeybindingsPath(), Body: body})
	}
	return s.open(ctx, Document{
		Title: "Keyboard Shortcuts",
		Path:  s.KeybindingsPath(),
		Body:  renderBindingTable(s.bindings()),
	})
}

func (s *FileService) OpenWorkspaceSettings(ctx context.Context) error {
	path, err := s.WorkspaceSettingsPath()
	if err != nil {
		return err
	}
	body, err := ensureFile(path, defaultWorkspaceTOML)
	if err != nil {
		return err
	}
	return s.open(ctx, Document{Title: "Workspace Settings", Path: path, Body: body})
}

func (s *FileService) OpenFolderSettings(ctx context.Context, folder workspace.Folder) error {
	path := FolderSettingsPath(folder)
	body, err := ensureFile(path, defaultFolderTOML)
	if err != nil {
		return err
	}
	title := "Folder Settings"
	if strings.TrimSpace(folder.Name) != "" {
		title = fmt.Sprintf("Folder Settings: %s", folder.Name)
	}
	return s.open(ctx, Document{Title: title, Path: path, Body: body})
}

// ConfigureLanguageSettings ensures the global document carries a section
// scoped to the language, then opens it. The section is appended textually
// so user comments in the document survive.
func (s *FileService) ConfigureLanguageSettings(ctx context.Context, languageID string) error {
	languageID = strings.TrimSpace(languageID)
	if languageID == "" {
		return fmt.Errorf("language id is required")
	}
	path := s.SettingsPath()
	body, err := ensureFile(path, defaultSettingsTOML)
	if err != nil {
		return err
	}
	var parsed map[string]any
	if err := toml.Unmarshal([]byte(body), &parsed); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	if !hasLanguageSection(parsed, languageID) {
		body = appendLanguageSection(body, languageID)
		if err := writeFileAtomic(path, []byte(body)); err != nil {
			return err
		}
	}
	return s.open(ctx, Document{
		Title: fmt.Sprintf("Language Settings: %s", languageID),
		Path:  path,
		Body:  body,
	})
}

func (s *FileService) open(ctx context.Context, doc Document) error {
	if s.Opener == nil {
		return fmt.Errorf("no document opener configured")
	}
	return s.Opener.OpenDocument(ctx, doc)
}

func (s *FileService) bindings() []KeyBinding {
	if s.Bindings == nil {
		return nil
	}
	return s.Bindings()
}

func (s *FileService) defaultKeybindingsJSON() string {
	items := s.bindings()
	sortBindings(items)
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return "[]\n"
	}
	return string(data) + "\n"
}

func sortBindings(items []KeyBinding) {
	sort.Slice(items, func(i, j int) bool {
		if items[i].Scope != items[j].Scope {
			return items[i].Scope < items[j].Scope
		}
		return items[i].Action < items[j].Action
	})
}

func renderBindingTable(items []KeyBinding) string {
	sortBindings(items)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-26s %-24s %s\n", "SCOPE", "ACTION", "KEYS"))
	for _, kb := range items {
		b.WriteString(fmt.Sprintf("%-26s %-24s %s\n", kb.Scope, kb.Action, strings.Join(kb.Keys, ", ")))
	}
	return b.String()
}

func hasLanguageSection(parsed map[string]any, languageID string) bool {
	languages, ok := parsed["languages"].(map[string]any)
	if !ok {
		return false
	}
	_, ok = languages[languageID]
	return ok
}

func appendLanguageSection(body, languageID string) string {
	if body != "" && !strings.HasSuffix(body, "\n") {
		body += "\n"
	}
	// The key is always quoted: language IDs like "c++" are not valid TOML
	// bare keys and would corrupt the document.
	return body + fmt.Sprintf("\n[languages.%q]\n# settings applied when editing %s files\n", languageID, languageID)
}

// ensureFile reads path, creating it (and its directory) with the default
// content on first use.
func ensureFile(path, defaultContent string) (string, error) {
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return "", fmt.Errorf("create %s: %w", filepath.Dir(path), err)
	}
	if err := writeFileAtomic(path, []byte(defaultContent)); err != nil {
		return "", err
	}
	return defaultContent, nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}
