package prefs

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"

	"github.com/rssowl/prefdeck/internal/workspace"
)

type captureOpener struct {
	docs []Document
}

func (c *captureOpener) OpenDocument(_ context.Context, doc Document) error {
	c.docs = append(c.docs, doc)
	return nil
}

func newTestService(t *testing.T, folders ...workspace.Folder) (*FileService, *captureOpener) {
	t.Helper()
	opener := &captureOpener{}
	svc := &FileService{
		Dir:       t.TempDir(),
		Opener:    opener,
		Workspace: workspace.NewSession(folders...),
		Bindings: func() []KeyBinding {
			return []KeyBinding{
				{Scope: "global", Action: "quit", Keys: []string{"q", "ctrl+c"}},
				{Scope: "picker", Action: "close", Keys: []string{"esc"}},
			}
		},
	}
	return svc, opener
}

func TestOpenGlobalSettingsCreatesDefaultDocument(t *testing.T) {
	svc, opener := newTestService(t)

	require.NoError(t, svc.OpenGlobalSettings(context.Background()))
	require.Len(t, opener.docs, 1)

	doc := opener.docs[0]
	require.Equal(t, "User Settings", doc.Title)
	require.Equal(t, svc.SettingsPath(), doc.Path)
	require.Contains(t, doc.Body, "[editor]")

	// The document was persisted, not just synthesized.
	onDisk, err := os.ReadFile(svc.SettingsPath())
	require.NoError(t, err)
	require.Equal(t, doc.Body, string(onDisk))
}

func TestOpenGlobalSettingsKeepsExistingContent(t *testing.T) {
	svc, opener := newTestService(t)
	custom := "[editor]\ntab_size = 2\n"
	require.NoError(t, os.MkdirAll(svc.Dir, 0o755))
	require.NoError(t, os.WriteFile(svc.SettingsPath(), []byte(custom), 0o600))

	require.NoError(t, svc.OpenGlobalSettings(context.Background()))
	require.Equal(t, custom, opener.docs[0].Body)
}

func TestOpenGlobalKeybindingsRawWritesExport(t *testing.T) {
	svc, opener := newTestService(t)

	require.NoError(t, svc.OpenGlobalKeybindings(context.Background(), true))
	require.Len(t, opener.docs, 1)
	doc := opener.docs[0]
	require.Equal(t, "Keybindings File", doc.Title)
	require.Contains(t, doc.Body, `"action": "quit"`)

	_, err := os.Stat(svc.KeybindingsPath())
	require.NoError(t, err)
}

func TestOpenGlobalKeybindingsStructuredView(t *testing.T) {
	svc, opener := newTestService(t)

	require.NoError(t, svc.OpenGlobalKeybindings(context.Background(), false))
	doc := opener.docs[0]
	require.Equal(t, "Keyboard Shortcuts", doc.Title)
	require.Contains(t, doc.Body, "SCOPE")
	require.Contains(t, doc.Body, "q, ctrl+c")

	// Structured view never creates the raw document.
	_, err := os.Stat(svc.KeybindingsPath())
	require.True(t, os.IsNotExist(err))
}

func TestOpenWorkspaceSettingsRequiresFolder(t *testing.T) {
	svc, _ := newTestService(t)
	err := svc.OpenWorkspaceSettings(context.Background())
	require.Error(t, err)
}

func TestOpenWorkspaceSettingsAnchorsAtFirstFolder(t *testing.T) {
	first := workspace.Folder{Name: "alpha", Path: t.TempDir()}
	second := workspace.Folder{Name: "beta", Path: t.TempDir()}
	svc, opener := newTestService(t, first, second)

	require.NoError(t, svc.OpenWorkspaceSettings(context.Background()))
	doc := opener.docs[0]
	require.Equal(t, filepath.Join(first.Path, folderDirName, "workspace.toml"), doc.Path)
}

func TestOpenFolderSettings(t *testing.T) {
	folder := workspace.Folder{Name: "svc", Path: t.TempDir()}
	svc, opener := newTestService(t, folder)

	require.NoError(t, svc.OpenFolderSettings(context.Background(), folder))
	doc := opener.docs[0]
	require.Equal(t, "Folder Settings: svc", doc.Title)
	require.Equal(t, FolderSettingsPath(folder), doc.Path)
}

func TestConfigureLanguageSettingsAppendsSectionOnce(t *testing.T) {
	svc, opener := newTestService(t)
	ctx := context.Background()

	require.NoError(t, svc.ConfigureLanguageSettings(ctx, "go"))
	require.NoError(t, svc.ConfigureLanguageSettings(ctx, "go"))

	data, err := os.ReadFile(svc.SettingsPath())
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), `[languages."go"]`))

	require.Len(t, opener.docs, 2)
	require.Equal(t, "Language Settings: go", opener.docs[0].Title)
}

func TestConfigureLanguageSettingsPreservesUserComments(t *testing.T) {
	svc, _ := newTestService(t)
	custom := "# my tweaks\n[editor]\ntab_size = 8\n"
	require.NoError(t, os.MkdirAll(svc.Dir, 0o755))
	require.NoError(t, os.WriteFile(svc.SettingsPath(), []byte(custom), 0o600))

	require.NoError(t, svc.ConfigureLanguageSettings(context.Background(), "rust"))

	data, err := os.ReadFile(svc.SettingsPath())
	require.NoError(t, err)
	require.Contains(t, string(data), "# my tweaks")
	require.Contains(t, string(data), `[languages."rust"]`)
}

func TestConfigureLanguageSettingsRejectsEmptyID(t *testing.T) {
	svc, _ := newTestService(t)
	require.Error(t, svc.ConfigureLanguageSettings(context.Background(), "  "))
}

func TestConfigureLanguageSettingsQuotesNonBareIDs(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	// "c++" is not a valid TOML bare key; the section header must quote it
	// or the next parse of the document fails.
	require.NoError(t, svc.ConfigureLanguageSettings(ctx, "c++"))
	require.NoError(t, svc.ConfigureLanguageSettings(ctx, "c++"))

	data, err := os.ReadFile(svc.SettingsPath())
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(string(data), `[languages."c++"]`))

	var parsed map[string]any
	require.NoError(t, toml.Unmarshal(data, &parsed))
	languages, ok := parsed["languages"].(map[string]any)
	require.True(t, ok, "languages table missing: %s", data)
	require.Contains(t, languages, "c++")
}
