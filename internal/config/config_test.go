package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rssowl/prefdeck/internal/langs"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PREFDECK_CONFIG", filepath.Join(t.TempDir(), "missing.toml"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Documents.Dir == "" {
		t.Fatal("documents dir default missing")
	}
	if !cfg.History.Enabled {
		t.Fatal("history should default to enabled")
	}
	if cfg.UI.PickerHeight != 12 {
		t.Fatalf("picker height = %d, want 12", cfg.UI.PickerHeight)
	}
	if cfg.UI.Theme != "dark" {
		t.Fatalf("theme = %q, want dark", cfg.UI.Theme)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[documents]
dir = "/tmp/deck-docs"

[ui]
theme = "LIGHT"
picker_height = 99

[workspace]
folders = ["/src/api", "/src/web"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PREFDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Documents.Dir != "/tmp/deck-docs" {
		t.Fatalf("documents dir = %q", cfg.Documents.Dir)
	}
	if cfg.UI.Theme != "light" {
		t.Fatalf("theme = %q, want light (normalized)", cfg.UI.Theme)
	}
	if cfg.UI.PickerHeight != 12 {
		t.Fatalf("picker height = %d, want clamped default 12", cfg.UI.PickerHeight)
	}
	if len(cfg.Workspace.Folders) != 2 {
		t.Fatalf("folders = %v", cfg.Workspace.Folders)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("PREFDECK_CONFIG", path)

	in := Config{
		Documents: DocumentsConfig{Dir: "/tmp/docs"},
		History:   HistoryConfig{Path: "/tmp/history.db", Enabled: true},
		Workspace: WorkspaceConfig{Folders: []string{"/src/api"}},
		UI:        UIConfig{Theme: "light", PickerHeight: 20},
	}
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if out.Documents.Dir != in.Documents.Dir {
		t.Fatalf("documents dir = %q, want %q", out.Documents.Dir, in.Documents.Dir)
	}
	if out.UI.PickerHeight != 20 {
		t.Fatalf("picker height = %d, want 20", out.UI.PickerHeight)
	}
}

func TestLoadLanguageExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[[languages]]
id = "zig"
name = "Zig"
extensions = [".zig"]

[[languages]]
id = "just"
name = "Justfile"
filenames = ["justfile", ".justfile"]
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("PREFDECK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Languages) != 2 {
		t.Fatalf("languages = %+v, want 2 entries", cfg.Languages)
	}
	if cfg.Languages[0].ID != "zig" || len(cfg.Languages[0].Extensions) != 1 {
		t.Fatalf("first language = %+v", cfg.Languages[0])
	}
	if cfg.Languages[1].Name != "Justfile" || len(cfg.Languages[1].Filenames) != 2 {
		t.Fatalf("second language = %+v", cfg.Languages[1])
	}
}

func TestSavePreservesLanguageExtensions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	t.Setenv("PREFDECK_CONFIG", path)

	in := Config{
		Documents: DocumentsConfig{Dir: "/tmp/docs"},
		History:   HistoryConfig{Path: "/tmp/history.db", Enabled: true},
		UI:        UIConfig{Theme: "dark", PickerHeight: 12},
		Languages: []langs.Language{{ID: "zig", Name: "Zig", Extensions: []string{".zig"}}},
	}
	if err := Save(in); err != nil {
		t.Fatalf("save: %v", err)
	}

	out, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out.Languages) != 1 || out.Languages[0].ID != "zig" {
		t.Fatalf("languages after round trip = %+v", out.Languages)
	}
}
