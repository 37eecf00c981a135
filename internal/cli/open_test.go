package cli

import (
	"context"
	"testing"

	"github.com/rssowl/prefdeck/internal/actions"
)

func TestTargetToActionID(t *testing.T) {
	cases := map[string]string{
		"settings":  actions.IDOpenGlobalSettings,
		"keys":      actions.IDOpenGlobalKeybindings,
		"keys-raw":  actions.IDOpenRawKeybindings,
		"workspace": actions.IDOpenWorkspaceSettings,
		"folder":    actions.IDOpenFolderSettings,
		"language":  actions.IDConfigureLanguage,
	}
	for target, want := range cases {
		got, ok := targetToActionID(target)
		if !ok || got != want {
			t.Fatalf("targetToActionID(%q) = %q ok=%v, want %q", target, got, ok, want)
		}
	}
	if _, ok := targetToActionID("nope"); ok {
		t.Fatal("unknown target should not resolve")
	}
}

func TestLabelPickerMatchesCaseInsensitively(t *testing.T) {
	entries := []actions.PickEntry{
		{Label: "Go", Description: "go"},
		{Label: "TypeScript", Description: "typescript"},
	}
	p := labelPicker{language: "typescript"}
	idx, ok, err := p.Pick(context.Background(), "Select Language", entries)
	if err != nil || !ok || idx != 1 {
		t.Fatalf("Pick = %d %v %v", idx, ok, err)
	}
}

func TestLabelPickerRoutesFolderTitleToFolderFlag(t *testing.T) {
	entries := []actions.PickEntry{
		{Label: "api", Description: "/tmp/api"},
		{Label: "web", Description: "/tmp/web"},
	}
	p := labelPicker{language: "Go", folder: "web"}
	idx, ok, err := p.Pick(context.Background(), "Select Workspace Folder", entries)
	if err != nil || !ok || idx != 1 {
		t.Fatalf("Pick = %d %v %v", idx, ok, err)
	}
}

func TestLabelPickerEmptyValueReadsAsDismissal(t *testing.T) {
	p := labelPicker{}
	_, ok, err := p.Pick(context.Background(), "Select Language", []actions.PickEntry{{Label: "Go"}})
	if err != nil || ok {
		t.Fatalf("empty pick should dismiss, ok=%v err=%v", ok, err)
	}
}

func TestLabelPickerUnknownValueErrors(t *testing.T) {
	p := labelPicker{language: "COBOL"}
	_, _, err := p.Pick(context.Background(), "Select Language", []actions.PickEntry{{Label: "Go"}})
	if err == nil {
		t.Fatal("expected error for unknown language")
	}
}
