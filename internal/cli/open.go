package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rssowl/prefdeck/core"
	"github.com/rssowl/prefdeck/internal/actions"
	"github.com/rssowl/prefdeck/internal/config"
	"github.com/rssowl/prefdeck/internal/langs"
	"github.com/rssowl/prefdeck/internal/prefs"
	"github.com/rssowl/prefdeck/internal/workspace"
)

var (
	openFolderName string
	openLanguage   string
)

var openCmd = &cobra.Command{
	Use:   "open <settings|keys|keys-raw|workspace|folder|language>",
	Short: "Open a preference document without the TUI",
	Long: `Open a preference surface and print the resulting document.

The folder target needs --folder with a workspace folder name, and the
language target needs --language with a language name or ID.`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"settings", "keys", "keys-raw", "workspace", "folder", "language"},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		session := workspace.NewSession(workspace.FoldersFromPaths(cfg.Workspace.Folders)...)
		registry := langs.BuiltinWith(cfg.Languages...)
		svc, err := newFileService(cfg, session)
		if err != nil {
			return err
		}

		deck := actions.NewSet(svc, session, registry, labelPicker{language: openLanguage, folder: openFolderName})
		defer deck.Close()

		id, ok := targetToActionID(args[0])
		if !ok {
			return fmt.Errorf("unknown target %q", args[0])
		}
		action, ok := deck.Get(id)
		if !ok {
			return fmt.Errorf("no action registered for %q", args[0])
		}
		if !action.Enabled() {
			return fmt.Errorf("%s: %s", action.Label(), core.DisabledReason(id))
		}

		if id == actions.IDOpenFolderSettings && openFolderName == "" {
			return fmt.Errorf("folder target needs --folder")
		}
		if id == actions.IDConfigureLanguage && openLanguage == "" {
			return fmt.Errorf("language target needs --language")
		}
		return action.Run(context.Background())
	},
}

func targetToActionID(target string) (string, bool) {
	switch target {
	case "settings":
		return actions.IDOpenGlobalSettings, true
	case "keys":
		return actions.IDOpenGlobalKeybindings, true
	case "keys-raw":
		return actions.IDOpenRawKeybindings, true
	case "workspace":
		return actions.IDOpenWorkspaceSettings, true
	case "folder":
		return actions.IDOpenFolderSettings, true
	case "language":
		return actions.IDConfigureLanguage, true
	}
	return "", false
}

// labelPicker resolves picks from flag values instead of a UI. An empty
// value reads as a dismissal, a non-matching one as an error.
type labelPicker struct {
	language string
	folder   string
}

func (p labelPicker) Pick(ctx context.Context, title string, entries []actions.PickEntry) (int, bool, error) {
	want := p.language
	if strings.Contains(title, "Folder") {
		want = p.folder
	}
	if want == "" {
		return 0, false, nil
	}
	return matchEntry(entries, want)
}

func matchEntry(entries []actions.PickEntry, label string) (int, bool, error) {
	for i, e := range entries {
		if strings.EqualFold(e.Label, label) || strings.EqualFold(e.Description, label) {
			return i, true, nil
		}
	}
	return 0, false, fmt.Errorf("no entry matches %q", label)
}

// printOpener writes opened documents to stdout.
type printOpener struct{}

func (printOpener) OpenDocument(ctx context.Context, doc prefs.Document) error {
	PrintHeader(doc.Title)
	if doc.Path != "" {
		PrintDim(doc.Path)
	}
	fmt.Println()
	fmt.Println(doc.Body)
	return nil
}

func newFileService(cfg config.Config, session *workspace.Session) (*prefs.FileService, error) {
	dir := cfg.Documents.Dir
	if dir == "" {
		var err error
		dir, err = prefs.DefaultDir()
		if err != nil {
			return nil, err
		}
	}
	keyReg := core.NewKeyRegistry(core.DefaultKeyBindings())
	return &prefs.FileService{
		Dir:       dir,
		Opener:    printOpener{},
		Workspace: session,
		Bindings:  keyReg.Export,
	}, nil
}

func init() {
	openCmd.Flags().StringVar(&openFolderName, "folder", "", "workspace folder name for the folder target")
	openCmd.Flags().StringVar(&openLanguage, "language", "", "language name or ID for the language target")
}
