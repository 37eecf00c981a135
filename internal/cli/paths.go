package cli

import (
	"github.com/spf13/cobra"

	"github.com/rssowl/prefdeck/internal/config"
	"github.com/rssowl/prefdeck/internal/prefs"
	"github.com/rssowl/prefdeck/internal/workspace"
)

var pathsCmd = &cobra.Command{
	Use:   "paths",
	Short: "Show where preference documents live",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		session := workspace.NewSession(workspace.FoldersFromPaths(cfg.Workspace.Folders)...)
		svc, err := newFileService(cfg, session)
		if err != nil {
			return err
		}

		out := map[string]string{
			"settings":    svc.SettingsPath(),
			"keybindings": svc.KeybindingsPath(),
			"history":     cfg.History.Path,
		}
		if wsPath, err := svc.WorkspaceSettingsPath(); err == nil {
			out["workspace"] = wsPath
		}
		for _, f := range session.Folders() {
			out["folder:"+f.Name] = prefs.FolderSettingsPath(f)
		}

		if jsonOutput {
			return outputJSON(out)
		}
		PrintHeader("Preference documents")
		printKeyValue("settings", out["settings"])
		printKeyValue("keybindings", out["keybindings"])
		if ws, ok := out["workspace"]; ok {
			printKeyValue("workspace", ws)
		}
		for _, f := range session.Folders() {
			printKeyValue("folder:"+f.Name, out["folder:"+f.Name])
		}
		if cfg.History.Enabled {
			printKeyValue("history", out["history"])
		}
		return nil
	},
}
