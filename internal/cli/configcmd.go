package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rssowl/prefdeck/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize the prefdeck configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		path, err := config.Path()
		if err != nil {
			return err
		}

		if jsonOutput {
			return outputJSON(map[string]any{"path": path, "config": cfg})
		}

		PrintHeader("Configuration")
		printKeyValue("file", path)
		printKeyValue("documents.dir", cfg.Documents.Dir)
		printKeyValue("history.path", cfg.History.Path)
		printKeyValue("history.enabled", fmt.Sprintf("%t", cfg.History.Enabled))
		printKeyValue("workspace.folders", strings.Join(cfg.Workspace.Folders, ", "))
		printKeyValue("ui.theme", cfg.UI.Theme)
		printKeyValue("ui.picker_height", fmt.Sprintf("%d", cfg.UI.PickerHeight))
		for _, l := range cfg.Languages {
			printKeyValue("language:"+l.ID, l.Name)
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to the config file",
	Long: `Write the current effective configuration (defaults merged with any
existing file and environment overrides) back to the config file, creating
it if needed. Useful as a starting point for editing.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		path, err := config.Path()
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(map[string]string{"path": path})
		}
		PrintSuccess("wrote " + path)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configInitCmd)
}
