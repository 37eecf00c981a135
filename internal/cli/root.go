package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/rssowl/prefdeck/internal/config"
	"github.com/rssowl/prefdeck/internal/tui"
)

var jsonOutput bool

var rootCmd = &cobra.Command{
	Use:     "prefdeck [folder...]",
	Version: "dev",
	Short:   "Workspace preferences and keybindings deck",
	Long: `prefdeck opens settings, keybindings, workspace, folder, and
language-scoped preference documents from one place.

Run it with no arguments to launch the interactive deck, or pass folder
paths to open them as the workspace for this session.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		return tui.Run(cfg, args)
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func Execute() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "emit machine-readable output")
	if err := rootCmd.Execute(); err != nil {
		PrintError(err.Error())
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(openCmd, langsCmd, keysCmd, pathsCmd, historyCmd, configCmd)
}
