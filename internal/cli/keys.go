package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rssowl/prefdeck/core"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Inspect keybindings",
}

var keysExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print the default keybindings as JSON",
	Long: `Print the default keybindings in the same shape as the raw
keybindings document, ready to edit and save back.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := core.NewKeyRegistry(core.DefaultKeyBindings())
		return outputJSON(reg.Export())
	},
}

var keysListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show keybindings grouped by scope",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := core.NewKeyRegistry(core.DefaultKeyBindings())
		bindings := reg.Export()
		if jsonOutput {
			return outputJSON(bindings)
		}
		sort.SliceStable(bindings, func(i, j int) bool {
			return bindings[i].Scope < bindings[j].Scope
		})
		scope := ""
		for _, b := range bindings {
			if b.Scope != scope {
				scope = b.Scope
				PrintHeader(scope)
			}
			printKeyValue(strings.Join(b.Keys, ", "), b.Action)
		}
		return nil
	},
}

func init() {
	keysCmd.AddCommand(keysExportCmd, keysListCmd)
}
