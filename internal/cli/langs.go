package cli

import (
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rssowl/prefdeck/internal/config"
	"github.com/rssowl/prefdeck/internal/langs"
)

var langsCmd = &cobra.Command{
	Use:   "langs",
	Short: "List configurable languages",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		registry := langs.BuiltinWith(cfg.Languages...)
		names := registry.Names()
		sort.Strings(names)

		if jsonOutput {
			type row struct {
				ID         string   `json:"id"`
				Name       string   `json:"name"`
				Extensions []string `json:"extensions,omitempty"`
				Filenames  []string `json:"filenames,omitempty"`
			}
			rows := make([]row, 0, len(names))
			for _, name := range names {
				lang, ok := registry.Lookup(name)
				if !ok {
					continue
				}
				rows = append(rows, row{ID: lang.ID, Name: lang.Name, Extensions: lang.Extensions, Filenames: lang.Filenames})
			}
			return outputJSON(rows)
		}

		PrintHeader("Configurable languages")
		for _, name := range names {
			lang, ok := registry.Lookup(name)
			if !ok {
				continue
			}
			hints := append(append([]string(nil), lang.Extensions...), lang.Filenames...)
			printKeyValue(name, strings.Join(hints, " "))
		}
		return nil
	},
}
