package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rssowl/prefdeck/internal/config"
	"github.com/rssowl/prefdeck/internal/history"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently run preference actions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		if !cfg.History.Enabled {
			PrintInfo("History is disabled in the config")
			return nil
		}
		db, err := history.Open(cfg.History.Path)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := history.RunMigrations(db); err != nil {
			return err
		}
		store := history.NewStore(db)

		entries, err := store.Recent(context.Background(), historyLimit)
		if err != nil {
			return err
		}
		if jsonOutput {
			return outputJSON(entries)
		}
		if len(entries) == 0 {
			PrintInfo("No history yet")
			return nil
		}
		PrintHeader("Recent actions")
		for _, e := range entries {
			printKeyValue(e.RunAt.Local().Format("2006-01-02 15:04"), fmt.Sprintf("%s  %s", e.ActionID, e.Detail))
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum entries to show")
}
