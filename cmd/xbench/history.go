package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbench/internal/db"
	"xbench/internal/ui"
)

// NewHistoryCmd builds the history command.
func NewHistoryCmd() *cobra.Command {
	var (
		jsonOut bool
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List saved benchmark runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := db.NewStore(viper.GetString("history.backend"), viper.GetString("history.path"))
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.LoadAll()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			if limit > 0 && len(runs) > limit {
				runs = runs[len(runs)-limit:]
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(runs)
			}

			if len(runs) == 0 {
				cmd.Println("No runs recorded.")
				return nil
			}
			ui.RenderHistory(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Print runs as JSON")
	cmd.Flags().IntVar(&limit, "limit", 0, "Show only the most recent N runs (0 = all)")

	return cmd
}
