package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbench/internal/benchmark"
	"xbench/internal/db"
	"xbench/internal/ui"
)

// NewCompareCmd builds the compare command.
func NewCompareCmd() *cobra.Command {
	var (
		threshold     float64
		againstID     string
		failOnRegress bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the latest saved run against an earlier one",
		Long: `Compares the most recent saved run against the one before it (or against
a specific run with --against) and reports the percentage change in elapsed
time per parser backend.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The flag wins when passed; otherwise the configured value
			// applies, including an explicit zero.
			if !cmd.Flags().Changed("threshold") {
				threshold = viper.GetFloat64("threshold")
			}

			store, err := db.NewStore(viper.GetString("history.backend"), viper.GetString("history.path"))
			if err != nil {
				return err
			}
			defer store.Close()

			runs, err := store.LoadAll()
			if err != nil {
				return fmt.Errorf("failed to load history: %w", err)
			}
			if len(runs) < 2 {
				return fmt.Errorf("need at least two saved runs to compare, have %d", len(runs))
			}

			curr := &runs[len(runs)-1]
			prev := &runs[len(runs)-2]
			if againstID != "" {
				prev = nil
				for i := range runs {
					if runs[i].ID == againstID && runs[i].ID != curr.ID {
						prev = &runs[i]
						break
					}
				}
				if prev == nil {
					return fmt.Errorf("run %q not found in history", againstID)
				}
			}

			ui.RenderComparison(cmd.OutOrStdout(), prev, curr, threshold)

			if failOnRegress {
				for _, c := range benchmark.Compare(prev, curr) {
					if c.Regression(threshold) {
						return fmt.Errorf("performance regression: %s", c)
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 10.0, "Percentage threshold for regression classification")
	cmd.Flags().StringVar(&againstID, "against", "", "Run ID to compare the latest run against")
	cmd.Flags().BoolVar(&failOnRegress, "fail-on-regress", false, "Exit non-zero if any backend regressed past the threshold")

	return cmd
}
