package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"xbench/internal/benchmark"
	"xbench/internal/db"
	"xbench/internal/parser"
	"xbench/internal/telemetry"
	"xbench/internal/ui"
)

// NewRunCmd builds the run command, the measurement core of the tool.
func NewRunCmd() *cobra.Command {
	var (
		input      string
		parserName string
		runAll     bool
		save       bool
		strict     bool
		label      string
	)

	cmd := &cobra.Command{
		Use:          "run",
		SilenceUsage: true,
		Short:        "Time one parse of the input file and print the elapsed nanoseconds",
		Long: `Reads the input file fully into memory before any timing starts, then
times exactly one document-parse call of the selected backend and writes the
raw elapsed nanosecond count as a single line to stdout.

A file that cannot be read is an error. A parse failure is logged to stderr
but still produces a timing line and exit code 0, since a malformed document
is a valid timing sample; use --strict to fail on parse errors instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if input == "" {
				input = viper.GetString("input")
			}
			if parserName == "" {
				parserName = viper.GetString("parser")
			}
			if parserName == "" {
				parserName = parser.DefaultName
			}

			var parsers []parser.Parser
			if runAll {
				parsers = parser.All()
			} else {
				p, err := parser.Get(parserName)
				if err != nil {
					return err
				}
				parsers = []parser.Parser{p}
			}

			runner := benchmark.NewFileRunner(input)
			run, err := runner.Run(parsers...)
			if err != nil {
				return err
			}
			run.Label = label

			if metrics != nil {
				metrics.ObserveRun(run)
			}

			var failures []string
			for _, s := range run.Samples {
				if !s.OK {
					telemetry.LogWarnf("parse failed (%s): %s", s.Parser, s.Diagnostic)
					failures = append(failures, fmt.Sprintf("%s: %s", s.Parser, s.Diagnostic))
				}
			}

			if runAll {
				ui.RenderRun(cmd.OutOrStdout(), run)
			} else {
				// The single-backend contract: one line, the raw tick count.
				fmt.Fprintf(cmd.OutOrStdout(), "%d\n", run.Samples[0].ElapsedNs)
			}

			if save {
				store, err := db.NewStore(viper.GetString("history.backend"), viper.GetString("history.path"))
				if err != nil {
					return err
				}
				defer store.Close()
				if err := store.Save(*run); err != nil {
					return fmt.Errorf("failed to save run: %w", err)
				}
				telemetry.LogInfo("run saved", "id", run.ID, "samples", len(run.Samples))
			}

			if strict && len(failures) > 0 {
				return fmt.Errorf("parse failed: %s", strings.Join(failures, "; "))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "Input file to parse (default from config, then large.xhtml)")
	cmd.Flags().StringVarP(&parserName, "parser", "p", "", fmt.Sprintf("Parser backend (%s)", strings.Join(parser.Names(), ", ")))
	cmd.Flags().BoolVar(&runAll, "all", false, "Run every backend over the same buffer and print a table")
	cmd.Flags().BoolVar(&save, "save", false, "Save the run to history")
	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero if the parse fails")
	cmd.Flags().StringVar(&label, "label", "", "Label stored with the run")

	return cmd
}
