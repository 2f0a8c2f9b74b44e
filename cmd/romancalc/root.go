package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/romancalc/internal/constants"
	"github.com/wizzomafizzo/romancalc/internal/processor"
)

// createNewRootCommand creates the root command with production dependencies.
func createNewRootCommand() *cobra.Command {
	return createRootCommand(defaultDependencies())
}

// createRootCommand creates the root command; running it processes the input file.
func createRootCommand(deps dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "romancalc",
		Short: "Roman numeral calculator",
		Long: `Evaluate Roman numeral expressions such as "XIV * III" and write the results in English words.

Each line of the input file is evaluated and one result per line is written to the
output file. If the input file does not exist, expressions are read interactively
until "done" is entered, saved to the input file, and then processed.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runProcess(cmd, deps)
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", constants.DefaultConfigFile, "Path to config file")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Bool("no-history", false, "Do not record results in the history database")

	rootCmd.Flags().StringP("input", "i", constants.DefaultInputFile, "File with one expression per line")
	rootCmd.Flags().StringP("output", "o", constants.DefaultOutputFile, "File that receives one result per line")
	rootCmd.Flags().IntP("workers", "j", constants.DefaultWorkers, "Number of lines evaluated concurrently")
	rootCmd.Flags().BoolP("quiet", "q", false, "Do not print the decimal equation or rejection reason of each line")

	rootCmd.AddCommand(
		createEvalCommand(deps),
		createConvertCommand(),
		createHistoryCommand(deps),
		createInitCommand(deps),
	)

	return rootCmd
}

// runProcess evaluates the configured input file, prompting for it when missing.
func runProcess(cmd *cobra.Command, deps dependencies) (err error) {
	s, err := deps.openSession(cmd, true)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := s.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close history: %w", closeErr)
		}
	}()

	opts := []processor.Option{
		processor.WithInput(s.config.Input),
		processor.WithOutput(s.config.Output),
		processor.WithWorkers(s.config.Workers),
		processor.WithPrompter(deps.newPrompter),
		processor.WithConsole(cmd.OutOrStdout()),
		processor.WithRunID(s.runID),
		processor.WithDiagnostics(!s.config.Quiet),
	}
	if s.history != nil {
		opts = append(opts, processor.WithRecorder(s.history))
	}

	report, err := processor.New(deps.fs, opts...).Run(s.ctx)
	if err != nil {
		return fmt.Errorf("processing failed: %w", err)
	}

	if failed := report.Failed(); failed > 0 {
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d of %d lines could not be evaluated\n", failed, len(report.Results))
	}
	return nil
}
