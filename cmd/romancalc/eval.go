package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/romancalc/internal/expression"
	"github.com/wizzomafizzo/romancalc/internal/logging"
	"github.com/wizzomafizzo/romancalc/internal/storage"
)

// createEvalCommand creates the eval command.
func createEvalCommand(deps dependencies) *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>...",
		Short: "Evaluate a single expression",
		Long: `Evaluate a single expression and print the result in words.
Arguments are joined with spaces, so both "eval X * V" and "eval 'X * V'" work.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			s, err := deps.openSession(cmd, true)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := s.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("failed to close history: %w", closeErr)
				}
			}()

			line := strings.TrimSpace(strings.Join(args, " "))
			result := expression.Evaluate(s.ctx, line)

			if s.history != nil {
				recordErr := s.history.Record(s.ctx, s.runID, []storage.Evaluation{{
					Input:  result.Line,
					Output: result.Text,
					Failed: result.Failed(),
				}})
				if recordErr != nil {
					logging.Get(s.ctx).Warn().Err(recordErr).Msg("Failed to record history")
				}
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), result.Text)
			if err != nil {
				return fmt.Errorf("failed to print result: %w", err)
			}
			return nil
		},
	}
}
