package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/romancalc/internal/constants"
)

// createHistoryCommand creates the history command.
func createHistoryCommand(deps dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent evaluations",
		Long:  "Show recent evaluations, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to get limit flag: %w", err)
			}

			s, err := deps.openSession(cmd, false)
			if err != nil {
				return err
			}
			store, err := deps.openHistory(s.ctx)
			if err != nil {
				return err
			}
			defer func() {
				if closeErr := store.Close(); closeErr != nil && err == nil {
					err = fmt.Errorf("failed to close history: %w", closeErr)
				}
			}()

			entries, err := store.Recent(s.ctx, limit)
			if err != nil {
				return fmt.Errorf("failed to read history: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(entries) == 0 {
				_, _ = fmt.Fprintln(out, "No history yet")
				return nil
			}
			for _, e := range entries {
				result := e.Output
				if e.Failed {
					result = color.RedString(result)
				}
				_, _ = fmt.Fprintf(out, "%s  %s -> %s\n", e.CreatedAt.Local().Format(time.DateTime), e.Input, result)
			}
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", constants.DefaultHistoryLimit, "Number of entries to show")
	return cmd
}
