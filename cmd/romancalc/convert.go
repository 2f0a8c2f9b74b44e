package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/romancalc/internal/numeral"
	"github.com/wizzomafizzo/romancalc/internal/words"
)

// createConvertCommand creates the convert command.
func createConvertCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <numeral>...",
		Short: "Convert Roman numerals to decimal and words",
		Long:  "Convert Roman numerals to decimal and words",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, roman := range args {
				value, err := numeral.Parse(roman)
				if err != nil {
					return fmt.Errorf("cannot convert %q: %w", roman, err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s = %d (%s)\n", roman, value, words.Render(value))
				if err != nil {
					return fmt.Errorf("failed to print conversion: %w", err)
				}
			}
			return nil
		},
	}
}
