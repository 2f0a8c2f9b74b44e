package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/romancalc/internal/config"
)

// createInitCommand creates the init command.
func createInitCommand(deps dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default config file",
		Long: `Write the default configuration to the --config path (romancalc.yml unless set).
An existing file is left untouched unless --force is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			configPath, err := cmd.Flags().GetString("config")
			if err != nil {
				return fmt.Errorf("failed to get config flag: %w", err)
			}
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			if _, statErr := deps.fs.Stat(configPath); statErr == nil && !force {
				return fmt.Errorf("config file %s already exists (use --force to overwrite)", configPath)
			} else if statErr != nil && !os.IsNotExist(statErr) {
				return fmt.Errorf("failed to check config file %s: %w", configPath, statErr)
			}

			data, err := config.DefaultConfigYAML()
			if err != nil {
				return fmt.Errorf("failed to generate default config: %w", err)
			}
			if err := afero.WriteFile(deps.fs, configPath, data, 0o600); err != nil {
				return fmt.Errorf("failed to write config file to %s: %w", configPath, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote default config to %s\n", configPath)
			return nil
		},
	}

	cmd.Flags().BoolP("force", "f", false, "Overwrite an existing config file")
	return cmd
}
