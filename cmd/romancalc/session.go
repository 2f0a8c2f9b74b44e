package main

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/romancalc/internal/config"
	"github.com/wizzomafizzo/romancalc/internal/logging"
	"github.com/wizzomafizzo/romancalc/internal/prompt"
	"github.com/wizzomafizzo/romancalc/internal/storage"
)

// dependencies are the outside-world collaborators of every command
type dependencies struct {
	fs          afero.Fs
	newPrompter func() prompt.Prompter
	historyDSN  func(fs afero.Fs) (string, error)
	// logWriter replaces the rotating log file when set
	logWriter io.Writer
}

func defaultDependencies() dependencies {
	return dependencies{
		fs:          afero.NewOsFs(),
		newPrompter: prompt.NewLinerPrompter,
		historyDSN: func(fs afero.Fs) (string, error) {
			return storage.New(fs).GetHistoryPath() //nolint:wrapcheck // storage errors carry the path
		},
	}
}

// session is the per-command state: resolved config, logger context and history store
type session struct {
	ctx     context.Context
	config  *config.Config
	history *storage.HistoryStore
	runID   string
}

// openSession loads config, applies flag overrides, initializes logging and,
// when wanted, opens the history store.
func (d dependencies) openSession(cmd *cobra.Command, wantHistory bool) (*session, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("failed to get config flag: %w", err)
	}

	cfg, err := config.Load(d.fs, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", configPath, err)
	}
	if err := applyFlagOverrides(cmd, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, err //nolint:wrapcheck // already names the bad level
	}

	runID := uuid.NewString()
	ctx, err := logging.New(cmd.Context(), d.fs, logging.Config{
		Writer: d.logWriter,
		RunID:  runID,
		Level:  level,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	s := &session{ctx: ctx, config: cfg, runID: runID}
	if wantHistory && cfg.History {
		s.history, err = d.openHistory(ctx)
		if err != nil {
			return nil, err
		}
	}

	logging.Get(ctx).Debug().
		Str("command", cmd.Name()).
		Str("config", configPath).
		Bool("history", s.history != nil).
		Msg("Session started")

	return s, nil
}

func (d dependencies) openHistory(ctx context.Context) (*storage.HistoryStore, error) {
	dsn, err := d.historyDSN(d.fs)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve history path: %w", err)
	}
	store, err := storage.OpenHistory(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history %s: %w", dsn, err)
	}
	return store, nil
}

// Close releases the history store
func (s *session) Close() error {
	if s.history == nil {
		return nil
	}
	return s.history.Close() //nolint:wrapcheck // storage wraps its own errors
}

// applyFlagOverrides copies explicitly set flags over config file values
func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	var err error

	if flags.Changed("input") {
		if cfg.Input, err = flags.GetString("input"); err != nil {
			return fmt.Errorf("failed to get input flag: %w", err)
		}
	}
	if flags.Changed("output") {
		if cfg.Output, err = flags.GetString("output"); err != nil {
			return fmt.Errorf("failed to get output flag: %w", err)
		}
	}
	if flags.Changed("workers") {
		if cfg.Workers, err = flags.GetInt("workers"); err != nil {
			return fmt.Errorf("failed to get workers flag: %w", err)
		}
	}
	if flags.Changed("no-history") {
		noHistory, err := flags.GetBool("no-history")
		if err != nil {
			return fmt.Errorf("failed to get no-history flag: %w", err)
		}
		cfg.History = !noHistory
	}
	if flags.Changed("quiet") {
		if cfg.Quiet, err = flags.GetBool("quiet"); err != nil {
			return fmt.Errorf("failed to get quiet flag: %w", err)
		}
	}
	if flags.Changed("log-level") {
		if cfg.LogLevel, err = flags.GetString("log-level"); err != nil {
			return fmt.Errorf("failed to get log-level flag: %w", err)
		}
	}

	return nil
}
