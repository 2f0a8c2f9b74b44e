package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Evaluation is one evaluated line to be recorded.
type Evaluation struct {
	Input  string
	Output string
	Failed bool
}

// Entry is a recorded evaluation read back from the history database.
type Entry struct {
	CreatedAt time.Time
	RunID     string
	Input     string
	Output    string
	ID        int64
	Failed    bool
}

// HistoryStore persists evaluations in SQLite
type HistoryStore struct {
	db  *sql.DB
	now func() time.Time
}

// OpenHistory opens (creating if needed) the history database at dsn and migrates it.
// Use ":memory:" for an ephemeral store.
func OpenHistory(ctx context.Context, dsn string) (*HistoryStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA temp_store = MEMORY",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to execute pragma %s: %w", pragma, err)
		}
	}

	// A single connection keeps ":memory:" databases coherent across calls.
	db.SetMaxOpenConns(1)

	store := &HistoryStore{db: db, now: time.Now}
	if err := runMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return store, nil
}

// Close closes the history database
func (s *HistoryStore) Close() error {
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}
	return nil
}

// Record stores all evaluations of one run in a single transaction
func (s *HistoryStore) Record(ctx context.Context, runID string, evaluations []Evaluation) error {
	if runID == "" {
		return errors.New("run id is required")
	}
	if len(evaluations) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO history (run_id, input, output, failed, created_at) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	createdAt := s.now().UTC().Unix()
	for _, e := range evaluations {
		if _, err := stmt.ExecContext(ctx, runID, e.Input, e.Output, e.Failed, createdAt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("failed to record evaluation %q: %w", e.Input, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit history: %w", err)
	}
	return nil
}

// Recent returns up to limit entries, newest first
func (s *HistoryStore) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be positive, got %d", limit)
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT id, run_id, input, output, failed, created_at FROM history ORDER BY id DESC LIMIT ?",
		limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []Entry
	for rows.Next() {
		var (
			e         Entry
			createdAt int64
		)
		if err := rows.Scan(&e.ID, &e.RunID, &e.Input, &e.Output, &e.Failed, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan history row: %w", err)
		}
		e.CreatedAt = time.Unix(createdAt, 0).UTC()
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history: %w", err)
	}

	return entries, nil
}
