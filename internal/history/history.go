// Package history optionally records probe runs in a local SQLite database.
// Recording is off unless the caller passes a database path; the probe
// itself stays stateless.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// SQLite datetime format (from datetime('now'))
const sqliteTimeFormat = "2006-01-02 15:04:05"

// keepRuns caps the table size; older rows are pruned on insert.
const keepRuns = 1000

// Run is one recorded probe execution.
type Run struct {
	ID         string
	RecordedAt time.Time
	Host       string
	Category   string
	OK         bool
	Message    string
	Channels   JSONMap
}

// Store wraps the SQLite database holding recorded runs.
type Store struct {
	db *sql.DB
}

// Open opens (and if needed creates) the run database at the given path.
func Open(ctx context.Context, dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)", dbPath)
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite works best with a single connection for writes
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			recorded_at TEXT NOT NULL DEFAULT (datetime('now')),
			host TEXT NOT NULL,
			category TEXT NOT NULL,
			ok INTEGER NOT NULL,
			message TEXT NOT NULL,
			channels TEXT
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() {
	s.db.Close()
}

// Record appends a run and prunes rows beyond the retention cap. The
// generated run id is returned.
func (s *Store) Record(ctx context.Context, run *Run) (string, error) {
	id := uuid.NewString()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, host, category, ok, message, channels)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, run.Host, run.Category, run.OK, run.Message, run.Channels)
	if err != nil {
		return "", fmt.Errorf("insert run: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		DELETE FROM runs WHERE id NOT IN (
			SELECT id FROM runs ORDER BY recorded_at DESC, id LIMIT ?
		)
	`, keepRuns)
	if err != nil {
		return "", fmt.Errorf("prune runs: %w", err)
	}

	return id, nil
}

// List returns the most recent runs, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, recorded_at, host, category, ok, message, channels
		FROM runs ORDER BY recorded_at DESC, id LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var run Run
		var recordedAt string
		if err := rows.Scan(&run.ID, &recordedAt, &run.Host, &run.Category, &run.OK, &run.Message, &run.Channels); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		run.RecordedAt, err = time.ParseInLocation(sqliteTimeFormat, recordedAt, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parse recorded_at: %w", err)
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}
