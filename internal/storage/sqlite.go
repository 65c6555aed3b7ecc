// Package storage provides SQLite-based recording of simulation runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run recording.
type Store struct {
	db *sql.DB
}

// RunRecord summarizes a finished run.
type RunRecord struct {
	ID            int64
	Seed          int64
	GridSize      int
	Score         int
	Length        int
	DurationTicks uint64
	Outcome       string // "collided" or "board_full"
	CreatedAt     time.Time
}

// RunEvent is a single notable tick within a run: a growth, a collision,
// or the board filling up. Enough to replay the interesting moments of a
// run without storing every tick.
type RunEvent struct {
	ID    int64
	RunID int64
	Tick  uint64
	Kind  string
	X     int
	Y     int
	Score int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			seed INTEGER NOT NULL,
			grid_size INTEGER NOT NULL,
			score INTEGER NOT NULL,
			length INTEGER NOT NULL,
			duration_ticks INTEGER NOT NULL,
			outcome TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);

		CREATE TABLE IF NOT EXISTS run_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			tick INTEGER NOT NULL,
			kind TEXT NOT NULL,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			score INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_run_events_run ON run_events(run_id, tick);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveRun records a finished run and returns the ID of the inserted record.
func (s *Store) SaveRun(r RunRecord) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs (seed, grid_size, score, length, duration_ticks, outcome)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		r.Seed, r.GridSize, r.Score, r.Length, r.DurationTicks, r.Outcome,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save run: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// SaveEvents records the event trail of a run in a single transaction.
func (s *Store) SaveEvents(runID int64, events []RunEvent) error {
	if len(events) == 0 {
		return nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage: cannot begin transaction: %w", err)
	}

	stmt, err := tx.Prepare(
		"INSERT INTO run_events (run_id, tick, kind, x, y, score) VALUES (?, ?, ?, ?, ?, ?)",
	)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("storage: cannot prepare event insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range events {
		if _, err := stmt.Exec(runID, e.Tick, e.Kind, e.X, e.Y, e.Score); err != nil {
			tx.Rollback()
			return fmt.Errorf("storage: cannot save event: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage: cannot commit events: %w", err)
	}
	return nil
}

// RecentRuns retrieves the most recent runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, seed, grid_size, score, length, duration_ticks, outcome, created_at
		 FROM runs
		 ORDER BY created_at DESC, id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var records []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Seed, &r.GridSize, &r.Score, &r.Length, &r.DurationTicks, &r.Outcome, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseCreatedAt(createdAt)
		records = append(records, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return records, nil
}

// RunEvents retrieves the event trail of a run in tick order.
func (s *Store) RunEvents(runID int64) ([]RunEvent, error) {
	rows, err := s.db.Query(
		`SELECT id, run_id, tick, kind, x, y, score
		 FROM run_events
		 WHERE run_id = ?
		 ORDER BY tick`,
		runID,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run events: %w", err)
	}
	defer rows.Close()

	var events []RunEvent
	for rows.Next() {
		var e RunEvent
		if err := rows.Scan(&e.ID, &e.RunID, &e.Tick, &e.Kind, &e.X, &e.Y, &e.Score); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		events = append(events, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return events, nil
}

// RunByID retrieves a single run record, or nil if it does not exist.
func (s *Store) RunByID(id int64) (*RunRecord, error) {
	var r RunRecord
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, seed, grid_size, score, length, duration_ticks, outcome, created_at
		 FROM runs
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &r.Seed, &r.GridSize, &r.Score, &r.Length, &r.DurationTicks, &r.Outcome, &createdAt)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query run: %w", err)
	}

	r.CreatedAt = parseCreatedAt(createdAt)
	return &r, nil
}

// ClearRuns deletes all recorded runs and their events.
func (s *Store) ClearRuns() error {
	if _, err := s.db.Exec("DELETE FROM run_events"); err != nil {
		return fmt.Errorf("storage: cannot clear run events: %w", err)
	}
	if _, err := s.db.Exec("DELETE FROM runs"); err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// parseCreatedAt handles the driver returning either time.Time or a string.
func parseCreatedAt(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
