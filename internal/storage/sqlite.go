// Package storage provides SQLite-based persistence for demo play sessions.
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

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run is one recorded play session of a demo.
type Run struct {
	ID             int64
	DemoID         string
	Ticks          int64   // Scheduler ticks
	TweensStarted  int64   // Tween starts, nested ones included
	TweensComplete int64   // Tweens that finished
	PeakActive     int     // Highest number of simultaneously active handles
	TimeScale      float64 // Time scale when the run ended
	WallSeconds    float64 // Real time spent in the demo
	CreatedAt      time.Time
}

// Summary aggregates all runs of one demo.
type Summary struct {
	DemoID      string
	Runs        int
	Ticks       int64
	Completed   int64
	WallSeconds float64
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

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

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
			demo_id TEXT NOT NULL,
			ticks INTEGER NOT NULL DEFAULT 0,
			tweens_started INTEGER NOT NULL DEFAULT 0,
			tweens_completed INTEGER NOT NULL DEFAULT 0,
			peak_active INTEGER NOT NULL DEFAULT 0,
			time_scale REAL NOT NULL DEFAULT 1,
			wall_secs REAL NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_demo_id ON runs(demo_id);
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

// SaveRun records a finished play session.
// Returns the ID of the inserted record.
func (s *Store) SaveRun(r Run) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO runs
		 (demo_id, ticks, tweens_started, tweens_completed, peak_active, time_scale, wall_secs)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		r.DemoID, r.Ticks, r.TweensStarted, r.TweensComplete, r.PeakActive, r.TimeScale, r.WallSeconds,
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

// RecentRuns retrieves the latest runs, newest first. An empty demoID
// selects every demo.
func (s *Store) RecentRuns(demoID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT id, demo_id, ticks, tweens_started, tweens_completed,
		        peak_active, time_scale, wall_secs, created_at
		 FROM runs
		 WHERE ? = '' OR demo_id = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		demoID, demoID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		var r Run
		var createdAt any
		if err := rows.Scan(
			&r.ID,
			&r.DemoID,
			&r.Ticks,
			&r.TweensStarted,
			&r.TweensComplete,
			&r.PeakActive,
			&r.TimeScale,
			&r.WallSeconds,
			&createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTime(createdAt)
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// Summaries aggregates runs per demo, sorted by demo ID.
func (s *Store) Summaries() ([]Summary, error) {
	rows, err := s.db.Query(
		`SELECT demo_id, COUNT(*), SUM(ticks), SUM(tweens_completed), SUM(wall_secs)
		 FROM runs
		 GROUP BY demo_id
		 ORDER BY demo_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query summaries: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var sum Summary
		if err := rows.Scan(&sum.DemoID, &sum.Runs, &sum.Ticks, &sum.Completed, &sum.WallSeconds); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		out = append(out, sum)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return out, nil
}

// ClearRuns deletes the runs of one demo, or every run when demoID is
// empty. It returns the number of deleted rows.
func (s *Store) ClearRuns(demoID string) (int64, error) {
	result, err := s.db.Exec("DELETE FROM runs WHERE ? = '' OR demo_id = ?", demoID, demoID)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return result.RowsAffected()
}

// parseTime handles both time.Time and string datetimes from the driver.
func parseTime(v any) time.Time {
	switch v := v.(type) {
	case time.Time:
		return v
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
