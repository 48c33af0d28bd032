// Package storage provides SQLite-based persistence for solver runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for run history.
type Store struct {
	db *sql.DB
}

// Run represents a single recorded solve.
type Run struct {
	ID         string // UUID, assigned by SaveRun when empty
	LevelID    string
	Strategy   string
	Found      bool
	Placed     int // tiles placed by the best solution, 0 when not found
	Iterations int
	Generated  int
	Stop       string // why the search ended
	Elapsed    time.Duration
	Solution   [][]int // grid codes of the best solution, nil when not found
	CreatedAt  time.Time
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
			id TEXT PRIMARY KEY,
			level_id TEXT NOT NULL,
			strategy TEXT NOT NULL,
			found INTEGER NOT NULL DEFAULT 0,
			placed INTEGER NOT NULL DEFAULT 0,
			iterations INTEGER NOT NULL DEFAULT 0,
			generated INTEGER NOT NULL DEFAULT 0,
			stop_reason TEXT NOT NULL,
			elapsed_ms INTEGER NOT NULL DEFAULT 0,
			solution TEXT,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_level_id ON runs(level_id);
		CREATE INDEX IF NOT EXISTS idx_runs_best ON runs(level_id, found, placed);
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

// SaveRun records a solve and returns its ID.
func (s *Store) SaveRun(r Run) (string, error) {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	var solution sql.NullString
	if r.Solution != nil {
		data, err := json.Marshal(r.Solution)
		if err != nil {
			return "", fmt.Errorf("storage: cannot encode solution: %w", err)
		}
		solution = sql.NullString{String: string(data), Valid: true}
	}

	_, err := s.db.Exec(
		`INSERT INTO runs
		 (id, level_id, strategy, found, placed, iterations, generated, stop_reason, elapsed_ms, solution)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID,
		r.LevelID,
		r.Strategy,
		r.Found,
		r.Placed,
		r.Iterations,
		r.Generated,
		r.Stop,
		r.Elapsed.Milliseconds(),
		solution,
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save run: %w", err)
	}

	return r.ID, nil
}

const runColumns = `id, level_id, strategy, found, placed, iterations, generated,
		        stop_reason, elapsed_ms, solution, created_at`

// RecentRuns retrieves the most recent runs, newest first. An empty
// levelID returns runs of every level.
func (s *Store) RecentRuns(levelID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE ? = '' OR level_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		levelID, levelID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		r, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return runs, nil
}

// BestRun returns the successful run with the fewest placed tiles for a
// level, the earliest one on ties. Returns nil if no run found a solution.
func (s *Store) BestRun(levelID string) (*Run, error) {
	row := s.db.QueryRow(
		`SELECT `+runColumns+`
		 FROM runs
		 WHERE level_id = ? AND found = 1
		 ORDER BY placed ASC, created_at ASC, rowid ASC
		 LIMIT 1`,
		levelID,
	)

	r, err := scanRun(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ClearRuns deletes all runs for the given level.
func (s *Store) ClearRuns(levelID string) error {
	_, err := s.db.Exec("DELETE FROM runs WHERE level_id = ?", levelID)
	if err != nil {
		return fmt.Errorf("storage: cannot clear runs: %w", err)
	}
	return nil
}

// LevelStats contains aggregated statistics for a level.
type LevelStats struct {
	LevelID    string
	RunsCount  int
	Solved     int
	BestPlaced int // 0 when never solved
	AvgElapsed time.Duration
	LastRun    time.Time
}

// GetLevelStats retrieves aggregated statistics for a specific level.
func (s *Store) GetLevelStats(levelID string) (*LevelStats, error) {
	stats := &LevelStats{LevelID: levelID}

	var avgMs float64
	var lastRun any
	err := s.db.QueryRow(
		`SELECT COUNT(*), COALESCE(SUM(found), 0),
		        COALESCE(MIN(CASE WHEN found = 1 THEN placed END), 0),
		        COALESCE(AVG(elapsed_ms), 0), MAX(created_at)
		 FROM runs WHERE level_id = ?`,
		levelID,
	).Scan(&stats.RunsCount, &stats.Solved, &stats.BestPlaced, &avgMs, &lastRun)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}

	stats.AvgElapsed = time.Duration(avgMs * float64(time.Millisecond))
	stats.LastRun = parseTime(lastRun)
	return stats, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRun(row rowScanner) (Run, error) {
	var r Run
	var elapsedMs int64
	var solution sql.NullString
	var createdAt any

	err := row.Scan(
		&r.ID,
		&r.LevelID,
		&r.Strategy,
		&r.Found,
		&r.Placed,
		&r.Iterations,
		&r.Generated,
		&r.Stop,
		&elapsedMs,
		&solution,
		&createdAt,
	)
	if err == sql.ErrNoRows {
		return r, err
	}
	if err != nil {
		return r, fmt.Errorf("storage: cannot scan row: %w", err)
	}

	r.Elapsed = time.Duration(elapsedMs) * time.Millisecond
	r.CreatedAt = parseTime(createdAt)
	if solution.Valid {
		if err := json.Unmarshal([]byte(solution.String), &r.Solution); err != nil {
			return r, fmt.Errorf("storage: cannot decode solution of run %s: %w", r.ID, err)
		}
	}
	return r, nil
}

// parseTime handles both time.Time and string datetime values.
func parseTime(v any) time.Time {
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
