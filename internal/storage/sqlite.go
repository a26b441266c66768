// Package storage provides SQLite-based records of finished matches.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
// Only outcomes are stored; a board in progress is never persisted.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-connect4/internal/config"
	"github.com/vovakirdan/tui-connect4/internal/games/connect4"
)

// Store manages the SQLite database connection for match results.
// It is safe for concurrent use by multiple sessions.
type Store struct {
	db *sql.DB
}

// Outcome is the stored form of a terminal game status.
type Outcome string

const (
	OutcomeA   Outcome = "a"
	OutcomeB   Outcome = "b"
	OutcomeTie Outcome = "tie"
)

// OutcomeOf converts a terminal status. ok is false for a game in progress.
func OutcomeOf(s connect4.Status) (o Outcome, ok bool) {
	switch {
	case s.Phase == connect4.Tie:
		return OutcomeTie, true
	case s.Phase == connect4.Won && s.Winner == connect4.PlayerA:
		return OutcomeA, true
	case s.Phase == connect4.Won && s.Winner == connect4.PlayerB:
		return OutcomeB, true
	default:
		return "", false
	}
}

// Result is a single finished-match record.
type Result struct {
	ID           int64
	Outcome      Outcome
	PlayerA      string // Display name of the first player
	PlayerB      string
	Moves        int
	DurationSecs int
	Origin       string // "local" or the SSH user name
	CreatedAt    time.Time
}

// Winner returns the winner's display name, or empty for a tie.
func (r Result) Winner() string {
	switch r.Outcome {
	case OutcomeA:
		return r.PlayerA
	case OutcomeB:
		return r.PlayerB
	default:
		return ""
	}
}

// Tally aggregates all recorded results.
type Tally struct {
	Games int
	WinsA int
	WinsB int
	Ties  int
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	dbPath, err := config.ExpandHome(dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: %w", err)
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
		CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			outcome TEXT NOT NULL CHECK (outcome IN ('a', 'b', 'tie')),
			player_a TEXT NOT NULL,
			player_b TEXT NOT NULL,
			moves INTEGER NOT NULL,
			duration_secs INTEGER NOT NULL DEFAULT 0,
			origin TEXT NOT NULL DEFAULT 'local',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_results_outcome ON results(outcome);
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

// SaveResult records a finished match.
// Returns the ID of the inserted record.
func (s *Store) SaveResult(r Result) (int64, error) {
	if r.Origin == "" {
		r.Origin = "local"
	}

	res, err := s.db.Exec(
		`INSERT INTO results (outcome, player_a, player_b, moves, duration_secs, origin)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		string(r.Outcome), r.PlayerA, r.PlayerB, r.Moves, r.DurationSecs, r.Origin,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save result: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentResults retrieves the most recent results, newest first.
func (s *Store) RecentResults(limit int) ([]Result, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, outcome, player_a, player_b, moves, duration_secs, origin, created_at
		 FROM results
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query results: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		var outcome string
		var createdAt any
		if err := rows.Scan(&r.ID, &outcome, &r.PlayerA, &r.PlayerB, &r.Moves, &r.DurationSecs, &r.Origin, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.Outcome = Outcome(outcome)
		r.CreatedAt = parseTime(createdAt)
		results = append(results, r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return results, nil
}

// ResultByID retrieves a single result. Returns nil if it does not exist.
func (s *Store) ResultByID(id int64) (*Result, error) {
	var r Result
	var outcome string
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, outcome, player_a, player_b, moves, duration_secs, origin, created_at
		 FROM results
		 WHERE id = ?`,
		id,
	).Scan(&r.ID, &outcome, &r.PlayerA, &r.PlayerB, &r.Moves, &r.DurationSecs, &r.Origin, &createdAt)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query result: %w", err)
	}

	r.Outcome = Outcome(outcome)
	r.CreatedAt = parseTime(createdAt)
	return &r, nil
}

// Tally counts wins per side and ties across all results.
func (s *Store) Tally() (Tally, error) {
	var t Tally
	err := s.db.QueryRow(
		`SELECT COUNT(*),
		        COALESCE(SUM(CASE WHEN outcome = 'a' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'b' THEN 1 ELSE 0 END), 0),
		        COALESCE(SUM(CASE WHEN outcome = 'tie' THEN 1 ELSE 0 END), 0)
		 FROM results`,
	).Scan(&t.Games, &t.WinsA, &t.WinsB, &t.Ties)
	if err != nil {
		return Tally{}, fmt.Errorf("storage: cannot tally results: %w", err)
	}
	return t, nil
}

// ClearResults deletes all recorded results.
func (s *Store) ClearResults() error {
	if _, err := s.db.Exec("DELETE FROM results"); err != nil {
		return fmt.Errorf("storage: cannot clear results: %w", err)
	}
	return nil
}

// parseTime handles the driver returning either time.Time or a string.
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
