// Package storage provides SQLite-based persistence for level progress and the solve log.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/damiensmith1/broken-calculator/internal/game"
)

// LocalPlayer is the player name used for local (non-SSH) sessions.
const LocalPlayer = "local"

// Store manages the SQLite database connection.
type Store struct {
	db *sql.DB
}

// SolveEntry is a single row of the solve log.
type SolveEntry struct {
	ID          int64
	AttemptID   string
	Player      string
	LevelID     int
	Evaluations int
	CreatedAt   time.Time
}

// LevelStats aggregates the solve log for one level.
type LevelStats struct {
	LevelID         int
	Solves          int
	BestEvaluations int
	LastSolved      time.Time
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
		CREATE TABLE IF NOT EXISTS kv (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS solves (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			attempt_id TEXT NOT NULL UNIQUE,
			player TEXT NOT NULL,
			level_id INTEGER NOT NULL,
			evaluations INTEGER NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_solves_player_level ON solves(player, level_id);
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

// Get returns the value stored under key.
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("storage: cannot read %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot write %q: %w", key, err)
	}
	return nil
}

// Delete removes key. Deleting a missing key is not an error.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("storage: cannot delete %q: %w", key, err)
	}
	return nil
}

// Progress returns the completed-levels store for a player.
// The local player uses the bare key, SSH users get their own namespace.
func (s *Store) Progress(player string) *game.KVProgress {
	if player == LocalPlayer {
		player = ""
	}
	return game.NewKVProgress(s, player)
}

// Solves returns a recorder that writes the given player's solves.
func (s *Store) Solves(player string) game.SolveRecorder {
	return &solveLog{store: s, player: player}
}

type solveLog struct {
	store  *Store
	player string
}

func (l *solveLog) RecordSolve(solve game.Solve) error {
	_, err := l.store.RecordSolve(l.player, solve)
	return err
}

// RecordSolve appends a solve to the log and returns its row id.
func (s *Store) RecordSolve(player string, solve game.Solve) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO solves (attempt_id, player, level_id, evaluations) VALUES (?, ?, ?, ?)`,
		solve.AttemptID, player, solve.LevelID, solve.Evaluations,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record solve: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get solve ID: %w", err)
	}

	return id, nil
}

// RecentSolves returns a player's latest solves, newest first.
func (s *Store) RecentSolves(player string, limit int) ([]SolveEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, attempt_id, player, level_id, evaluations, created_at
		 FROM solves
		 WHERE player = ?
		 ORDER BY id DESC
		 LIMIT ?`,
		player, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query solves: %w", err)
	}
	defer rows.Close()

	var entries []SolveEntry
	for rows.Next() {
		var e SolveEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.AttemptID, &e.Player, &e.LevelID, &e.Evaluations, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan solve row: %w", err)
		}
		e.CreatedAt = parseTimestamp(createdAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating solves: %w", err)
	}

	return entries, nil
}

// LevelStats aggregates a player's solve log per level, ordered by level id.
func (s *Store) LevelStats(player string) ([]LevelStats, error) {
	rows, err := s.db.Query(
		`SELECT level_id, COUNT(*), MIN(evaluations), MAX(created_at)
		 FROM solves
		 WHERE player = ?
		 GROUP BY level_id
		 ORDER BY level_id`,
		player,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot get level stats: %w", err)
	}
	defer rows.Close()

	var stats []LevelStats
	for rows.Next() {
		var ls LevelStats
		var lastSolved any
		if err := rows.Scan(&ls.LevelID, &ls.Solves, &ls.BestEvaluations, &lastSolved); err != nil {
			return nil, fmt.Errorf("storage: cannot scan stats row: %w", err)
		}
		ls.LastSolved = parseTimestamp(lastSolved)
		stats = append(stats, ls)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: error iterating stats: %w", err)
	}

	return stats, nil
}

// ClearPlayer deletes a player's progress and solve log.
func (s *Store) ClearPlayer(player string) error {
	if err := s.Delete(s.Progress(player).Key()); err != nil {
		return err
	}
	if _, err := s.db.Exec(`DELETE FROM solves WHERE player = ?`, player); err != nil {
		return fmt.Errorf("storage: cannot clear solves: %w", err)
	}
	return nil
}

// parseTimestamp handles both driver-native and text DATETIME columns.
func parseTimestamp(v any) time.Time {
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
