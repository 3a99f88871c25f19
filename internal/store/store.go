// Package store handles SQLite persistence of learner history: completed
// levels, finished sessions and their answer events. The practice core is
// persistence-free; this is the caller-side record.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps SQLite access for learner history.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at dsn, applies recommended pragmas
// and runs migrations.
func Open(dsn string) (*Store, error) {
	if err := EnsureDir(dsn); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.applyPragmas(); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user performance.
func (s *Store) applyPragmas() error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := s.db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS completed_levels (
			level_id TEXT PRIMARY KEY,
			completed_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS sessions (
			id TEXT PRIMARY KEY,
			level_id TEXT NOT NULL,
			started_at TEXT NOT NULL,
			ended_at TEXT NOT NULL,
			total_questions INTEGER NOT NULL,
			correct_answers INTEGER NOT NULL,
			accuracy REAL NOT NULL,
			advanced INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS answer_events (
			id INTEGER PRIMARY KEY,
			session_id TEXT NOT NULL,
			question_id TEXT NOT NULL,
			level_id TEXT NOT NULL,
			category TEXT NOT NULL,
			item TEXT NOT NULL,
			full_description TEXT NOT NULL,
			user_answer TEXT NOT NULL,
			correct INTEGER NOT NULL,
			scale_degree INTEGER NOT NULL,
			session_key TEXT NOT NULL,
			response_ms INTEGER NOT NULL,
			submitted_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_answer_events_session ON answer_events(session_id);`,
		`CREATE INDEX IF NOT EXISTS idx_answer_events_category ON answer_events(category);`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_level ON sessions(level_id);`,
	}
	for _, stmt := range stmts {
		if _, err := s.db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path in priority order:
// 1. TONEDRILL_DB environment variable
// 2. $XDG_DATA_HOME/tonedrill/tonedrill.db
// 3. ~/.local/share/tonedrill/tonedrill.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("TONEDRILL_DB"); p != "" {
		return p, nil
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "tonedrill", "tonedrill.db"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
