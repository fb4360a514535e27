// Package kv is the persistence layer: a local key-value store where each
// logical collection lives under one key as a JSON blob and every write
// replaces the value whole. There are no cross-key transactions.
package kv

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/existflow/taskdeck/internal/logger"
	_ "modernc.org/sqlite"
)

// Well-known store keys.
const (
	KeyTasks    = "tasks"
	KeyNotes    = "notes"
	KeyTeam     = "teamMembers"
	KeyDarkMode = "darkMode"
	KeyNotify   = "notifications"
	KeyView     = "defaultView"
	KeyArchive  = "autoArchive"

	// TrackingPrefix + task id marks an active time-tracking session.
	TrackingPrefix = "tracking_"
)

// Store wraps the SQLite database holding the kv table.
type Store struct {
	db *sql.DB
}

// DefaultPath returns the default store path (~/.taskdeck/taskdeck.db)
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".taskdeck", "taskdeck.db"), nil
}

// Open opens or creates the store at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("failed to initialize store: %w", err)
	}

	return &Store{db: db}, nil
}

// OpenDefault opens the store at the default path.
func OpenDefault() (*Store, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Open(path)
}

// Get decodes the value stored under key into v. On a missing key or a
// value that fails to decode, v is left at its zero value and Get returns
// false; it never returns an error to the caller.
func (s *Store) Get(key string, v any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		logger.Warn("store read failed", logger.F("key", key), logger.F("error", err))
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		logger.Warn("store value malformed, using default", logger.F("key", key), logger.F("error", err))
		return false
	}
	return true
}

// Set serializes v and overwrites the value under key. The write error is
// returned so callers can decide whether to surface it.
func (s *Store) Set(key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if _, err := s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(raw),
	); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// Delete removes key if present.
func (s *Store) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}

// Keys returns every key starting with prefix.
func (s *Store) Keys(prefix string) ([]string, error) {
	rows, err := s.db.Query(`SELECT key FROM kv WHERE key LIKE ? ORDER BY key`, prefix+"%")
	if err != nil {
		return nil, fmt.Errorf("failed to list keys: %w", err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

// Reset wipes every key in the store.
func (s *Store) Reset() error {
	if _, err := s.db.Exec(`DELETE FROM kv`); err != nil {
		return fmt.Errorf("failed to clear store: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}
