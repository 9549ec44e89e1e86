// Package store persists the picker's small settings bag (input mode,
// recent characters) in a SQLite database. All reads happen once at open;
// writes accumulate in memory and reach disk in a single transaction when
// the session ends.
package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	_ "modernc.org/sqlite"
)

// Keys used by the application.
const (
	KeyMode   = "mode"
	KeyRecent = "recent"
)

// Store is a write-behind key-value bag over a SQLite table. It is owned by
// one session and is not safe for concurrent use.
type Store struct {
	db     *sql.DB
	values map[string]string
	dirty  map[string]struct{}
}

// Open creates the store's parent directory if needed, opens the database
// at path and loads every stored key.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create store directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open settings store: %w", err)
	}
	s := &Store{
		db:     db,
		values: make(map[string]string),
		dirty:  make(map[string]struct{}),
	}
	if err := s.load(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	const schema = `CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("init settings schema: %w", err)
	}
	rows, err := s.db.Query(`SELECT key, value FROM settings`)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("scan setting: %w", err)
		}
		s.values[key] = value
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("load settings: %w", err)
	}
	return nil
}

// Get returns the stored value for key, or fallback when the key is absent.
func (s *Store) Get(key, fallback string) string {
	if value, ok := s.values[key]; ok {
		return value
	}
	return fallback
}

// Set records value for key in memory. Nothing reaches disk until Flush.
func (s *Store) Set(key, value string) {
	if existing, ok := s.values[key]; ok && existing == value {
		return
	}
	s.values[key] = value
	s.dirty[key] = struct{}{}
}

// Flush writes every modified key in one transaction. A store with no
// pending changes flushes as a no-op.
func (s *Store) Flush() error {
	if len(s.dirty) == 0 {
		return nil
	}
	keys := make([]string, 0, len(s.dirty))
	for key := range s.dirty {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("flush settings: %w", err)
	}
	const upsert = `INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	for _, key := range keys {
		if _, err := tx.Exec(upsert, key, s.values[key]); err != nil {
			tx.Rollback()
			return fmt.Errorf("flush setting %q: %w", key, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("flush settings: %w", err)
	}
	s.dirty = make(map[string]struct{})
	return nil
}

// Close flushes pending changes and closes the database.
func (s *Store) Close() error {
	flushErr := s.Flush()
	closeErr := s.db.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}
