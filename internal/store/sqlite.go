// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package store

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

// sqliteStore is the default persistent Store backend: a single two-column
// table inside a local SQLite database file.
type sqliteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (creating if necessary) the SQLite database at path
// and ensures the kv table exists. Pass ":memory:" for a throwaway store.
func NewSQLiteStore(path string) (Store, error) {
	if path == "" {
		path = ":memory:"
	}
	if path != ":memory:" {
		dir := filepath.Dir(path)
		if dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create storage dir: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite storage: %w", err)
	}

	// Single writer: the app is single-threaded with respect to vault
	// operations and sqlite locks the whole file anyway.
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(`CREATE TABLE IF NOT EXISTS kv (k TEXT PRIMARY KEY, v TEXT NOT NULL)`); err != nil {
		db.Close()
		return nil, fmt.Errorf("init kv table: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(key string) (string, bool) {
	var v string
	// Read errors beyond "no rows" are indistinguishable from an absent
	// key for callers; they only see the boolean.
	if err := s.db.QueryRow(`SELECT v FROM kv WHERE k = ?`, key).Scan(&v); err != nil {
		return "", false
	}
	return v, true
}

func (s *sqliteStore) Set(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO kv (k, v) VALUES (?, ?) ON CONFLICT(k) DO UPDATE SET v = excluded.v`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE k = ?`, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
