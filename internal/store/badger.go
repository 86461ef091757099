// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package store

import (
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// badgerStore is an alternative persistent Store backend on top of an
// embedded Badger database. Selected with `storage.backend = badger`.
type badgerStore struct {
	db *badger.DB
}

// NewBadgerStore opens (creating if necessary) a Badger database in dir.
func NewBadgerStore(dir string) (Store, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil
	// The vault blob is rewritten wholesale on every mutation; small value
	// log files keep reclamation cheap.
	opts.ValueLogFileSize = 1024 * 1024 * 16

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger storage: %w", err)
	}

	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Get(key string) (string, bool) {
	var value string
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			value = string(val)
			return nil
		})
	})
	if err != nil {
		// badger.ErrKeyNotFound and real read failures collapse to absent;
		// the Store contract exposes only the boolean.
		return "", false
	}
	return value, true
}

func (s *badgerStore) Set(key, value string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), []byte(value))
	})
	if err != nil {
		return fmt.Errorf("set %q: %w", key, err)
	}
	return nil
}

func (s *badgerStore) Delete(key string) error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
	if err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
