package store

import (
	"fmt"

	"github.com/mkarev/lockbox/internal/logger"
)

// Backend names for Open.
const (
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Open constructs the Store backend selected by name. path is the database
// file (sqlite) or directory (badger); it is ignored by the memory backend.
// An empty backend name defaults to sqlite.
func Open(backend, path string, log *logger.Logger) (Store, error) {
	switch backend {
	case "", BackendSQLite:
		s, err := NewSQLiteStore(path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite backend: %w", err)
		}
		log.Debug().Str("path", path).Msg("opened sqlite storage")
		return s, nil
	case BackendBadger:
		s, err := NewBadgerStore(path)
		if err != nil {
			return nil, fmt.Errorf("open badger backend: %w", err)
		}
		log.Debug().Str("dir", path).Msg("opened badger storage")
		return s, nil
	case BackendMemory:
		return NewMemStore(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", backend)
	}
}
