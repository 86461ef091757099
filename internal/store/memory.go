package store

import "sync"

// memStore is a map-backed Store. It is the backend used in tests and the
// fallback when no persistent path is configured.
type memStore struct {
	mu    sync.RWMutex
	items map[string]string
}

// NewMemStore returns an empty in-memory Store. Contents do not survive the
// process.
func NewMemStore() Store {
	return &memStore{items: make(map[string]string)}
}

func (s *memStore) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.items[key]
	return v, ok
}

func (s *memStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items[key] = value
	return nil
}

func (s *memStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *memStore) Close() error {
	return nil
}
