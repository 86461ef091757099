package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkarev/lockbox/internal/logger"
)

func openBackends(t *testing.T) map[string]Store {
	t.Helper()

	sqlite, err := NewSQLiteStore(filepath.Join(t.TempDir(), "kv.db"))
	require.NoError(t, err)

	badger, err := NewBadgerStore(t.TempDir())
	require.NoError(t, err)

	stores := map[string]Store{
		"memory": NewMemStore(),
		"sqlite": sqlite,
		"badger": badger,
	}
	t.Cleanup(func() {
		for _, s := range stores {
			_ = s.Close()
		}
	})
	return stores
}

func TestStore_SetGetDelete(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			_, ok := s.Get("missing")
			assert.False(t, ok)

			require.NoError(t, s.Set("k1", "v1"))
			got, ok := s.Get("k1")
			require.True(t, ok)
			assert.Equal(t, "v1", got)

			require.NoError(t, s.Set("k1", "v2"))
			got, _ = s.Get("k1")
			assert.Equal(t, "v2", got, "set overwrites")

			require.NoError(t, s.Delete("k1"))
			_, ok = s.Get("k1")
			assert.False(t, ok)

			require.NoError(t, s.Delete("k1"), "deleting a missing key is not an error")
		})
	}
}

func TestStore_EmptyValueIsStored(t *testing.T) {
	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("empty", ""))
			got, ok := s.Get("empty")
			require.True(t, ok)
			assert.Empty(t, got)
		})
	}
}

func TestStore_LargeValue(t *testing.T) {
	// vault records carry base64 images, so values run to megabytes
	big := make([]byte, 2<<20)
	for i := range big {
		big[i] = byte('a' + i%26)
	}

	for name, s := range openBackends(t) {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, s.Set("big", string(big)))
			got, ok := s.Get("big")
			require.True(t, ok)
			assert.Equal(t, string(big), got)
		})
	}
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kv.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Close())

	s, err = NewSQLiteStore(path)
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestBadgerStore_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	s, err := NewBadgerStore(dir)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", "v"))
	require.NoError(t, s.Close())

	s, err = NewBadgerStore(dir)
	require.NoError(t, err)
	defer s.Close()

	got, ok := s.Get("k")
	require.True(t, ok)
	assert.Equal(t, "v", got)
}

func TestOpen_BackendSelection(t *testing.T) {
	log := logger.Nop()

	s, err := Open(BackendMemory, "", log)
	require.NoError(t, err)
	s.Close()

	s, err = Open("", filepath.Join(t.TempDir(), "kv.db"), log)
	require.NoError(t, err, "empty backend defaults to sqlite")
	s.Close()

	s, err = Open(BackendBadger, t.TempDir(), log)
	require.NoError(t, err)
	s.Close()

	_, err = Open("tape", "", log)
	assert.Error(t, err)
}
