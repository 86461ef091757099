package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseEnv_FullSet verifies that every mapped variable lands in its
// field.
func TestParseEnv_FullSet(t *testing.T) {
	t.Setenv("LOCKBOX_APP_LOG_PATH", "/tmp/lockbox.log")
	t.Setenv("LOCKBOX_APP_VERSION", "1.2.3")
	t.Setenv("LOCKBOX_STORAGE_BACKEND", "badger")
	t.Setenv("LOCKBOX_STORAGE_PATH", "/tmp/lockbox-data")
	t.Setenv("LOCKBOX_AI_BASE_URL", "https://ai.example.com")
	t.Setenv("LOCKBOX_AI_MODEL", "test-model")
	t.Setenv("LOCKBOX_AI_API_KEY", "key-123")
	t.Setenv("LOCKBOX_AI_REQUEST_TIMEOUT", "45s")
	t.Setenv("LOCKBOX_BIOMETRIC_CREDENTIAL_DIR", "/tmp/creds")
	t.Setenv("LOCKBOX_WORKERS_AUTO_LOCK_IDLE", "10m")
	t.Setenv("LOCKBOX_CONFIG", "/tmp/config.json")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "/tmp/lockbox.log", cfg.App.LogPath)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.Equal(t, "badger", cfg.Storage.Backend)
	assert.Equal(t, "/tmp/lockbox-data", cfg.Storage.Path)
	assert.Equal(t, "https://ai.example.com", cfg.AI.BaseURL)
	assert.Equal(t, "test-model", cfg.AI.Model)
	assert.Equal(t, "key-123", cfg.AI.APIKey)
	assert.Equal(t, 45*time.Second, cfg.AI.RequestTimeout)
	assert.Equal(t, "/tmp/creds", cfg.Biometric.CredentialDir)
	assert.Equal(t, 10*time.Minute, cfg.Workers.AutoLockIdle)
	assert.Equal(t, "/tmp/config.json", cfg.JSONFilePath)
}

// TestParseEnv_Empty verifies that with no variables set the config stays
// zero-valued.
func TestParseEnv_Empty(t *testing.T) {
	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseEnv_InvalidDuration verifies that an unparsable duration is
// reported.
func TestParseEnv_InvalidDuration(t *testing.T) {
	t.Setenv("LOCKBOX_AI_REQUEST_TIMEOUT", "not-a-duration")

	cfg := &StructuredConfig{}
	assert.Error(t, parseEnv(cfg))
}
