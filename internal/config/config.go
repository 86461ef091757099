// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// lockbox application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, an optional JSON file, and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the log file path and
	// the application version.
	App App `envPrefix:"LOCKBOX_APP_"`

	// Storage holds the local key-value storage backend settings.
	Storage Storage `envPrefix:"LOCKBOX_STORAGE_"`

	// AI holds the generative-AI endpoint settings. Leaving APIKey empty
	// disables the AI features without disabling the application.
	AI AI `envPrefix:"LOCKBOX_AI_"`

	// Biometric holds the local authenticator settings.
	Biometric Biometric `envPrefix:"LOCKBOX_BIOMETRIC_"`

	// Workers holds background job settings.
	Workers Workers `envPrefix:"LOCKBOX_WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after environment
	// variables and flags. Populated via the LOCKBOX_CONFIG environment
	// variable or the -c / -config flag.
	JSONFilePath string `env:"LOCKBOX_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogPath is the log file the application writes to while the
	// terminal UI owns stdout. Empty means a lockbox.log next to the
	// executable.
	// Env: LOCKBOX_APP_LOG_PATH
	LogPath string `env:"LOG_PATH"`

	// Version is the semantic version string of the running application,
	// shown on the settings screen.
	// Env: LOCKBOX_APP_VERSION
	Version string `env:"VERSION"`
}

// Storage holds the key-value storage backend settings.
type Storage struct {
	// Backend selects the persistence backend: "sqlite" (default),
	// "badger", or "memory".
	// Env: LOCKBOX_STORAGE_BACKEND
	Backend string `env:"BACKEND"`

	// Path is the sqlite database file or the badger directory.
	// Env: LOCKBOX_STORAGE_PATH
	Path string `env:"PATH"`
}

// AI holds the generative-AI endpoint settings.
type AI struct {
	// BaseURL is the API origin. Empty means the public Gemini endpoint.
	// Env: LOCKBOX_AI_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// Model is the generateContent model name.
	// Env: LOCKBOX_AI_MODEL
	Model string `env:"MODEL"`

	// APIKey authenticates against the API. Empty disables AI features.
	// Env: LOCKBOX_AI_API_KEY
	APIKey string `env:"API_KEY"`

	// RequestTimeout bounds a single completion request.
	// Env: LOCKBOX_AI_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Biometric holds the local authenticator settings.
type Biometric struct {
	// CredentialDir is the directory holding sealed credential files.
	// Env: LOCKBOX_BIOMETRIC_CREDENTIAL_DIR
	CredentialDir string `env:"CREDENTIAL_DIR"`
}

// Workers holds background job settings.
type Workers struct {
	// AutoLockIdle is the inactivity period after which the vault locks
	// itself. Zero disables auto-locking.
	// Env: LOCKBOX_WORKERS_AUTO_LOCK_IDLE
	AutoLockIdle time.Duration `env:"AUTO_LOCK_IDLE"`
}

// GetConfig loads, merges, and validates the application configuration
// from all available sources. Sources are merged in order (environment
// variables, command-line flags, JSON file with its path resolved from the
// first two, then built-in defaults) and the first source to set a field
// wins.
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}

// defaults returns the built-in fallback configuration. The data directory
// follows the OS user-config convention.
func defaults() *StructuredConfig {
	dataDir := "lockbox"
	if base, err := os.UserConfigDir(); err == nil {
		dataDir = filepath.Join(base, "lockbox")
	}

	return &StructuredConfig{
		Storage: Storage{
			Backend: "sqlite",
			Path:    filepath.Join(dataDir, "lockbox.db"),
		},
		AI: AI{
			RequestTimeout: 30 * time.Second,
		},
		Biometric: Biometric{
			CredentialDir: filepath.Join(dataDir, "credentials"),
		},
		Workers: Workers{
			AutoLockIdle: 5 * time.Minute,
		},
	}
}
