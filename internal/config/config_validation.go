// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Mark Karev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error
// otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.Storage.Backend {
	case "sqlite", "badger":
		if cfg.Storage.Path == "" {
			return ErrInvalidStorageConfigs
		}
	case "memory":
		// No path required; contents are lost on exit.
	default:
		return ErrInvalidStorageConfigs
	}

	if cfg.AI.RequestTimeout <= 0 {
		return ErrInvalidAIConfigs
	}

	return nil
}
