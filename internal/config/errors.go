package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, an unknown backend name or a missing path).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAIConfigs indicates invalid generative-AI settings (for
	// example, a non-positive request timeout).
	ErrInvalidAIConfigs = errors.New("invalid ai configuration")
)
