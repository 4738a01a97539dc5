package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates invalid authentication settings
	// (for example, a missing token signing key).
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates invalid document store settings
	// (for example, an empty connection URI or database name).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
