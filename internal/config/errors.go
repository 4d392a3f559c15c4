package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthConfigs indicates a missing token sign key or a
	// non-positive token duration.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidStorageConfigs indicates an empty DSN or an unknown driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates that neither an HTTP nor a gRPC
	// address was configured.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidOAuthConfigs indicates a partial Google sign-in setup.
	ErrInvalidOAuthConfigs = errors.New("invalid oauth configuration")
	// ErrInvalidAppConfigs indicates an unknown log level.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
