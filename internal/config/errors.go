package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or invalid.
var (
	// ErrNoTokenSignKey indicates the JWT signing secret was not provided
	// by any configuration source. The server refuses to start rather than
	// fall back to a built-in default.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrInvalidTokenDuration indicates a zero or negative token validity
	// window after merging all sources.
	ErrInvalidTokenDuration = errors.New("token duration must be positive")

	// ErrNoDatabaseDSN indicates the PostgreSQL connection string was not
	// provided by any configuration source.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
