package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// settings are absent from every configuration source. All of them abort
// startup; the process must not serve traffic without them.
var (
	// ErrNoTokenSignKey indicates the JWT signing secret was not configured.
	ErrNoTokenSignKey = errors.New("token sign key is not configured")

	// ErrNoDatabaseDSN indicates the database connection string was not
	// configured.
	ErrNoDatabaseDSN = errors.New("database DSN is not configured")
)
