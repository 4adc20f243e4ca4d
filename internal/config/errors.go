package config

import (
	"errors"
	"time"
)

// Built-in defaults applied as the lowest-priority configuration source.
const (
	defaultHTTPAddress      = "0.0.0.0:8080"
	defaultRequestTimeout   = 30 * time.Second
	defaultFirestoreTimeout = 10 * time.Second
)

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, an empty HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidTimeoutConfigs indicates a missing or non-positive
	// request or storage timeout.
	ErrInvalidTimeoutConfigs = errors.New("invalid timeout configuration")
)
