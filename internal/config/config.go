package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// donation-thermometer application. It aggregates all sub-configurations and
// is populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the admin edit key and
	// the defaults used for a never-yet-initialized campaign record.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the persistence backend. An empty
	// Firestore project ID selects the in-memory backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged below the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// EditKey is the shared secret required on every admin mutation
	// request. When empty, the server generates a random key at startup
	// and logs it as a warning.
	// Env: APP_EDIT_KEY
	EditKey string `env:"EDIT_KEY"`

	// OrganizationName is the organization name served by an empty store
	// before any admin write has happened.
	// Env: APP_ORGANIZATION_NAME
	OrganizationName string `env:"ORGANIZATION_NAME"`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	// Firestore holds the remote document store settings. The backend is
	// selected at startup: a non-empty ProjectID picks Firestore, an empty
	// one picks the in-memory store. The selection is fixed for the
	// process lifetime.
	Firestore Firestore `envPrefix:"FIRESTORE_"`
}

// Firestore holds connection settings for the Firestore REST backend.
type Firestore struct {
	// ProjectID is the GCP project whose Firestore database holds the
	// campaign configuration document.
	// Env: STORAGE_FIRESTORE_PROJECT_ID
	ProjectID string `env:"PROJECT_ID"`

	// AccessToken is an optional static OAuth2 bearer token for the
	// Firestore REST API. When empty, the backend fetches tokens from the
	// GCE metadata server (the normal mode on Cloud Run).
	// Env: STORAGE_FIRESTORE_ACCESS_TOKEN
	AccessToken string `env:"ACCESS_TOKEN"`

	// Endpoint overrides the Firestore REST base URL. Used by tests and
	// emulators; production leaves it empty.
	// Env: STORAGE_FIRESTORE_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// RequestTimeout bounds every document read or write. A timed-out
	// call surfaces as a storage-unavailable error rather than hanging
	// the request.
	// Env: STORAGE_FIRESTORE_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound HTTP layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (earlier sources win for non-zero fields):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
