package store

import "errors"

// Sentinel errors returned by ConfigStore implementations. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrStorageUnavailable is returned when the remote document store
	// cannot be reached, rejects the credentials, or times out. It marks
	// a transient condition: the caller may retry, the store never does.
	// The previously committed record remains authoritative.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedDocument is returned when the remote document exists but
	// cannot be mapped onto a valid campaign configuration (missing or
	// mistyped fields). Surfacing it instead of guessing keeps a corrupted
	// document from ever becoming a corrupted domain object.
	ErrMalformedDocument = errors.New("malformed configuration document")
)
