package http

import "errors"

// Sentinel errors used by the authentication middleware when parsing the
// "Authorization" HTTP header. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrWrongEditKey is returned when an "Authorization" header is present
	// but the key it carries does not match the configured edit key.
	ErrWrongEditKey = errors.New("wrong edit key")
)
