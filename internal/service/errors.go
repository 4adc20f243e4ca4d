package service

import "errors"

var (
	// ErrNoTeamsProvided is returned by ReplaceTeams when the parsed
	// upload produced a nil team list, which means the caller skipped the
	// ingestion step rather than uploaded an empty file.
	ErrNoTeamsProvided = errors.New("no team list provided")
)
