// Package utils provides general-purpose helper utilities used across
// different parts of the application: HTTP response writing, HTTP client
// initialization, and identifier generation.
package utils

import "github.com/google/uuid"

// UUIDGenerator produces string identifiers for edit keys and trace IDs.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a time-ordered UUIDv7 string, falling back to a random
// UUIDv4 if v7 generation fails.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
