package ingest

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingColumn is returned when the CSV header row lacks one of
	// the required columns (name, image_url, total_raised). The wrapping
	// error names the missing column.
	ErrMissingColumn = errors.New("missing required CSV column")

	// ErrMalformedCSV is returned when the byte stream is not well-formed
	// CSV at all (unbalanced quotes, empty file, unreadable row).
	ErrMalformedCSV = errors.New("malformed CSV")
)

// RowError locates a validation failure on a single data row of an upload.
// Rows are 1-indexed with the header row excluded, matching what an admin
// sees in a spreadsheet minus the header.
type RowError struct {
	// Row is the 1-indexed data row number.
	Row int

	// Column is the name of the offending column.
	Column string

	// Reason describes what was wrong with the cell value.
	Reason string
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d, column %q: %s", e.Row, e.Column, e.Reason)
}
