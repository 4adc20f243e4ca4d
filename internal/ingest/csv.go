// Package ingest parses untrusted admin uploads into validated domain
// values. Parsing is all-or-nothing: either every row of an upload is valid
// and a complete result is returned, or a typed error identifies the first
// offending row and column and nothing is returned. Callers commit the
// result to the store only after parsing has fully succeeded, so an
// abandoned or failed upload never touches the stored record.
package ingest

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/MKhiriev/donation-thermometer/models"
)

// Column names required in the CSV header row. Column order is irrelevant
// and unknown columns are ignored.
const (
	ColumnName        = "name"
	ColumnImageURL    = "image_url"
	ColumnTotalRaised = "total_raised"
)

// columnBinding maps the three required columns to their positions in the
// header row of one particular upload.
type columnBinding struct {
	name        int
	imageURL    int
	totalRaised int
}

// ParseTeams reads a CSV byte stream and returns the teams it describes, in
// file order. The first row must be a header containing at least the
// name, image_url, and total_raised columns.
//
// Returns:
//   - a wrapped [ErrMissingColumn] if the header lacks a required column;
//   - a *[RowError] locating the first invalid data row (1-indexed, header
//     excluded) and the offending column;
//   - a wrapped [ErrMalformedCSV] if the stream is not well-formed CSV.
func ParseTeams(r io.Reader) ([]models.Team, error) {
	reader := csv.NewReader(r)
	// Spreadsheet exports are ragged more often than not; row length is
	// checked against the header below so the error can name the row.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: empty file", ErrMalformedCSV)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedCSV, err)
	}

	binding, err := bindColumns(header)
	if err != nil {
		return nil, err
	}

	teams := make([]models.Team, 0)
	for row := 1; ; row++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %w", ErrMalformedCSV, row, err)
		}

		team, err := parseTeamRecord(record, binding, row)
		if err != nil {
			return nil, err
		}

		teams = append(teams, team)
	}

	return teams, nil
}

// bindColumns resolves the position of every required column in the header
// row. Matching is case-insensitive and tolerates surrounding whitespace
// and a UTF-8 BOM on the first cell.
func bindColumns(header []string) (columnBinding, error) {
	binding := columnBinding{name: -1, imageURL: -1, totalRaised: -1}

	for i, cell := range header {
		cell = strings.TrimPrefix(cell, "\uFEFF")
		switch strings.ToLower(strings.TrimSpace(cell)) {
		case ColumnName:
			binding.name = i
		case ColumnImageURL:
			binding.imageURL = i
		case ColumnTotalRaised:
			binding.totalRaised = i
		}
	}

	switch {
	case binding.name == -1:
		return columnBinding{}, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnName)
	case binding.imageURL == -1:
		return columnBinding{}, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnImageURL)
	case binding.totalRaised == -1:
		return columnBinding{}, fmt.Errorf("%w: %q", ErrMissingColumn, ColumnTotalRaised)
	}

	return binding, nil
}

func parseTeamRecord(record []string, binding columnBinding, row int) (models.Team, error) {
	if len(record) <= binding.name || len(record) <= binding.imageURL || len(record) <= binding.totalRaised {
		return models.Team{}, &RowError{Row: row, Column: ColumnTotalRaised, Reason: "row has fewer cells than the header"}
	}

	name := strings.TrimSpace(record[binding.name])
	if name == "" {
		return models.Team{}, &RowError{Row: row, Column: ColumnName, Reason: "must not be empty"}
	}

	rawAmount := strings.TrimSpace(record[binding.totalRaised])
	totalRaised, err := strconv.ParseFloat(rawAmount, 64)
	if err != nil {
		return models.Team{}, &RowError{Row: row, Column: ColumnTotalRaised, Reason: fmt.Sprintf("unparsable amount %q", rawAmount)}
	}

	team, err := models.NewTeam(name, strings.TrimSpace(record[binding.imageURL]), totalRaised)
	if err != nil {
		var fieldErr *models.FieldError
		if errors.As(err, &fieldErr) {
			return models.Team{}, &RowError{Row: row, Column: fieldErr.Field, Reason: fieldErr.Reason}
		}
		return models.Team{}, err
	}

	return team, nil
}
