package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/donation-thermometer/internal/ingest"
	"github.com/MKhiriev/donation-thermometer/internal/service"
	"github.com/MKhiriev/donation-thermometer/internal/store"
	"github.com/MKhiriev/donation-thermometer/models"
)

var errorStatusMap = map[error]int{
	ingest.ErrMissingColumn:    http.StatusBadRequest,
	ingest.ErrMalformedCSV:     http.StatusBadRequest,
	service.ErrNoTeamsProvided: http.StatusBadRequest,

	// Transient backend failures are a retryable condition for the
	// caller; the server itself never retries them.
	store.ErrStorageUnavailable: http.StatusServiceUnavailable,
	store.ErrMalformedDocument:  http.StatusInternalServerError,
}

func statusFromError(err error) int {
	var fieldErr *models.FieldError
	var rowErr *ingest.RowError
	if errors.As(err, &fieldErr) || errors.As(err, &rowErr) {
		return http.StatusBadRequest
	}

	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
