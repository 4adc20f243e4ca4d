package store

import (
	"context"

	"github.com/MKhiriev/donation-thermometer/models"
)

// ConfigStore is the persistence capability for the single campaign
// configuration record. Implementations must guarantee that a successful
// Save is visible to every Load issued after it returns, and that
// concurrent Save calls are serialized with respect to each other.
type ConfigStore interface {
	// Load returns the current configuration. Absence of a prior record
	// is not an error: implementations return the default record instead.
	// Errors are reserved for transport/auth failures
	// ([ErrStorageUnavailable]) and undecodable remote documents
	// ([ErrMalformedDocument]).
	Load(ctx context.Context) (models.CampaignConfig, error)

	// Save persists the given complete configuration, atomically
	// overwriting any existing record. A subsequent Load never observes a
	// partially written record.
	Save(ctx context.Context, config models.CampaignConfig) error
}
