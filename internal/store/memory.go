package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/models"
)

// MemoryStore is the process-local implementation of [ConfigStore].
// It holds the single campaign record behind a mutex so concurrent request
// handlers never observe a record mid-write. Data does not survive a
// process restart; on restart the store resets to the default record.
type MemoryStore struct {
	mu      sync.Mutex
	current models.CampaignConfig

	logger *logger.Logger
}

// NewMemoryStore constructs a MemoryStore seeded with the default record
// for the given organization name.
func NewMemoryStore(organizationName string, logger *logger.Logger) *MemoryStore {
	logger.Info().Msg("using in-memory storage (data will not persist)")
	return &MemoryStore{
		current: models.DefaultCampaignConfig(organizationName),
		logger:  logger,
	}
}

// Load implements [ConfigStore]. It returns a deep copy of the held record
// so callers can never alias the stored teams slice.
func (m *MemoryStore) Load(_ context.Context) (models.CampaignConfig, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.current.Clone(), nil
}

// Save implements [ConfigStore]. It replaces the held record wholesale.
func (m *MemoryStore) Save(_ context.Context, config models.CampaignConfig) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.current = config.Clone()
	return nil
}
