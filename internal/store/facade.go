package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/models"
)

// Mutator transforms the current valid configuration into the next one.
// It must be pure: no I/O, no retained references to its argument. A
// returned error aborts the update before anything is written.
type Mutator func(current models.CampaignConfig) (models.CampaignConfig, error)

// Facade is the single coordination point for configuration access. It owns
// the backend selected at startup and serializes every admin
// read-modify-write sequence, so two concurrent updates can never produce a
// record mixing fields from both.
//
// A Facade is constructed once in main and injected into the service layer;
// it is never a package-level global.
type Facade struct {
	store ConfigStore

	// mu serializes ApplyUpdate. Reads go straight to the backend and run
	// concurrently with each other.
	mu sync.Mutex

	logger *logger.Logger
}

// NewFacade wraps the given backend. The backend choice is fixed for the
// process lifetime.
func NewFacade(store ConfigStore, logger *logger.Logger) *Facade {
	return &Facade{
		store:  store,
		logger: logger,
	}
}

// GetConfig returns the current configuration from the active backend.
func (f *Facade) GetConfig(ctx context.Context) (models.CampaignConfig, error) {
	return f.store.Load(ctx)
}

// ApplyUpdate runs the admin mutation pipeline: load the current record,
// apply mutator, validate the result, stamp last_updated, and save.
//
// Guarantees:
//   - a mutator or validation error aborts before any write; the error is
//     returned unchanged;
//   - a backend save error propagates unchanged and the previous record
//     remains authoritative;
//   - last_updated is always set from the wall clock at commit time, never
//     taken from the mutator's output.
func (f *Facade) ApplyUpdate(ctx context.Context, mutator Mutator) (models.CampaignConfig, error) {
	log := logger.FromContext(ctx)

	f.mu.Lock()
	defer f.mu.Unlock()

	current, err := f.store.Load(ctx)
	if err != nil {
		log.Err(err).Msg("loading config before update failed")
		return models.CampaignConfig{}, err
	}

	next, err := mutator(current)
	if err != nil {
		log.Err(err).Msg("config mutation rejected")
		return models.CampaignConfig{}, err
	}

	if err = next.Validate(); err != nil {
		log.Err(err).Msg("mutated config failed validation")
		return models.CampaignConfig{}, err
	}

	next.LastUpdated = models.Now()

	if err = f.store.Save(ctx, next); err != nil {
		log.Err(err).Msg("saving updated config failed")
		return models.CampaignConfig{}, err
	}

	return next, nil
}
