package store

import (
	"github.com/MKhiriev/donation-thermometer/internal/config"
	"github.com/MKhiriev/donation-thermometer/internal/logger"
)

// Storages aggregates the persistence layer handed to the service layer.
type Storages struct {
	Config *Facade
}

// NewStorages selects the backend from configuration and wraps it in the
// facade. A non-empty Firestore project ID selects the remote document
// backend; otherwise the in-memory backend is used. The selection happens
// exactly once, at process start, and is held as an owned value inside the
// facade for the process lifetime.
func NewStorages(cfg config.Storage, appCfg config.App, logger *logger.Logger) (*Storages, error) {
	var backend ConfigStore

	if cfg.Firestore.ProjectID != "" {
		firestoreStore, err := NewFirestoreStore(cfg.Firestore, appCfg.OrganizationName, logger)
		if err != nil {
			return nil, err
		}
		backend = firestoreStore
	} else {
		logger.Info().Msg("no firestore project configured")
		backend = NewMemoryStore(appCfg.OrganizationName, logger)
	}

	return &Storages{
		Config: NewFacade(backend, logger),
	}, nil
}
