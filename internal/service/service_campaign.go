package service

import (
	"context"

	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/store"
	"github.com/MKhiriev/donation-thermometer/models"
)

// campaignService is the concrete implementation of CampaignService. All
// mutations go through the store facade's ApplyUpdate so that validation
// always precedes persistence and concurrent admin writes are serialized.
type campaignService struct {
	// facade is the single entry point to the active backend.
	facade *store.Facade

	// logger is the structured logger used for diagnostic output.
	logger *logger.Logger
}

// NewCampaignService constructs a CampaignService on top of the given store
// facade.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewCampaignService(facade *store.Facade, logger *logger.Logger) CampaignService {
	logger.Debug().Msg("creating campaign service")
	return &campaignService{
		facade: facade,
		logger: logger,
	}
}

// GetConfig returns the current configuration from the active backend.
func (s *campaignService) GetConfig(ctx context.Context) (models.CampaignConfig, error) {
	return s.facade.GetConfig(ctx)
}

// Summary loads the current configuration and derives the aggregate view
// from it with the pure aggregation helpers.
func (s *campaignService) Summary(ctx context.Context) (models.CampaignSummary, error) {
	config, err := s.facade.GetConfig(ctx)
	if err != nil {
		return models.CampaignSummary{}, err
	}

	return models.CampaignSummary{
		OrganizationName: config.OrganizationName,
		Title:            config.Title,
		Goal:             config.Goal,
		TotalRaised:      models.TotalRaised(config),
		PercentOfGoal:    models.PercentOfGoal(config),
		TeamCount:        len(config.Teams),
		LastUpdated:      config.LastUpdated,
	}, nil
}

// ReplaceTeams implements the CSV half of the admin mutation pipeline.
// The caller has already parsed and validated the upload; here the team
// list replaces the current one wholesale while organization name, title,
// and goal are preserved.
//
// Returns:
//   - ErrNoTeamsProvided if teams is nil (an empty, non-nil list is a valid
//     "clear all teams" upload);
//   - a *models.FieldError if the merged record fails validation;
//   - a storage error from the backend, unchanged.
func (s *campaignService) ReplaceTeams(ctx context.Context, teams []models.Team) (models.CampaignConfig, error) {
	log := logger.FromContext(ctx)

	if teams == nil {
		log.Error().Msg("nil team list passed to ReplaceTeams")
		return models.CampaignConfig{}, ErrNoTeamsProvided
	}

	committed, err := s.facade.ApplyUpdate(ctx, func(current models.CampaignConfig) (models.CampaignConfig, error) {
		current.Teams = teams
		return current, nil
	})
	if err != nil {
		return models.CampaignConfig{}, err
	}

	log.Info().Int("teams", len(committed.Teams)).Msg("team list replaced")
	return committed, nil
}

// ReplaceConfig implements the JSON half of the admin mutation pipeline.
// The submitted record replaces the stored one entirely; only last_updated
// is server-managed and is stamped by the facade at commit time, whatever
// the request carried.
//
// A missing title or team list is rejected as a validation error before
// any persistence; numeric invariants are enforced by the facade's
// validation step.
func (s *campaignService) ReplaceConfig(ctx context.Context, config models.CampaignConfig) (models.CampaignConfig, error) {
	log := logger.FromContext(ctx)

	if config.Title == "" {
		log.Error().Msg("config update missing title")
		return models.CampaignConfig{}, &models.FieldError{Field: "title", Reason: "must not be empty"}
	}
	if config.Teams == nil {
		log.Error().Msg("config update missing team list")
		return models.CampaignConfig{}, &models.FieldError{Field: "teams", Reason: "must be present"}
	}

	committed, err := s.facade.ApplyUpdate(ctx, func(models.CampaignConfig) (models.CampaignConfig, error) {
		return config, nil
	})
	if err != nil {
		return models.CampaignConfig{}, err
	}

	log.Info().Msg("config replaced via JSON update")
	return committed, nil
}
