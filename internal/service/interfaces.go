package service

import (
	"context"

	"github.com/MKhiriev/donation-thermometer/models"
)

// CampaignService exposes the public read path and the admin mutation
// pipeline over the campaign configuration record.
type CampaignService interface {
	// GetConfig returns the current configuration (or the default record
	// for a never-yet-initialized store).
	GetConfig(ctx context.Context) (models.CampaignConfig, error)

	// Summary returns the derived aggregate view used by public pages:
	// total raised, percent of goal, team count.
	Summary(ctx context.Context) (models.CampaignSummary, error)

	// ReplaceTeams commits a fully parsed CSV upload: the team list is
	// replaced wholesale, all other fields are preserved, and
	// last_updated is refreshed. Returns the committed configuration.
	ReplaceTeams(ctx context.Context, teams []models.Team) (models.CampaignConfig, error)

	// ReplaceConfig commits an admin JSON update: the whole record is
	// replaced except the server-managed last_updated timestamp. Returns
	// the committed configuration.
	ReplaceConfig(ctx context.Context, config models.CampaignConfig) (models.CampaignConfig, error)
}
