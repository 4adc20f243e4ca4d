package store

import (
	"context"
	"testing"

	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// MemoryStore
// ─────────────────────────────────────────────

func TestMemoryStore_FreshStoreHoldsDefault(t *testing.T) {
	memStore := NewMemoryStore("CARE", logger.Nop())

	config, err := memStore.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "CARE", config.OrganizationName)
	assert.Empty(t, config.Title)
	assert.Zero(t, config.Goal)
	assert.Empty(t, config.Teams)
	assert.NotEmpty(t, config.LastUpdated)
}

func TestMemoryStore_SaveThenLoad(t *testing.T) {
	memStore := NewMemoryStore("CARE", logger.Nop())
	ctx := context.Background()

	team, err := models.NewTeam("Team Alpha", "https://example.com/a.jpg", 1500)
	require.NoError(t, err)
	saved, err := models.NewCampaignConfig("CARE", "Spring Drive", 10000, []models.Team{team})
	require.NoError(t, err)

	require.NoError(t, memStore.Save(ctx, saved))

	loaded, err := memStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved, loaded)
}

// TestMemoryStore_LoadReturnsCopy verifies that a caller mutating a loaded
// record can never corrupt the stored one.
func TestMemoryStore_LoadReturnsCopy(t *testing.T) {
	memStore := NewMemoryStore("CARE", logger.Nop())
	ctx := context.Background()

	team, err := models.NewTeam("Team Alpha", "", 100)
	require.NoError(t, err)
	saved, err := models.NewCampaignConfig("CARE", "Drive", 1000, []models.Team{team})
	require.NoError(t, err)
	require.NoError(t, memStore.Save(ctx, saved))

	loaded, err := memStore.Load(ctx)
	require.NoError(t, err)
	loaded.Teams[0].TotalRaised = 999999

	reloaded, err := memStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, reloaded.Teams[0].TotalRaised)
}

// TestMemoryStore_SaveDoesNotAliasCaller verifies that a caller keeping a
// reference to the saved record's teams cannot mutate the stored copy.
func TestMemoryStore_SaveDoesNotAliasCaller(t *testing.T) {
	memStore := NewMemoryStore("CARE", logger.Nop())
	ctx := context.Background()

	teams := []models.Team{{Name: "Team Alpha", TotalRaised: 100}}
	saved := models.CampaignConfig{Title: "Drive", Goal: 1000, Teams: teams, LastUpdated: models.Now()}
	require.NoError(t, memStore.Save(ctx, saved))

	teams[0].TotalRaised = 0

	loaded, err := memStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, 100.0, loaded.Teams[0].TotalRaised)
}
