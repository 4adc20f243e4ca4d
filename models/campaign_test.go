package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// NewTeam
// ─────────────────────────────────────────────

func TestNewTeam_Valid(t *testing.T) {
	team, err := NewTeam("Team Alpha", "https://example.com/alpha.jpg", 2500)
	require.NoError(t, err)

	assert.Equal(t, "Team Alpha", team.Name)
	require.NotNil(t, team.ImageURL)
	assert.Equal(t, "https://example.com/alpha.jpg", *team.ImageURL)
	assert.Equal(t, 2500.0, team.TotalRaised)
}

func TestNewTeam_EmptyImageURLMeansAbsent(t *testing.T) {
	team, err := NewTeam("Team Beta", "", 0)
	require.NoError(t, err)

	assert.Nil(t, team.ImageURL)
}

func TestNewTeam_TrimsName(t *testing.T) {
	team, err := NewTeam("  Team Gamma  ", "", 10)
	require.NoError(t, err)

	assert.Equal(t, "Team Gamma", team.Name)
}

// TestNewTeam_EmptyName verifies that a whitespace-only name fails eagerly
// with a FieldError naming the "name" field.
func TestNewTeam_EmptyName(t *testing.T) {
	_, err := NewTeam("   ", "", 10)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "name", fieldErr.Field)
}

func TestNewTeam_NegativeTotalRaised(t *testing.T) {
	_, err := NewTeam("Team Delta", "", -0.01)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "total_raised", fieldErr.Field)
}

// ─────────────────────────────────────────────
// NewCampaignConfig / Validate
// ─────────────────────────────────────────────

func TestNewCampaignConfig_Valid(t *testing.T) {
	team, err := NewTeam("Team Alpha", "", 100)
	require.NoError(t, err)

	cfg, err := NewCampaignConfig("CARE", "Donation Drive", 10000, []Team{team})
	require.NoError(t, err)

	assert.Equal(t, "CARE", cfg.OrganizationName)
	assert.Equal(t, "Donation Drive", cfg.Title)
	assert.Equal(t, 10000.0, cfg.Goal)
	assert.Len(t, cfg.Teams, 1)
	assert.NotEmpty(t, cfg.LastUpdated)
}

func TestNewCampaignConfig_NegativeGoal(t *testing.T) {
	_, err := NewCampaignConfig("CARE", "Donation Drive", -5, nil)
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "goal", fieldErr.Field)
}

// TestValidate_NamesOffendingTeamField verifies that a deserialized config
// with an invalid team entry reports the field qualified by team index.
func TestValidate_NamesOffendingTeamField(t *testing.T) {
	cfg := CampaignConfig{
		Title: "Drive",
		Goal:  100,
		Teams: []Team{
			{Name: "ok", TotalRaised: 1},
			{Name: "bad", TotalRaised: -1},
		},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "teams[1].total_raised", fieldErr.Field)
}

func TestValidate_EmptyTeamName(t *testing.T) {
	cfg := CampaignConfig{
		Teams: []Team{{Name: "  ", TotalRaised: 1}},
	}

	err := cfg.Validate()
	require.Error(t, err)

	var fieldErr *FieldError
	require.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "teams[0].name", fieldErr.Field)
}

// ─────────────────────────────────────────────
// Clone
// ─────────────────────────────────────────────

// TestClone_DoesNotAliasTeams verifies that mutating a clone's team list
// never leaks into the original.
func TestClone_DoesNotAliasTeams(t *testing.T) {
	original := CampaignConfig{
		Teams: []Team{{Name: "Team Alpha", TotalRaised: 100}},
	}

	clone := original.Clone()
	clone.Teams[0].TotalRaised = 999

	assert.Equal(t, 100.0, original.Teams[0].TotalRaised)
}

// ─────────────────────────────────────────────
// Aggregations
// ─────────────────────────────────────────────

func TestTotalRaised_SumsTeams(t *testing.T) {
	cfg := CampaignConfig{
		Teams: []Team{
			{Name: "a", TotalRaised: 100.0},
			{Name: "b", TotalRaised: 50.25},
		},
	}

	assert.InDelta(t, 150.25, TotalRaised(cfg), 1e-9)
}

func TestTotalRaised_EmptyTeams(t *testing.T) {
	assert.Zero(t, TotalRaised(CampaignConfig{}))
}

// TestPercentOfGoal_ZeroGoal verifies the division-by-zero rule: a zero
// goal always yields 0 percent, whatever the teams hold.
func TestPercentOfGoal_ZeroGoal(t *testing.T) {
	cfg := CampaignConfig{
		Goal:  0,
		Teams: []Team{{Name: "a", TotalRaised: 500}},
	}

	assert.Zero(t, PercentOfGoal(cfg))
}

func TestPercentOfGoal_Partial(t *testing.T) {
	cfg := CampaignConfig{
		Goal:  200,
		Teams: []Team{{Name: "a", TotalRaised: 50}},
	}

	assert.InDelta(t, 25.0, PercentOfGoal(cfg), 1e-9)
}

func TestPercentOfGoal_CappedAtHundred(t *testing.T) {
	cfg := CampaignConfig{
		Goal:  100,
		Teams: []Team{{Name: "a", TotalRaised: 250}},
	}

	assert.Equal(t, 100.0, PercentOfGoal(cfg))
}

// ─────────────────────────────────────────────
// Defaults
// ─────────────────────────────────────────────

func TestDefaultCampaignConfig(t *testing.T) {
	cfg := DefaultCampaignConfig("Community Animal Rescue Effort")

	assert.Equal(t, "Community Animal Rescue Effort", cfg.OrganizationName)
	assert.Empty(t, cfg.Title)
	assert.Zero(t, cfg.Goal)
	require.NotNil(t, cfg.Teams)
	assert.Empty(t, cfg.Teams)

	ts, err := time.Parse(time.RFC3339, cfg.LastUpdated)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().UTC(), ts, time.Minute)
}
