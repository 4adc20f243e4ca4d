package models

import (
	"fmt"
	"strings"
	"time"
)

// Team represents a single fundraising sub-unit shown on the thermometer.
// Teams are held inside a CampaignConfig in upload order; the list is always
// replaced wholesale, never merged.
type Team struct {
	// Name is the team display name. Must be non-empty after trimming.
	// Uniqueness within a campaign is advisory only.
	Name string `json:"name"`

	// ImageURL is an optional link to the team image. A nil pointer means
	// "no image"; the value is treated as opaque text and is not checked
	// for reachability.
	ImageURL *string `json:"image_url"`

	// TotalRaised is the amount raised by the team. Never negative.
	TotalRaised float64 `json:"total_raised"`
}

// CampaignConfig is the singleton record describing one fundraising
// campaign's public state. Exactly one instance exists per deployment.
type CampaignConfig struct {
	// OrganizationName is the name of the fundraising organization.
	// May be empty.
	OrganizationName string `json:"organization_name"`

	// Title is the campaign display name.
	Title string `json:"title"`

	// Goal is the fundraising target amount. Never negative.
	Goal float64 `json:"goal"`

	// Teams is the ordered list of fundraising teams. Upload order is
	// preserved.
	Teams []Team `json:"teams"`

	// LastUpdated is the RFC3339 UTC timestamp of the last successful
	// write. It is server-managed: set at commit time, never accepted
	// from user input.
	LastUpdated string `json:"last_updated"`
}

// FieldError describes a validation failure on a single field of a
// CampaignConfig or Team. It is always raised before any persistence
// happens, so no downstream component ever observes an invalid record.
type FieldError struct {
	// Field is the JSON name of the offending field, qualified with the
	// team index for nested team fields (e.g. "teams[2].total_raised").
	Field string

	// Reason is a human-readable description of what was wrong.
	Reason string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("invalid field %q: %s", e.Field, e.Reason)
}

// NewTeam constructs a validated Team.
//
// name is trimmed of surrounding whitespace and must be non-empty;
// imageURL may be empty, which maps to "no image"; totalRaised must not be
// negative. Returns a *FieldError describing the first violation.
func NewTeam(name string, imageURL string, totalRaised float64) (Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Team{}, &FieldError{Field: "name", Reason: "must not be empty"}
	}
	if totalRaised < 0 {
		return Team{}, &FieldError{Field: "total_raised", Reason: "must not be negative"}
	}

	team := Team{Name: name, TotalRaised: totalRaised}
	if imageURL != "" {
		team.ImageURL = &imageURL
	}

	return team, nil
}

// NewCampaignConfig constructs a validated CampaignConfig with LastUpdated
// set to the current time. Returns a *FieldError describing the first
// violation (negative goal, or any invalid team entry).
func NewCampaignConfig(organizationName, title string, goal float64, teams []Team) (CampaignConfig, error) {
	cfg := CampaignConfig{
		OrganizationName: organizationName,
		Title:            title,
		Goal:             goal,
		Teams:            teams,
		LastUpdated:      Now(),
	}

	if err := cfg.Validate(); err != nil {
		return CampaignConfig{}, err
	}

	return cfg, nil
}

// Validate checks the invariants of a CampaignConfig that may have been
// produced outside the constructors (deserialized admin JSON or a remote
// document). Returns a *FieldError for the first violation found.
func (c *CampaignConfig) Validate() error {
	if c.Goal < 0 {
		return &FieldError{Field: "goal", Reason: "must not be negative"}
	}

	for i, team := range c.Teams {
		if strings.TrimSpace(team.Name) == "" {
			return &FieldError{
				Field:  fmt.Sprintf("teams[%d].name", i),
				Reason: "must not be empty",
			}
		}
		if team.TotalRaised < 0 {
			return &FieldError{
				Field:  fmt.Sprintf("teams[%d].total_raised", i),
				Reason: "must not be negative",
			}
		}
	}

	return nil
}

// Clone returns a deep copy of the config. The teams slice is copied so
// that mutating the clone never aliases the original.
func (c CampaignConfig) Clone() CampaignConfig {
	clone := c
	if c.Teams != nil {
		clone.Teams = make([]Team, len(c.Teams))
		copy(clone.Teams, c.Teams)
	}
	return clone
}

// TotalRaised returns the sum of TotalRaised over all teams of the config.
func TotalRaised(c CampaignConfig) float64 {
	var total float64
	for _, team := range c.Teams {
		total += team.TotalRaised
	}
	return total
}

// PercentOfGoal returns the campaign progress as a percentage of the goal,
// capped at 100. Returns 0 when the goal is 0 so that an unconfigured
// campaign never divides by zero.
func PercentOfGoal(c CampaignConfig) float64 {
	if c.Goal <= 0 {
		return 0
	}

	percent := TotalRaised(c) / c.Goal * 100.0
	if percent > 100.0 {
		percent = 100.0
	}

	return percent
}

// DefaultCampaignConfig returns the record served by an empty store:
// the configured organization name, no title, zero goal, and no teams.
func DefaultCampaignConfig(organizationName string) CampaignConfig {
	return CampaignConfig{
		OrganizationName: organizationName,
		Teams:            []Team{},
		LastUpdated:      Now(),
	}
}

// Now returns the current UTC time in the RFC3339 encoding used by
// LastUpdated and by the persisted document representation.
func Now() string {
	return time.Now().UTC().Format(time.RFC3339)
}
