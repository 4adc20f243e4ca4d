package models

// ErrorResponse is the JSON envelope returned for every failed request.
type ErrorResponse struct {
	// Error is a human-readable description of what went wrong.
	Error string `json:"error"`
}

// SuccessResponse is the JSON envelope returned after a successful admin
// mutation. It echoes the committed configuration so the admin UI can
// refresh without a second request.
type SuccessResponse struct {
	// Message is a short confirmation of the applied operation.
	Message string `json:"message"`

	// Config is the configuration as committed, including the refreshed
	// last_updated timestamp.
	Config CampaignConfig `json:"config"`
}

// CampaignSummary is the derived public view of a campaign: aggregate
// progress numbers without the full team list.
type CampaignSummary struct {
	OrganizationName string  `json:"organization_name"`
	Title            string  `json:"title"`
	Goal             float64 `json:"goal"`
	TotalRaised      float64 `json:"total_raised"`
	PercentOfGoal    float64 `json:"percent_of_goal"`
	TeamCount        int     `json:"team_count"`
	LastUpdated      string  `json:"last_updated"`
}
