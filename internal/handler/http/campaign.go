package http

import (
	"net/http"

	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/utils"
)

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}

func (h *Handler) getConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	config, err := h.services.CampaignService.GetConfig(ctx)
	if err != nil {
		log.Err(err).Msg("loading config failed")
		writeError(w, "failed to load configuration", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, config, http.StatusOK)
}

func (h *Handler) getSummary(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	summary, err := h.services.CampaignService.Summary(ctx)
	if err != nil {
		log.Err(err).Msg("loading summary failed")
		writeError(w, "failed to load configuration", statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, summary, http.StatusOK)
}

// sampleCSV serves a canned teams file so admins can see the expected
// upload format without reading docs.
const sampleTeamsCSV = `name,image_url,total_raised
Team Alpha,https://example.com/alpha.jpg,2500.00
Team Beta,https://example.com/beta.jpg,3200.50
Team Gamma,,1800.00
PUP ALL NIGHT: THE PM PACK,,6987.00
UnderDogs,https://example.com/underdogs.png,5010.00
Hairball Wizards,,4101.25
`

func (h *Handler) sampleCSV(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="sample-teams.csv"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(sampleTeamsCSV))
}
