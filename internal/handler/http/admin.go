package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/donation-thermometer/internal/ingest"
	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/utils"
	"github.com/MKhiriev/donation-thermometer/models"
)

// uploadCSV handles POST /admin/upload: a multipart form whose "file" field
// carries a teams CSV. The upload is parsed and validated in full before
// anything touches the store, so a rejected file leaves the current record
// exactly as it was.
func (h *Handler) uploadCSV(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	file, _, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("no file in upload request")
		writeError(w, "no file uploaded", http.StatusBadRequest)
		return
	}
	defer file.Close()

	teams, err := ingest.ParseTeams(file)
	if err != nil {
		log.Err(err).Msg("CSV upload rejected")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	config, err := h.services.CampaignService.ReplaceTeams(ctx, teams)
	if err != nil {
		log.Err(err).Msg("committing uploaded teams failed")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{
		Message: "CSV uploaded successfully",
		Config:  config,
	}, http.StatusOK)
}

// updateConfig handles POST /admin/config: a JSON body matching the
// CampaignConfig shape replaces the stored record wholesale. Whatever
// last_updated the body carries is discarded; the timestamp is stamped
// server-side at commit.
func (h *Handler) updateConfig(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var config models.CampaignConfig
	if err := json.NewDecoder(r.Body).Decode(&config); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		writeError(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	committed, err := h.services.CampaignService.ReplaceConfig(ctx, config)
	if err != nil {
		log.Err(err).Msg("config update rejected")
		writeError(w, err.Error(), statusFromError(err))
		return
	}

	_, _ = utils.WriteJSON(w, models.SuccessResponse{
		Message: "Configuration updated successfully",
		Config:  committed,
	}, http.StatusOK)
}
