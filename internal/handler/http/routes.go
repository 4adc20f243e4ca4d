package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// maxRequestBody caps upload size at 10 MiB. A full CSV of a realistic
// campaign is a few kilobytes; anything near the limit is not a campaign.
const maxRequestBody = 10 << 20

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(middleware.RequestSize(maxRequestBody))
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// public routes
	router.Group(func(r chi.Router) {
		r.Get("/health", h.health)
		r.Get("/config", h.getConfig)
		r.Get("/config/summary", h.getSummary)
		r.Get("/admin/sample-csv", h.sampleCSV)
	})

	// admin routes behind the edit key
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/admin/upload", h.uploadCSV)
		r.Post("/admin/config", h.updateConfig)
	})

	return router
}
