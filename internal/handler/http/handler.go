package http

import (
	"github.com/MKhiriev/donation-thermometer/internal/config"
	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/service"
)

type Handler struct {
	services *service.Services

	// editKey is the shared admin secret checked by the auth middleware.
	editKey string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		editKey:  cfg.EditKey,
		logger:   logger,
	}
}
