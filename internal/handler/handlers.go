package handler

import (
	"github.com/MKhiriev/donation-thermometer/internal/config"
	"github.com/MKhiriev/donation-thermometer/internal/handler/http"
	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.App, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}

	return handlers, nil
}
