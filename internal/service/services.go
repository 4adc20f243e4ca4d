package service

import (
	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/store"
)

type Services struct {
	CampaignService CampaignService
}

func NewServices(storages *store.Storages, logger *logger.Logger) *Services {
	return &Services{
		CampaignService: NewCampaignService(storages.Config, logger),
	}
}
