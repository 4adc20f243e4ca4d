package main

import (
	"fmt"

	"github.com/MKhiriev/donation-thermometer/internal/config"
	"github.com/MKhiriev/donation-thermometer/internal/handler"
	"github.com/MKhiriev/donation-thermometer/internal/logger"
	"github.com/MKhiriev/donation-thermometer/internal/server"
	"github.com/MKhiriev/donation-thermometer/internal/service"
	"github.com/MKhiriev/donation-thermometer/internal/store"
	"github.com/MKhiriev/donation-thermometer/internal/utils"
	"github.com/joho/godotenv"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("thermometer-server")

	// optional .env for local development; env vars set by the platform win
	if err := godotenv.Load(); err == nil {
		log.Debug().Msg("loaded .env file")
	}

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// The admin surface must never be open: when no edit key is
	// configured, generate one and tell the operator where to find it.
	if cfg.App.EditKey == "" {
		cfg.App.EditKey = utils.NewUUIDGenerator().Generate()
		log.Warn().Str("edit_key", cfg.App.EditKey).Msg("APP_EDIT_KEY not set, generated new key")
	}

	storages, err := store.NewStorages(cfg.Storage, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, log)

	handlers, err := handler.NewHandlers(services, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
