package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/handler"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/server"
	"github.com/MKhiriev/go-photo-catalog/internal/service"
	"github.com/MKhiriev/go-photo-catalog/internal/store"
	"github.com/MKhiriev/go-photo-catalog/internal/utils"
	"github.com/MKhiriev/go-photo-catalog/internal/workers"
	"github.com/MKhiriev/go-photo-catalog/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo)

	log := logger.NewLogger("go-photo-catalog-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" {
		cfg.App.Version = buildVersion
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	if cfg.App.HashKey != "" {
		utils.InitHasherPool(cfg.App.HashKey)
	}

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	tracker := workers.NewJobTracker(cfg.Workers, log)
	background := workers.NewWorkers(tracker)
	background.Run()
	defer background.Shutdown()

	foreignServers := adapter.NewHTTPForeignServerFactory(cfg.Adapter, cfg.App, log)

	services, err := service.NewServices(storages, tracker, foreignServers, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating services")
		return
	}

	handlers, err := handler.NewHandlers(services, foreignServers, *cfg, log)
	if err != nil {
		log.Err(err).Msg("error creating handlers")
		return
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Err(err).Msg("error creating server")
		return
	}

	srv.RunServer()
}
