package main

import (
	"fmt"

	"github.com/MKhiriev/go-photo-catalog/internal/adapter"
	"github.com/MKhiriev/go-photo-catalog/internal/client"
	"github.com/MKhiriev/go-photo-catalog/internal/config"
	"github.com/MKhiriev/go-photo-catalog/internal/logger"
	"github.com/MKhiriev/go-photo-catalog/internal/tui"
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

	log := logger.NewClientLogger("go-photo-catalog-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	catalog, err := adapter.NewHTTPCatalogAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local catalog adapter")
	}

	ui, err := tui.New(catalog, cfg.Adapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(catalog, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}
