package main

import (
	"fmt"

	"github.com/MKhiriev/qryptshare/internal/client"
	"github.com/MKhiriev/qryptshare/internal/config"
	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/service"
	"github.com/MKhiriev/qryptshare/internal/store"
	"github.com/MKhiriev/qryptshare/internal/tui"
	"github.com/MKhiriev/qryptshare/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("qry-share-client", "")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	services, err := service.NewServices(store.NewStorages(cfg.Export), cfg.App, cfg.Export, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	buildInfo := models.NewAppBuildInfo(cfg.App.ProductName, buildVersion, buildDate, buildCommit)
	ui, err := tui.New(services, cfg.Style, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
