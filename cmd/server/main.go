package main

import (
	"fmt"

	"github.com/MKhiriev/qryptshare/internal/config"
	"github.com/MKhiriev/qryptshare/internal/handler"
	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/server"
	"github.com/MKhiriev/qryptshare/internal/service"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("qry-share-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	// exports are streamed to the caller, nothing is written on the server
	services, err := service.NewServices(nil, cfg.App, cfg.Export, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Fatal().Err(err).Msg("server stopped with error")
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
