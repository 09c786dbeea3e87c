package main

import (
	"fmt"

	"github.com/MKhiriev/go-contact-share/internal/adapter"
	"github.com/MKhiriev/go-contact-share/internal/client"
	"github.com/MKhiriev/go-contact-share/internal/config"
	"github.com/MKhiriev/go-contact-share/internal/logger"
	"github.com/MKhiriev/go-contact-share/internal/service"
	"github.com/MKhiriev/go-contact-share/internal/store"
	"github.com/MKhiriev/go-contact-share/internal/tui"
	"github.com/MKhiriev/go-contact-share/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("go-contact-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	recordStore, err := adapter.NewHTTPRecordStore(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create record store adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, recordStore, cfg.App, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
