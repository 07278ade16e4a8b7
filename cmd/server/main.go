package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/handler"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/server"
	"github.com/MKhiriev/work-notes/internal/service"
	"github.com/MKhiriev/work-notes/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("work-notes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	// A linker-injected version wins over the "dev" default.
	if buildVersion != "N/A" && cfg.App.Version == "dev" {
		cfg.App.Version = buildVersion
	}
	log.Debug().Str("variant", cfg.App.Variant).Bool("sql_storage", cfg.Storage.DB.DSN != "").Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	services, err := service.NewServices(storages, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.RunServer(); err != nil {
		log.Error().Err(err).Msg("server stopped with error")
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
