package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/work-notes/internal/adapter"
	"github.com/MKhiriev/work-notes/internal/client"
	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	level := zerolog.WarnLevel
	if os.Getenv("NOTESCTL_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	log := logger.NewConsoleLogger("notesctl", os.Stderr, level)

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	app, err := client.NewApp(cfg, adapter.NewHTTPNotesAdapter, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		if hint := client.Hint(err); hint != "" {
			fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
		}
		os.Exit(1)
	}
}
