package http

import (
	"fmt"
	"time"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/service"
)

type Handler struct {
	notes   service.NoteService
	appInfo service.AppInfoService

	templates *Templates
	auth      *basicAuth

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	templates, err := ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("error parsing templates: %w", err)
	}

	auth, err := newBasicAuth(cfg.Auth)
	if err != nil {
		return nil, err
	}

	logger.Info().Bool("auth", auth != nil).Msg("http handler created")
	return &Handler{
		notes:          services.NoteService,
		appInfo:        services.AppInfoService,
		templates:      templates,
		auth:           auth,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}, nil
}
