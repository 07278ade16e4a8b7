package handler

import (
	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/handler/http"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &Handlers{HTTP: httpHandler}, nil
}
