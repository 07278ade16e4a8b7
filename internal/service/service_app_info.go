package service

import (
	"context"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/models"
)

// appInfoService reports the running version and note edition. Both are
// fixed at start-up.
type appInfoService struct {
	info models.AppInfo

	logger *logger.Logger
}

// NewAppInfoService requires a version; an empty variant falls back to the
// free-text edition, matching the config default.
func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	variant := cfg.Variant
	if variant == "" {
		variant = config.VariantFreeText
	}

	return &appInfoService{
		info:   models.AppInfo{Version: cfg.Version, Variant: variant},
		logger: logger,
	}, nil
}

func (s *appInfoService) GetAppInfo(_ context.Context) models.AppInfo {
	return s.info
}
