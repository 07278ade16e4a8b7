package service

import (
	"fmt"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/store"
)

type Services struct {
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	notes, err := NewNoteService(storages.BlobStore, cfg.App, logger)
	if err != nil {
		return nil, err
	}

	validation, err := NewNoteValidationService()
	if err != nil {
		return nil, err
	}

	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	return &Services{
		NoteService:    validation.Wrap(notes),
		AppInfoService: appInfo,
	}, nil
}
