package service

import (
	"context"

	"github.com/MKhiriev/work-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=NoteServiceWrapper

// NoteService is the write, read and query surface consumed by the HTTP layer.
type NoteService interface {
	// Save builds the note name from req and writes req.Body under it,
	// replacing any existing note with the same name. The returned result is
	// meaningful even when err is not nil.
	Save(ctx context.Context, req models.SaveRequest) (models.SaveResult, error)

	// Update replaces the body of an existing note, keeping its name.
	Update(ctx context.Context, name string, body string) (models.SaveResult, error)

	Get(ctx context.Context, name string) (models.Note, error)

	// Delete removes a note. Only the strict edition supports it.
	Delete(ctx context.Context, name string) error

	Query(ctx context.Context, params models.QueryParams) (models.Page, error)
	List(ctx context.Context) ([]models.NoteMeta, error)
}

type AppInfoService interface {
	GetAppInfo(ctx context.Context) models.AppInfo
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// validation.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
