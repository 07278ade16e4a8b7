package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/work-notes/internal/validators"
	"github.com/MKhiriev/work-notes/models"
)

// NoteValidationService rejects malformed input before it reaches the
// wrapped NoteService, so no storage call happens for it.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() (NoteServiceWrapper, error) {
	v, err := validators.NewNoteValidator()
	if err != nil {
		return nil, fmt.Errorf("error creating note validator: %w", err)
	}

	return &NoteValidationService{
		validator: v,
	}, nil
}

func (v *NoteValidationService) Save(ctx context.Context, req models.SaveRequest) (models.SaveResult, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return failed(err.Error()), err
	}

	return v.inner.Save(ctx, req)
}

func (v *NoteValidationService) Update(ctx context.Context, name string, body string) (models.SaveResult, error) {
	if err := v.validateName(ctx, name); err != nil {
		return failed(err.Error()), err
	}

	return v.inner.Update(ctx, name, body)
}

func (v *NoteValidationService) Get(ctx context.Context, name string) (models.Note, error) {
	if err := v.validateName(ctx, name); err != nil {
		return models.Note{}, err
	}

	return v.inner.Get(ctx, name)
}

func (v *NoteValidationService) Delete(ctx context.Context, name string) error {
	if err := v.validateName(ctx, name); err != nil {
		return err
	}

	return v.inner.Delete(ctx, name)
}

// Query is not validated: malformed date bounds are dropped by the query
// engine rather than rejected.
func (v *NoteValidationService) Query(ctx context.Context, params models.QueryParams) (models.Page, error) {
	return v.inner.Query(ctx, params)
}

func (v *NoteValidationService) List(ctx context.Context) ([]models.NoteMeta, error) {
	return v.inner.List(ctx)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

// validateName reports a name that can never be a note as not found.
func (v *NoteValidationService) validateName(ctx context.Context, name string) error {
	err := v.validator.Validate(ctx, name, validators.FieldNoteName)
	if errors.Is(err, validators.ErrInvalidNoteName) {
		return fmt.Errorf("%w: %w", ErrNoteNotFound, err)
	}
	return err
}
