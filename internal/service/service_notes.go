// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/work-notes/internal/codec"
	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/index"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/query"
	"github.com/MKhiriev/work-notes/internal/store"
	"github.com/MKhiriev/work-notes/models"
)

// noteService implements NoteService on top of a BlobStore. It keeps no
// state between calls: every listing is recomputed from storage.
//
// Two saves that resolve to the same name race in the store and the later
// one wins. In the free-text edition this includes distinct raw texts that
// sanitize to the same string; Save reports the overwrite but does not
// prevent it.
type noteService struct {
	blobs  store.BlobStore
	codec  codec.Codec
	index  *index.Index
	engine *query.Engine
	now    func() time.Time

	logger *logger.Logger
}

func NewNoteService(blobs store.BlobStore, cfg config.App, logger *logger.Logger) (NoteService, error) {
	c, err := codec.New(cfg.Variant)
	if err != nil {
		return nil, fmt.Errorf("error creating note service: %w", err)
	}

	return &noteService{
		blobs:  blobs,
		codec:  c,
		index:  index.New(blobs, c, logger),
		engine: query.NewEngine(cfg.PageSize),
		now:    time.Now,
		logger: logger,
	}, nil
}

func (s *noteService) Save(ctx context.Context, req models.SaveRequest) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	now := s.now()
	key, err := s.codec.BuildKey(req, now)
	if err != nil {
		log.Debug().Err(err).Str("func", "*noteService.Save").Msg("rejected note input")
		return failed(err.Error()), err
	}
	name := codec.Encode(key, now)

	existed, err := s.blobs.Exists(ctx, name)
	if err != nil {
		log.Err(err).Str("func", "*noteService.Save").Str("name", name).Msg("error checking note existence")
		return failed(fmt.Sprintf("Error saving note: %v", err)), err
	}

	return s.write(ctx, name, req.Body, existed, "*noteService.Save")
}

func (s *noteService) Update(ctx context.Context, name string, body string) (models.SaveResult, error) {
	if _, ok := s.index.Lookup(name); !ok {
		return failed(ErrNoteNotFound.Error()), ErrNoteNotFound
	}

	exists, err := s.blobs.Exists(ctx, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Update").Str("name", name).Msg("error checking note existence")
		return failed(fmt.Sprintf("Error saving note: %v", err)), err
	}
	if !exists {
		return failed(ErrNoteNotFound.Error()), ErrNoteNotFound
	}

	return s.write(ctx, name, body, true, "*noteService.Update")
}

// write stores body under name. existed only changes the reported result.
func (s *noteService) write(ctx context.Context, name, body string, existed bool, fn string) (models.SaveResult, error) {
	log := logger.FromContext(ctx)

	if err := s.blobs.Write(ctx, name, []byte(body)); err != nil {
		log.Err(err).Str("func", fn).Str("name", name).Msg("error writing note")
		return failed(fmt.Sprintf("Error saving note: %v", err)), err
	}

	log.Info().Str("func", fn).Str("name", name).Bool("overwritten", existed).Msg("note saved")

	msg := "Saved " + name
	if existed {
		msg = "Saved " + name + " (replaced the existing note)"
	}
	return models.SaveResult{
		Status:      models.StatusOK,
		Message:     msg,
		Name:        name,
		Overwritten: existed,
	}, nil
}

func (s *noteService) Get(ctx context.Context, name string) (models.Note, error) {
	meta, ok := s.index.Lookup(name)
	if !ok {
		return models.Note{}, ErrNoteNotFound
	}

	body, err := s.index.ReadBody(ctx, name)
	if err != nil {
		if errors.Is(err, index.ErrNotFound) {
			return models.Note{}, ErrNoteNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Get").Str("name", name).Msg("error reading note")
		return models.Note{}, err
	}

	return models.Note{NoteMeta: meta, Body: body}, nil
}

func (s *noteService) Delete(ctx context.Context, name string) error {
	if s.codec.Variant() != codec.VariantStrict {
		return ErrDeleteNotSupported
	}
	if _, ok := s.index.Lookup(name); !ok {
		return ErrNoteNotFound
	}

	if err := s.blobs.Delete(ctx, name); err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			return ErrNoteNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*noteService.Delete").Str("name", name).Msg("error deleting note")
		return err
	}

	logger.FromContext(ctx).Info().Str("func", "*noteService.Delete").Str("name", name).Msg("note deleted")
	return nil
}

func (s *noteService) Query(ctx context.Context, params models.QueryParams) (models.Page, error) {
	notes, err := s.index.ListAll(ctx)
	if err != nil {
		return models.Page{}, err
	}

	filters := query.Filters{Search: params.Search, From: params.From, To: params.To}
	return s.engine.Run(ctx, notes, filters, params.Page, s.loadBody)
}

func (s *noteService) List(ctx context.Context) ([]models.NoteMeta, error) {
	return s.index.ListAll(ctx)
}

// loadBody treats a note deleted between listing and reading as empty.
func (s *noteService) loadBody(ctx context.Context, name string) (string, error) {
	body, err := s.index.ReadBody(ctx, name)
	if errors.Is(err, index.ErrNotFound) {
		return "", nil
	}
	return body, err
}

func failed(msg string) models.SaveResult {
	return models.SaveResult{Status: models.StatusError, Message: msg}
}
