// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the notesctl side of the work-notes JSON API.
//
// [NotesAdapter] hides the transport from the command layer. Status codes
// returned by the server are mapped back to the sentinel errors in errors.go
// by mapHTTPError so that callers can use [errors.Is] (e.g. [ErrNotFound]
// for 404, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/work-notes/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/notes_adapter_mock.go -package=mock

// NotesAdapter talks to a running work-notes server.
type NotesAdapter interface {
	// List returns one page of notes filtered by params.
	List(ctx context.Context, params models.QueryParams) (models.Page, error)

	// Get returns a note with its body.
	Get(ctx context.Context, name string) (models.Note, error)

	// Save creates a note or replaces the note with the same name.
	Save(ctx context.Context, req models.SaveRequest) (models.SaveResult, error)

	// Delete removes a note. The free-text edition answers ErrForbidden.
	Delete(ctx context.Context, name string) error

	// Download returns the raw attachment bytes and the file name suggested
	// by the server.
	Download(ctx context.Context, name string) ([]byte, string, error)

	// Version reports the server version and note edition.
	Version(ctx context.Context) (models.AppInfo, error)
}
