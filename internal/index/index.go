// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package index treats a [store.BlobStore] as a flat-file note index: every
// listing is recomputed from storage, decoded through the active codec and
// sorted deterministically. Nothing is cached between calls.
//
// Content search reads the body of every candidate note, one read per note
// per query. There is no inverted index; this is the system's known scaling
// limit and is acceptable for a personal notes directory.
package index

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/MKhiriev/work-notes/internal/codec"
	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/MKhiriev/work-notes/internal/store"
	"github.com/MKhiriev/work-notes/models"
)

// ErrNotFound is returned by ReadBody when the note does not exist.
var ErrNotFound = errors.New("note not found")

// Index lists and reads notes through one codec.
type Index struct {
	store  store.BlobStore
	codec  codec.Codec
	logger *logger.Logger
}

// New constructs an [Index].
func New(blobs store.BlobStore, c codec.Codec, logger *logger.Logger) *Index {
	return &Index{
		store:  blobs,
		codec:  c,
		logger: logger,
	}
}

// Codec returns the codec the index decodes names with.
func (i *Index) Codec() codec.Codec {
	return i.codec
}

// ListAll returns every stored note the codec accepts, sorted:
//   - strict edition: by decoded date, newest first;
//   - free-text edition: by modification time, newest first.
//
// Ties are broken by name ascending so that the order is total.
func (i *Index) ListAll(ctx context.Context) ([]models.NoteMeta, error) {
	blobs, err := i.store.List(ctx, codec.Suffix)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*Index.ListAll").Msg("error listing notes")
		return nil, fmt.Errorf("list notes: %w", err)
	}

	notes := make([]models.NoteMeta, 0, len(blobs))
	skipped := 0
	for _, b := range blobs {
		key, ok := i.codec.Decode(b.Name)
		if !ok {
			skipped++
			continue
		}
		notes = append(notes, models.NoteMeta{
			Name:       b.Name,
			Key:        key,
			ModifiedAt: b.ModifiedAt,
		})
	}
	if skipped > 0 {
		logger.FromContext(ctx).Debug().Str("func", "*Index.ListAll").Int("skipped", skipped).Msg("ignored names that are not notes")
	}

	if i.codec.Variant() == codec.VariantStrict {
		sortByDate(notes)
	} else {
		sortByModified(notes)
	}
	return notes, nil
}

// Lookup decodes name and returns its metadata without reading the body.
// ok is false when the codec does not accept the name.
func (i *Index) Lookup(name string) (models.NoteMeta, bool) {
	key, ok := i.codec.Decode(name)
	if !ok {
		return models.NoteMeta{}, false
	}
	return models.NoteMeta{Name: name, Key: key}, true
}

// ReadBody returns the stored body of the named note verbatim.
func (i *Index) ReadBody(ctx context.Context, name string) (string, error) {
	data, err := i.store.Read(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrBlobNotFound) {
			return "", ErrNotFound
		}
		return "", fmt.Errorf("read note %s: %w", name, err)
	}
	return string(data), nil
}

func sortByDate(notes []models.NoteMeta) {
	sort.SliceStable(notes, func(a, b int) bool {
		da, db := sortDate(notes[a].Key), sortDate(notes[b].Key)
		if da != db {
			return da > db
		}
		return notes[a].Name < notes[b].Name
	})
}

func sortByModified(notes []models.NoteMeta) {
	sort.SliceStable(notes, func(a, b int) bool {
		ta, tb := notes[a].ModifiedAt, notes[b].ModifiedAt
		if !ta.Equal(tb) {
			return ta.After(tb)
		}
		return notes[a].Name < notes[b].Name
	})
}

// sortDate is the date a key is ordered by: its date, or the start of its range.
func sortDate(k models.NoteKey) string {
	if k.Kind == models.DateRange {
		return k.From
	}
	return k.Date
}
