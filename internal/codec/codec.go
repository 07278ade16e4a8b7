// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package codec converts a note's logical key to and from the flat filename
// that identifies it in storage.
//
// Two editions exist and are selected at startup:
//   - strict: exactly one note per calendar date, "YYYY-MM-DD.txt";
//   - freetext: dates, date ranges and sanitized free text, e.g.
//     "2025-01-01_to_2025-01-07_sprint.txt" or "groceries.txt".
//
// Decoding is best-effort. Sanitization is not inverted, so two raw texts that
// sanitize to the same string share one filename and the later write wins.
package codec

import (
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/work-notes/models"
)

// Suffix is the extension every note filename carries.
const Suffix = ".txt"

// DateLayout is the only accepted date format (ISO 8601 calendar date).
const DateLayout = "2006-01-02"

const rangeSeparator = "_to_"

// Variant names accepted in configuration.
const (
	VariantStrict   = "strict"
	VariantFreeText = "freetext"
)

var (
	unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_-]`)
	whitespace  = regexp.MustCompile(`\s+`)

	strictName = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})\.txt$`)
	rangeName  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})_to_(\d{4}-\d{2}-\d{2})(?:_(.+))?$`)
	datedName  = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2})(?:_(.+))?$`)
)

// Codec decodes stored names into keys and builds keys from user input
// according to one edition's rules.
type Codec interface {
	// Variant returns the configured edition name.
	Variant() string

	// BuildKey validates raw input and turns it into a key.
	BuildKey(req models.SaveRequest, today time.Time) (models.NoteKey, error)

	// Decode parses a stored name. ok is false when the name is not a note
	// under this edition's rules.
	Decode(name string) (key models.NoteKey, ok bool)
}

// New returns the codec for the given variant name.
func New(variant string) (Codec, error) {
	switch variant {
	case VariantStrict:
		return NewStrictCodec(), nil
	case VariantFreeText, "":
		return NewFreeTextCodec(), nil
	default:
		return nil, ErrUnknownVariant
	}
}

// Sanitize trims s, collapses whitespace runs into single underscores and
// strips every character outside [A-Za-z0-9_-]. Sanitize is idempotent.
func Sanitize(s string) string {
	s = strings.TrimSpace(s)
	s = whitespace.ReplaceAllString(s, "_")
	return unsafeChars.ReplaceAllString(s, "")
}

// ValidateDate returns ErrInvalidDate unless s is a real YYYY-MM-DD date.
func ValidateDate(s string) error {
	if _, err := time.Parse(DateLayout, s); err != nil {
		return ErrInvalidDate
	}
	return nil
}

// Today formats t as a note date.
func Today(t time.Time) string {
	return t.Format(DateLayout)
}

// Encode returns the canonical filename of key. Untitled keys without a date
// are stamped with today.
func Encode(key models.NoteKey, today time.Time) string {
	var base string
	switch key.Kind {
	case models.DateRange:
		base = key.From + rangeSeparator + key.To
		if key.Text != "" {
			base += "_" + key.Text
		}
	case models.SingleDate:
		base = key.Date
		if key.Text != "" {
			base += "_" + key.Text
		}
	case models.FreeText:
		base = key.Text
	default:
		base = key.Date
		if base == "" {
			base = Today(today)
		}
	}
	return base + Suffix
}

// KeyString is the display and search form of a key: its filename stem.
func KeyString(key models.NoteKey) string {
	return strings.TrimSuffix(Encode(key, time.Time{}), Suffix)
}

// HasSuffix reports whether name ends in the note suffix, ignoring case.
func HasSuffix(name string) bool {
	return len(name) >= len(Suffix) && strings.EqualFold(name[len(name)-len(Suffix):], Suffix)
}

// validateInput applies the checks shared by both editions, in the order the
// web form reports them: range start, each date, then range order.
func validateInput(req models.SaveRequest) error {
	if req.To != "" && req.From == "" {
		return ErrMissingRangeStart
	}
	for _, d := range []string{req.Date, req.From, req.To} {
		if d == "" {
			continue
		}
		if err := ValidateDate(d); err != nil {
			return err
		}
	}
	if req.From != "" && req.To != "" && req.To < req.From {
		return ErrInvertedRange
	}
	return nil
}

func trimRequest(req models.SaveRequest) models.SaveRequest {
	req.Date = strings.TrimSpace(req.Date)
	req.From = strings.TrimSpace(req.From)
	req.To = strings.TrimSpace(req.To)
	req.Text = strings.TrimSpace(req.Text)
	return req
}
