// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownKeyKind is returned when decoding a kind name that does not exist.
var ErrUnknownKeyKind = errors.New("unknown key kind")

// KeyKind is the shape of the metadata encoded into a note's filename.
type KeyKind int

const (
	// SingleDate is a note bound to one calendar date, e.g. "2025-01-15.txt".
	SingleDate KeyKind = iota + 1

	// DateRange is a note spanning an inclusive date range,
	// e.g. "2025-01-01_to_2025-01-07.txt".
	DateRange

	// FreeText is a note whose filename is sanitized user text.
	FreeText

	// Untitled is the fallback used when neither a date nor text is supplied.
	// It is encoded as today's date and therefore decodes back as SingleDate.
	Untitled
)

// String returns the lowercase name of the kind. Used by templates and JSON.
func (k KeyKind) String() string {
	switch k {
	case SingleDate:
		return "date"
	case DateRange:
		return "range"
	case FreeText:
		return "text"
	case Untitled:
		return "untitled"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k KeyKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. "unknown" decodes to
// the zero kind.
func (k *KeyKind) UnmarshalText(text []byte) error {
	switch string(text) {
	case "date":
		*k = SingleDate
	case "range":
		*k = DateRange
	case "text":
		*k = FreeText
	case "untitled":
		*k = Untitled
	case "unknown":
		*k = 0
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKeyKind, text)
	}
	return nil
}

// NoteKey is the logical identity of a note. Only the fields relevant to
// Kind are populated; Text is optional on SingleDate and DateRange.
type NoteKey struct {
	Kind KeyKind `json:"kind"`

	// Date is set for SingleDate and Untitled, in YYYY-MM-DD form.
	Date string `json:"date,omitempty"`

	// From and To are set for DateRange, in YYYY-MM-DD form.
	From string `json:"from,omitempty"`
	To   string `json:"to,omitempty"`

	// Text is the already sanitized free-text part of the name.
	Text string `json:"text,omitempty"`
}

// IsDated reports whether the key carries at least one date.
func (k NoteKey) IsDated() bool {
	switch k.Kind {
	case SingleDate, Untitled:
		return k.Date != ""
	case DateRange:
		return k.From != "" && k.To != ""
	default:
		return false
	}
}

// NoteMeta is one entry of the note index: the stored name, its decoded key
// and the storage modification time.
type NoteMeta struct {
	Name       string    `json:"name"`
	Key        NoteKey   `json:"key"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Note is a single note together with its full body.
type Note struct {
	NoteMeta
	Body string `json:"body"`
}
