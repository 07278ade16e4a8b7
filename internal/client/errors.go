// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/work-notes/internal/adapter"
)

var (
	ErrNilConfig         = errors.New("nil client config")
	ErrNilAdapterFactory = errors.New("nil adapter factory")

	// ErrNoteNotSaved is returned by the save command when the server
	// answered with an error status.
	ErrNoteNotSaved = errors.New("note was not saved")
)

// Hint returns a short suggestion for an error returned by a command, or an
// empty string when there is nothing useful to add.
func Hint(err error) string {
	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "check CLIENT_USER and CLIENT_PASSWORD"
	case errors.Is(err, adapter.ErrForbidden):
		return "the server runs the freetext edition, which does not delete notes"
	case errors.Is(err, adapter.ErrInvalidServerURL):
		return "set CLIENT_SERVER_URL or pass --server"
	default:
		return ""
	}
}
