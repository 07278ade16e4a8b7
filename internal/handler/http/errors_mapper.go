package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/work-notes/internal/codec"
	"github.com/MKhiriev/work-notes/internal/service"
	"github.com/MKhiriev/work-notes/internal/store"
	"github.com/MKhiriev/work-notes/internal/validators"
)

// errorStatuses is checked in order; a rejected note name wraps both
// ErrNoteNotFound and ErrInvalidNoteName and must map to 404.
var errorStatuses = []struct {
	err    error
	status int
}{
	{service.ErrNoteNotFound, http.StatusNotFound},
	{service.ErrDeleteNotSupported, http.StatusForbidden},

	{codec.ErrInvalidDate, http.StatusBadRequest},
	{codec.ErrMissingRangeStart, http.StatusBadRequest},
	{codec.ErrInvertedRange, http.StatusBadRequest},
	{codec.ErrUnsupportedKey, http.StatusBadRequest},

	{validators.ErrInvalidField, http.StatusBadRequest},
	{validators.ErrInvalidNoteName, http.StatusBadRequest},

	{store.ErrBlobNotFound, http.StatusNotFound},
	{store.ErrUnsafeName, http.StatusBadRequest},
	{store.ErrBlobIO, http.StatusInternalServerError},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidForm, http.StatusBadRequest},
	{ErrInvalidCredentials, http.StatusUnauthorized},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError hides internal failure details from the client.
func messageFromError(err error) string {
	if statusFromError(err) == http.StatusInternalServerError {
		return http.StatusText(http.StatusInternalServerError)
	}
	return err.Error()
}
