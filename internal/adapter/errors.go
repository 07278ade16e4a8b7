package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrInternalServerError = errors.New("internal server error")

	// ErrInvalidServerURL is returned by NewHTTPNotesAdapter for an address
	// without a host.
	ErrInvalidServerURL = errors.New("invalid server url")
)
