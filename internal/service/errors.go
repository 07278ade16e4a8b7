package service

import "errors"

var (
	// ErrNoteNotFound is returned for names that do not exist or are not
	// notes under the active edition.
	ErrNoteNotFound = errors.New("note not found")

	// ErrDeleteNotSupported is returned by Delete in the free-text edition.
	ErrDeleteNotSupported = errors.New("deleting notes is not supported in this edition")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
