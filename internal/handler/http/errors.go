// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidCredentials is returned by the basic-auth gate for a missing
	// Authorization header, an unknown user or a wrong password.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidJSON is returned by API handlers for an undecodable body.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrInvalidForm is returned by page handlers when the form body cannot be
	// parsed.
	ErrInvalidForm = errors.New("invalid form data")
)
