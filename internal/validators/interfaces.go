// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks note input before it reaches the codec or the
// store. Failures are reported with the codec's sentinel errors, so a caller
// handles a rejected request the same way regardless of which layer caught it.
package validators

import "context"

// Validator validates an input value, optionally scoped to named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
