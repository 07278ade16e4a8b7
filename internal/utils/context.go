// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for context keys, password hashing,
// HTTP response writing, HTTP client initialization and request IDs.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// UserCtxKey is the key used to store the name of the user that passed
// the basic-auth gate.
//
//	ctx := context.WithValue(ctx, utils.UserCtxKey, "alice")
var UserCtxKey = contextKey("user")

// GetUserFromContext returns the authenticated user name and whether it
// is present. An empty name is reported as missing.
func GetUserFromContext(ctx context.Context) (string, bool) {
	user, ok := ctx.Value(UserCtxKey).(string)
	return user, ok && user != ""
}
