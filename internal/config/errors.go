package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// invalid. Use [errors.Is] to match them.
var (
	// ErrInvalidConfig is the fallback for fields outside any known group.
	ErrInvalidConfig = errors.New("invalid configuration")
	// ErrInvalidAppConfigs indicates an unknown variant or a page size out
	// of range.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates an unknown driver or a missing
	// notes directory.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a malformed listen address or a
	// negative timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAuthConfigs indicates that only one of user and password
	// hash was provided.
	ErrInvalidAuthConfigs = errors.New("invalid auth configuration")
	// ErrInvalidClientConfigs indicates a malformed server URL.
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
