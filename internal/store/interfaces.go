// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// BlobInfo describes one stored blob without its content.
type BlobInfo struct {
	Name       string
	ModifiedAt time.Time
}

// BlobStore is a flat name → bytes namespace. Names never contain path
// separators. Writes to an existing name replace it entirely; concurrent
// writes to the same name race and the last one to complete wins.
type BlobStore interface {
	// List returns every blob whose name ends in suffix (case-insensitive).
	// The order is unspecified.
	List(ctx context.Context, suffix string) ([]BlobInfo, error)

	// Read returns the blob content or [ErrBlobNotFound].
	Read(ctx context.Context, name string) ([]byte, error)

	// Write creates or fully replaces the blob. Failures wrap [ErrBlobIO].
	Write(ctx context.Context, name string, data []byte) error

	// Delete removes the blob or returns [ErrBlobNotFound].
	Delete(ctx context.Context, name string) error

	// Exists reports whether a blob with the given name is stored.
	Exists(ctx context.Context, name string) (bool, error)
}
