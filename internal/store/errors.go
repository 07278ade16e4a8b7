package store

import "errors"

// Sentinel errors returned by [BlobStore] implementations. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrBlobNotFound is returned by Read and Delete when no blob with the
	// requested name exists.
	ErrBlobNotFound = errors.New("note was not found")

	// ErrBlobIO wraps any failure of the underlying storage (disk, database).
	// Operations are single-attempt; nothing is retried.
	ErrBlobIO = errors.New("storage i/o error")

	// ErrUnsafeName is returned for names that are empty or would escape the
	// flat namespace (path separators, "..", NUL bytes).
	ErrUnsafeName = errors.New("unsafe note name")

	// ErrUnknownDriver is returned by NewStorages for an unsupported SQL driver.
	ErrUnknownDriver = errors.New("unknown database driver")
)
