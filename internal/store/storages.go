package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/work-notes/internal/config"
	"github.com/MKhiriev/work-notes/internal/logger"
)

// Storages groups the storage backends used by the service layer.
type Storages struct {
	BlobStore BlobStore

	closer func() error
}

// NewStorages builds the blob store selected by cfg. When cfg.DB.DSN is set
// the notes live in a database table; otherwise they live as files in
// cfg.Files.NotesDir.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	if cfg.DB.DSN == "" {
		blobs, err := NewFileBlobStore(cfg.Files.NotesDir, logger)
		if err != nil {
			return nil, fmt.Errorf("file storage error: %w", err)
		}
		return &Storages{BlobStore: blobs}, nil
	}

	var (
		db  *DB
		err error
	)
	switch cfg.DB.Driver {
	case DriverSQLite, "sqlite", "":
		db, err = NewConnectSQLite(ctx, cfg.DB, logger)
	case DriverPostgres, "postgres":
		db, err = NewConnectPostgres(ctx, cfg.DB, logger)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownDriver, cfg.DB.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("database connection error: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &Storages{
		BlobStore: NewSQLBlobStore(db, logger),
		closer:    db.Close,
	}, nil
}

// Close releases database connections, if any.
func (s *Storages) Close() error {
	if s == nil || s.closer == nil {
		return nil
	}
	return s.closer()
}
