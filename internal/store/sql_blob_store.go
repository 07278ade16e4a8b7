package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/work-notes/internal/logger"
)

// sqlBlobStore keeps blobs as rows of the note_blobs table. The same code
// serves SQLite and PostgreSQL; only the placeholder format differs.
type sqlBlobStore struct {
	*DB
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLBlobStore constructs a [BlobStore] backed by db.
func NewSQLBlobStore(db *DB, logger *logger.Logger) BlobStore {
	logger.Debug().Str("driver", db.driver).Msg("creating sql blob store")
	return &sqlBlobStore{
		DB:     db,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sqlBlobStore) List(ctx context.Context, suffix string) ([]BlobInfo, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListQuery(s.builder, suffix)
	if err != nil {
		return nil, fmt.Errorf("%w: build list query: %w", ErrBlobIO, err)
	}

	rows, err := s.DB.QueryContext(ctx, query, args...)
	if err != nil {
		s.logFailure(ctx, err, "*sqlBlobStore.List", "")
		return nil, fmt.Errorf("%w: list: %w", ErrBlobIO, err)
	}
	defer rows.Close()

	result := make([]BlobInfo, 0, 64)
	for rows.Next() {
		var item BlobInfo
		if err := rows.Scan(&item.Name, &item.ModifiedAt); err != nil {
			log.Err(err).Str("func", "*sqlBlobStore.List").Msg("failed to scan blob row")
			return nil, fmt.Errorf("%w: scan: %w", ErrBlobIO, err)
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		log.Err(err).Str("func", "*sqlBlobStore.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: rows: %w", ErrBlobIO, err)
	}

	return result, nil
}

func (s *sqlBlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}

	query, args, err := buildReadQuery(s.builder, name)
	if err != nil {
		return nil, fmt.Errorf("%w: build read query: %w", ErrBlobIO, err)
	}

	var body string
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&body); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrBlobNotFound
		}
		s.logFailure(ctx, err, "*sqlBlobStore.Read", name)
		return nil, fmt.Errorf("%w: read %s: %w", ErrBlobIO, name, err)
	}

	return []byte(body), nil
}

func (s *sqlBlobStore) Write(ctx context.Context, name string, data []byte) error {
	if err := checkName(name); err != nil {
		return err
	}

	query, args, err := buildWriteQuery(s.builder, name, data, s.now())
	if err != nil {
		return fmt.Errorf("%w: build write query: %w", ErrBlobIO, err)
	}

	if _, err := s.DB.ExecContext(ctx, query, args...); err != nil {
		s.logFailure(ctx, err, "*sqlBlobStore.Write", name)
		return fmt.Errorf("%w: write %s: %w", ErrBlobIO, name, err)
	}

	return nil
}

func (s *sqlBlobStore) Delete(ctx context.Context, name string) error {
	if err := checkName(name); err != nil {
		return err
	}

	query, args, err := buildDeleteQuery(s.builder, name)
	if err != nil {
		return fmt.Errorf("%w: build delete query: %w", ErrBlobIO, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		s.logFailure(ctx, err, "*sqlBlobStore.Delete", name)
		return fmt.Errorf("%w: delete %s: %w", ErrBlobIO, name, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: delete %s: %w", ErrBlobIO, name, err)
	}
	if affected == 0 {
		return ErrBlobNotFound
	}

	return nil
}

func (s *sqlBlobStore) Exists(ctx context.Context, name string) (bool, error) {
	if err := checkName(name); err != nil {
		return false, err
	}

	query, args, err := buildExistsQuery(s.builder, name)
	if err != nil {
		return false, fmt.Errorf("%w: build exists query: %w", ErrBlobIO, err)
	}

	var count int
	if err := s.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		s.logFailure(ctx, err, "*sqlBlobStore.Exists", name)
		return false, fmt.Errorf("%w: exists %s: %w", ErrBlobIO, name, err)
	}

	return count > 0, nil
}

func (s *sqlBlobStore) logFailure(ctx context.Context, err error, fn, name string) {
	class := Permanent
	if s.errorClassificator != nil {
		class = s.errorClassificator.Classify(err)
	}

	logger.FromContext(ctx).Err(err).
		Str("func", fn).
		Str("name", name).
		Str("sqlstate", postgresError(err)).
		Stringer("class", class).
		Msg("blob statement failed")
}
