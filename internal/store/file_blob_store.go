// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/work-notes/internal/logger"
	"github.com/bmatcuk/doublestar/v4"
)

// fileBlobStore keeps every blob as a regular file directly inside one
// directory. Sub-directories and non-regular files are ignored.
type fileBlobStore struct {
	dir    string
	logger *logger.Logger
}

// NewFileBlobStore returns a [BlobStore] rooted at dir, creating the
// directory when it does not exist yet.
func NewFileBlobStore(dir string, logger *logger.Logger) (BlobStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("%w: empty notes directory", ErrBlobIO)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: create notes directory: %w", ErrBlobIO, err)
	}
	logger.Debug().Str("dir", dir).Msg("file blob store created")

	return &fileBlobStore{
		dir:    dir,
		logger: logger,
	}, nil
}

func (s *fileBlobStore) List(ctx context.Context, suffix string) ([]BlobInfo, error) {
	log := logger.FromContext(ctx)

	entries, err := os.ReadDir(s.dir)
	if err != nil {
		log.Err(err).Str("func", "*fileBlobStore.List").Str("dir", s.dir).Msg("error reading notes directory")
		return nil, fmt.Errorf("%w: read dir: %w", ErrBlobIO, err)
	}

	pattern := "*" + strings.ToLower(suffix)
	result := make([]BlobInfo, 0, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		matched, err := doublestar.Match(pattern, strings.ToLower(entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%w: bad suffix pattern %q: %w", ErrBlobIO, pattern, err)
		}
		if !matched {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// removed between ReadDir and Info
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("%w: stat %s: %w", ErrBlobIO, entry.Name(), err)
		}
		result = append(result, BlobInfo{Name: entry.Name(), ModifiedAt: info.ModTime()})
	}

	return result, nil
}

func (s *fileBlobStore) Read(ctx context.Context, name string) ([]byte, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("%w: stat %s: %w", ErrBlobIO, name, err)
	}
	if !info.Mode().IsRegular() {
		return nil, ErrBlobNotFound
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileBlobStore.Read").Str("name", name).Msg("error reading note")
		return nil, fmt.Errorf("%w: read %s: %w", ErrBlobIO, name, err)
	}
	return data, nil
}

func (s *fileBlobStore) Write(ctx context.Context, name string, data []byte) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := writeFileAtomic(path, data, 0o644); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*fileBlobStore.Write").Str("name", name).Msg("error writing note")
		return fmt.Errorf("%w: write %s: %w", ErrBlobIO, name, err)
	}
	return nil
}

func (s *fileBlobStore) Delete(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	if err := os.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrBlobNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*fileBlobStore.Delete").Str("name", name).Msg("error deleting note")
		return fmt.Errorf("%w: delete %s: %w", ErrBlobIO, name, err)
	}
	return nil
}

func (s *fileBlobStore) Exists(ctx context.Context, name string) (bool, error) {
	path, err := s.path(name)
	if err != nil {
		return false, err
	}

	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: stat %s: %w", ErrBlobIO, name, err)
	}
	return info.Mode().IsRegular(), nil
}

func (s *fileBlobStore) path(name string) (string, error) {
	if err := checkName(name); err != nil {
		return "", err
	}
	return filepath.Join(s.dir, name), nil
}

// writeFileAtomic writes data to a temp file in the same directory and
// renames it over path, so readers never observe a partial note.
func writeFileAtomic(path string, data []byte, perm fs.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".tmp."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return err
	}
	return nil
}
