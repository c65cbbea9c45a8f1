// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/qryptshare/models"
)

// exportFileStorage is the filesystem implementation of
// [ExportFileStorage]. Files are written to a temporary name inside the
// output directory and renamed into place, so readers never observe a
// half-written image.
type exportFileStorage struct {
	dir string
}

// NewExportFileStorage constructs an [ExportFileStorage] writing into dir.
// The directory is created on the first Save if it does not exist.
func NewExportFileStorage(dir string) ExportFileStorage {
	return &exportFileStorage{dir: dir}
}

// Save writes file.Data to <dir>/<file.Name>.
//
// Returns [ErrEmptyExport], [ErrInvalidFileName], [ErrExportDirUnavailable]
// or [ErrExportNotSaved] (wrapping the underlying I/O error), or the context
// error if ctx is already done.
func (s *exportFileStorage) Save(ctx context.Context, file models.ExportedFile) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if len(file.Data) == 0 {
		return "", ErrEmptyExport
	}

	name := file.Name
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("%w: %q", ErrInvalidFileName, name)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportDirUnavailable, err)
	}

	tmp, err := os.CreateTemp(s.dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportDirUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(file.Data); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrExportNotSaved, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return "", fmt.Errorf("%w: %w", ErrExportNotSaved, err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportNotSaved, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportNotSaved, err)
	}

	path := filepath.Join(s.dir, name)
	if err := os.Rename(tmpName, path); err != nil {
		return "", fmt.Errorf("%w: %w", ErrExportNotSaved, err)
	}

	return path, nil
}
