package store

import "errors"

// Sentinel errors returned by storage methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmptyExport is returned when a file without data is passed to Save.
	ErrEmptyExport = errors.New("export has no data")

	// ErrInvalidFileName is returned when the export name is empty or is not
	// a plain file name (it contains a path separator or is "." or "..").
	ErrInvalidFileName = errors.New("invalid export file name")

	// ErrExportDirUnavailable is returned when the output directory cannot
	// be created or is not a directory.
	ErrExportDirUnavailable = errors.New("export directory is unavailable")

	// ErrExportNotSaved is returned when writing or renaming the file fails.
	// No partially written file is left under the final name.
	ErrExportNotSaved = errors.New("export was not saved")
)
