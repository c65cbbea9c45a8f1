package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("version is not specified")

	// ErrEmptyPayload is returned when the active field set encodes to the
	// empty string, so there is nothing to render.
	ErrEmptyPayload = errors.New("payload is empty")

	ErrExportStorageMissing = errors.New("export storage is not configured")
)
