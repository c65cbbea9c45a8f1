package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/qryptshare/models"
)

// ExportFileStorage persists finished exports.
type ExportFileStorage interface {
	// Save writes file under its Name, replacing any previous file of the
	// same name, and returns the path it was written to.
	Save(ctx context.Context, file models.ExportedFile) (string, error)
}
