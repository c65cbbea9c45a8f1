package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

import (
	"context"

	"github.com/MKhiriev/qryptshare/internal/raster"
	"github.com/MKhiriev/qryptshare/models"
)

// PayloadService turns form state into the text that is encoded into the code.
type PayloadService interface {
	// Payload validates the active field set of form and returns its
	// non-empty payload.
	Payload(ctx context.Context, form models.FormState) (string, error)

	// Draft encodes form without validation. It is called after every field
	// change and returns the empty string while required fields are unset.
	Draft(form models.FormState) string
}

// PreviewService renders a payload for on-screen display.
type PreviewService interface {
	// Terminal returns the code as block characters for a terminal.
	Terminal(ctx context.Context, payload string) (string, error)

	// SVG returns the vector code document drawn with the style's foreground.
	SVG(ctx context.Context, payload string, style models.StyleConfig) ([]byte, error)
}

// ExportService produces downloadable raster files.
type ExportService interface {
	// Export renders the form with style into format and blocks until the
	// file is encoded.
	Export(ctx context.Context, form models.FormState, style models.StyleConfig, format models.OutputFormat) (models.ExportedFile, error)

	// ExportAsync captures form and style at call time and returns at once.
	// The channel receives exactly one result and is then closed.
	ExportAsync(ctx context.Context, form models.FormState, style models.StyleConfig, format models.OutputFormat) <-chan models.ExportResult

	// Save writes an exported file to the configured output directory and
	// returns its path.
	Save(ctx context.Context, file models.ExportedFile) (string, error)
}

// AppInfoService exposes build metadata.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CodeRenderer is the vector code renderer the services draw with.
type CodeRenderer interface {
	SVG(payload string, fg models.Color) ([]byte, error)
	Terminal(payload string, invert bool) (string, error)
}

// RasterExporter composites a vector code into an encoded raster image.
type RasterExporter interface {
	Supports(format models.OutputFormat) bool
	ExportAsync(ctx context.Context, req raster.Request) <-chan raster.Result
}
