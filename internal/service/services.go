package service

import (
	"fmt"

	"github.com/MKhiriev/qryptshare/internal/config"
	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/payload"
	"github.com/MKhiriev/qryptshare/internal/raster"
	"github.com/MKhiriev/qryptshare/internal/store"
	"github.com/MKhiriev/qryptshare/internal/vector"
)

type Services struct {
	PayloadService PayloadService
	PreviewService PreviewService
	ExportService  ExportService
	AppInfoService AppInfoService
}

// NewServices wires the encoder, the vector renderer and the raster exporter.
// storages may be nil when exported files are only streamed, never saved.
func NewServices(storages *store.Storages, app config.App, export config.Export, logger *logger.Logger) (*Services, error) {
	level, err := vector.ParseRecoveryLevel(export.RecoveryLevel)
	if err != nil {
		return nil, fmt.Errorf("error configuring code renderer: %w", err)
	}

	appInfo, err := NewAppInfoService(app, logger)
	if err != nil {
		return nil, fmt.Errorf("error configuring app info: %w", err)
	}

	var encoderOpts []payload.Option
	if app.EscapeReserved {
		encoderOpts = append(encoderOpts, payload.WithEscaping())
	}

	renderer := vector.NewRenderer(vector.WithRecoveryLevel(level), vector.WithSize(export.ContentSize))
	payloads := NewPayloadService(payload.New(encoderOpts...), logger)

	var fileStorage store.ExportFileStorage
	if storages != nil {
		fileStorage = storages.ExportFileStorage
	}

	exportSvc := NewExportService(payloads, renderer, raster.NewExporter(logger), fileStorage, app, logger)

	return &Services{
		PayloadService: payloads,
		PreviewService: NewPreviewService(renderer, logger),
		ExportService:  NewExportValidationService().Wrap(exportSvc),
		AppInfoService: appInfo,
	}, nil
}
