package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qryptshare/internal/config"
	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/raster"
	"github.com/MKhiriev/qryptshare/internal/store"
	"github.com/MKhiriev/qryptshare/models"
)

type exportService struct {
	payloads PayloadService
	renderer CodeRenderer
	exporter RasterExporter
	storage  store.ExportFileStorage

	productName string

	logger *logger.Logger
}

// NewExportService composes the payload encoder, the vector renderer and the
// raster exporter. storage may be nil, in which case Save fails with
// [ErrExportStorageMissing].
func NewExportService(
	payloads PayloadService,
	renderer CodeRenderer,
	exporter RasterExporter,
	storage store.ExportFileStorage,
	cfg config.App,
	logger *logger.Logger,
) ExportService {
	return &exportService{
		payloads:    payloads,
		renderer:    renderer,
		exporter:    exporter,
		storage:     storage,
		productName: cfg.ProductName,
		logger:      logger,
	}
}

func (s *exportService) Export(ctx context.Context, form models.FormState, style models.StyleConfig, format models.OutputFormat) (models.ExportedFile, error) {
	res := <-s.ExportAsync(ctx, form, style, format)
	return res.File, res.Err
}

// ExportAsync builds the payload and the vector source before returning, so
// the in-flight export only ever sees the values passed here.
func (s *exportService) ExportAsync(ctx context.Context, form models.FormState, style models.StyleConfig, format models.OutputFormat) <-chan models.ExportResult {
	out := make(chan models.ExportResult, 1)

	req, name, err := s.prepare(ctx, form, style, format)
	if err != nil {
		s.logger.Err(err).Str("mode", form.Mode.String()).Str("format", string(format)).Msg("export rejected")
		out <- models.ExportResult{Err: err}
		close(out)
		return out
	}

	s.logger.Debug().Str("file", name).Msg("export started")

	go func() {
		defer close(out)

		res := <-s.exporter.ExportAsync(ctx, req)
		if res.Err != nil {
			out <- models.ExportResult{Err: fmt.Errorf("error exporting %s: %w", name, res.Err)}
			return
		}

		out <- models.ExportResult{File: models.ExportedFile{
			Name:   name,
			Format: res.Format,
			EdgePx: res.EdgePx,
			Data:   res.Data,
		}}
	}()

	return out
}

func (s *exportService) prepare(ctx context.Context, form models.FormState, style models.StyleConfig, format models.OutputFormat) (raster.Request, string, error) {
	if !s.exporter.Supports(format) {
		return raster.Request{}, "", fmt.Errorf("%w: %q", raster.ErrEncodingUnsupported, format)
	}

	text, err := s.payloads.Payload(ctx, form)
	if err != nil {
		return raster.Request{}, "", err
	}

	source, err := s.renderer.SVG(text, style.Foreground())
	if err != nil {
		return raster.Request{}, "", fmt.Errorf("%w: %w", raster.ErrRenderTargetMissing, err)
	}

	req := raster.Request{
		Source: source,
		Style:  style,
		Format: format,
	}

	return req, models.ExportFileName(s.productName, form.Mode, format), nil
}

func (s *exportService) Save(ctx context.Context, file models.ExportedFile) (string, error) {
	if s.storage == nil {
		return "", ErrExportStorageMissing
	}

	path, err := s.storage.Save(ctx, file)
	if err != nil {
		return "", fmt.Errorf("error saving %s: %w", file.Name, err)
	}

	s.logger.Info().Str("path", path).Int("bytes", len(file.Data)).Msg("export saved")
	return path, nil
}
