package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qryptshare/internal/validators"
	"github.com/MKhiriev/qryptshare/models"
)

// ExportServiceWrapper defines middleware composition for ExportService.
// Implementations wrap an existing ExportService to add behavior such as
// logging or validating.
type ExportServiceWrapper interface {
	Wrap(ExportService) ExportService // returns a decorated ExportService applying additional behavior
}

// ExportValidationService rejects out-of-range styles before the wrapped
// ExportService does any work.
type ExportValidationService struct {
	inner     ExportService
	validator validators.Validator
}

func NewExportValidationService() ExportServiceWrapper {
	return &ExportValidationService{
		validator: validators.NewStyleValidator(),
	}
}

func (v *ExportValidationService) Export(ctx context.Context, form models.FormState, style models.StyleConfig, format models.OutputFormat) (models.ExportedFile, error) {
	if err := v.validator.Validate(ctx, style); err != nil {
		return models.ExportedFile{}, fmt.Errorf("error during style validation before export: %w", err)
	}

	return v.inner.Export(ctx, form, style, format)
}

func (v *ExportValidationService) ExportAsync(ctx context.Context, form models.FormState, style models.StyleConfig, format models.OutputFormat) <-chan models.ExportResult {
	if err := v.validator.Validate(ctx, style); err != nil {
		out := make(chan models.ExportResult, 1)
		out <- models.ExportResult{Err: fmt.Errorf("error during style validation before export: %w", err)}
		close(out)
		return out
	}

	return v.inner.ExportAsync(ctx, form, style, format)
}

func (v *ExportValidationService) Save(ctx context.Context, file models.ExportedFile) (string, error) {
	if len(file.Data) == 0 || file.Name == "" {
		return "", fmt.Errorf("error during export validation before saving: %w", ErrEmptyPayload)
	}

	return v.inner.Save(ctx, file)
}

func (v *ExportValidationService) Wrap(wrapped ExportService) ExportService {
	v.inner = wrapped
	return v
}
