package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/payload"
	"github.com/MKhiriev/qryptshare/internal/validators"
	"github.com/MKhiriev/qryptshare/models"
)

type payloadService struct {
	encoder   *payload.Encoder
	validator validators.Validator

	logger *logger.Logger
}

func NewPayloadService(encoder *payload.Encoder, logger *logger.Logger) PayloadService {
	return &payloadService{
		encoder:   encoder,
		validator: validators.NewFormValidator(),
		logger:    logger,
	}
}

func (s *payloadService) Payload(ctx context.Context, form models.FormState) (string, error) {
	if err := s.validator.Validate(ctx, form); err != nil {
		return "", fmt.Errorf("error validating %s form: %w", form.Mode, err)
	}

	text := s.encoder.Encode(form)
	if text == "" {
		return "", ErrEmptyPayload
	}

	s.logger.Debug().Str("mode", form.Mode.String()).Int("length", len(text)).Msg("payload encoded")
	return text, nil
}

func (s *payloadService) Draft(form models.FormState) string {
	return s.encoder.Encode(form)
}
