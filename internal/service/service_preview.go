package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/models"
)

type previewService struct {
	renderer CodeRenderer

	logger *logger.Logger
}

func NewPreviewService(renderer CodeRenderer, logger *logger.Logger) PreviewService {
	return &previewService{
		renderer: renderer,
		logger:   logger,
	}
}

func (s *previewService) Terminal(ctx context.Context, payload string) (string, error) {
	if payload == "" {
		return "", ErrEmptyPayload
	}

	art, err := s.renderer.Terminal(payload, false)
	if err != nil {
		return "", fmt.Errorf("error rendering terminal preview: %w", err)
	}

	return art, nil
}

func (s *previewService) SVG(ctx context.Context, payload string, style models.StyleConfig) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	doc, err := s.renderer.SVG(payload, style.Foreground())
	if err != nil {
		return nil, fmt.Errorf("error rendering svg preview: %w", err)
	}

	return doc, nil
}
