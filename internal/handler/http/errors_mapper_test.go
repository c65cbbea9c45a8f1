package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/qryptshare/internal/raster"
	"github.com/MKhiriev/qryptshare/internal/service"
	"github.com/MKhiriev/qryptshare/internal/validators"
	"github.com/MKhiriev/qryptshare/internal/vector"
	"github.com/MKhiriev/qryptshare/models"
	"github.com/stretchr/testify/assert"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid json", fmt.Errorf("%w: %w", ErrInvalidJSON, errors.New("eof")), http.StatusBadRequest},
		{"unknown mode in body", fmt.Errorf("%w: %w", ErrInvalidJSON, models.ErrUnknownMode), http.StatusBadRequest},
		{"body too large", ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
		{"missing field", validators.ErrMissingPassword, http.StatusUnprocessableEntity},
		{"invalid mode", validators.ErrInvalidMode, http.StatusBadRequest},
		{"invalid style", validators.ErrBorderRadiusOutOfRange, http.StatusBadRequest},
		{"empty payload", service.ErrEmptyPayload, http.StatusUnprocessableEntity},
		{"unknown format", models.ErrUnknownOutputFormat, http.StatusUnsupportedMediaType},
		{"render target missing", fmt.Errorf("wrap: %w", raster.ErrRenderTargetMissing), http.StatusUnprocessableEntity},
		{"symbol too large", vector.ErrSymbolEncode, http.StatusUnprocessableEntity},
		{"surface unavailable", raster.ErrSurfaceUnavailable, http.StatusInternalServerError},
		{"unknown error", errors.New("something else"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusFromError(tt.err))
		})
	}
}

func TestStatusFromError_MultipleSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"surface fault wins over missing target", fmt.Errorf("%w: %w", raster.ErrRenderTargetMissing, raster.ErrSurfaceUnavailable), http.StatusInternalServerError},
		{"oversized body reported as such", fmt.Errorf("%w: %w", ErrInvalidJSON, ErrBodyTooLarge), http.StatusRequestEntityTooLarge},
		{"invalid style before incomplete input", errors.Join(validators.ErrMissingURL, validators.ErrPaddingOutOfRange), http.StatusBadRequest},
		{"unsupported format before empty payload", errors.Join(service.ErrEmptyPayload, raster.ErrEncodingUnsupported), http.StatusUnsupportedMediaType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for i := 0; i < 20; i++ {
				assert.Equal(t, tt.want, statusFromError(tt.err))
			}
		})
	}
}
