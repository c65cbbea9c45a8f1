package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/qryptshare/internal/raster"
	"github.com/MKhiriev/qryptshare/internal/validators"
	"github.com/MKhiriev/qryptshare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestExport_Formats(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantFormat models.OutputFormat
	}{
		{"default is png", "", models.FormatPNG},
		{"png", "?format=png", models.FormatPNG},
		{"jpg alias", "?format=jpg", models.FormatJPEG},
		{"jpeg upper case", "?format=JPEG", models.FormatJPEG},
		{"webp", "?format=webp", models.FormatWebP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, h := newTestServices(t)
			file := models.ExportedFile{
				Name:   models.ExportFileName("qry-share", models.ModeLink, tt.wantFormat),
				Format: tt.wantFormat,
				EdgePx: 912,
				Data:   []byte("image-bytes"),
			}
			mocks.export.EXPECT().
				Export(gomock.Any(), linkForm(), models.DefaultStyleConfig(), tt.wantFormat).
				Return(file, nil)

			req := httptest.NewRequest(http.MethodPost, "/api/export"+tt.query, encodeBody(t, styledFormRequest{Form: linkForm()}))
			rec := httptest.NewRecorder()
			h.export(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.wantFormat.MIMEType(), rec.Header().Get("Content-Type"))
			assert.Equal(t, fmt.Sprintf("attachment; filename=%q", file.Name), rec.Header().Get("Content-Disposition"))
			assert.Equal(t, "11", rec.Header().Get("Content-Length"))
			assert.Equal(t, "image-bytes", rec.Body.String())
		})
	}
}

func TestExport_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		body       string
		serviceErr error
		wantStatus int
	}{
		{
			name:       "unknown format",
			query:      "?format=gif",
			body:       `{}`,
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:       "malformed body",
			body:       `{"form":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid style",
			body:       `{"form":{"mode":"url"},"style":{"padding":99}}`,
			serviceErr: fmt.Errorf("error validating style: %w", validators.ErrPaddingOutOfRange),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "incomplete form",
			body:       `{"form":{"mode":"contact"}}`,
			serviceErr: fmt.Errorf("error exporting qry-share-contact.png: %w", validators.ErrMissingName),
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "encoder unsupported",
			body:       `{"form":{"mode":"url"}}`,
			serviceErr: raster.ErrEncodingUnsupported,
			wantStatus: http.StatusUnsupportedMediaType,
		},
		{
			name:       "surface unavailable",
			body:       `{"form":{"mode":"url"}}`,
			serviceErr: raster.ErrSurfaceUnavailable,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks, h := newTestServices(t)
			if tt.serviceErr != nil {
				mocks.export.EXPECT().Export(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(models.ExportedFile{}, tt.serviceErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/api/export"+tt.query, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			h.export(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Empty(t, rec.Header().Get("Content-Disposition"))
		})
	}
}
