package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/qryptshare/internal/raster"
	"github.com/MKhiriev/qryptshare/internal/service"
	"github.com/MKhiriev/qryptshare/internal/validators"
	"github.com/MKhiriev/qryptshare/internal/vector"
	"github.com/MKhiriev/qryptshare/models"
)

// errorStatuses is checked in order; the first sentinel found in the chain
// decides the status. Server-side faults come first so that a chain mixing
// them with client errors still reports 500.
var errorStatuses = []struct {
	err    error
	status int
}{
	{raster.ErrSurfaceUnavailable, http.StatusInternalServerError},
	{service.ErrExportStorageMissing, http.StatusInternalServerError},

	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidJSON, http.StatusBadRequest},

	{validators.ErrInvalidMode, http.StatusBadRequest},
	{validators.ErrInvalidEncryption, http.StatusBadRequest},
	{validators.ErrInvalidStyle, http.StatusBadRequest},

	{models.ErrUnknownOutputFormat, http.StatusUnsupportedMediaType},
	{raster.ErrEncodingUnsupported, http.StatusUnsupportedMediaType},

	{validators.ErrInputIncomplete, http.StatusUnprocessableEntity},
	{service.ErrEmptyPayload, http.StatusUnprocessableEntity},
	{raster.ErrRenderTargetMissing, http.StatusUnprocessableEntity},
	{vector.ErrSymbolEncode, http.StatusUnprocessableEntity},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.err) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}
