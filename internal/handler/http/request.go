package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/qryptshare/models"
)

// maxRequestBodySize bounds every JSON request body.
const maxRequestBodySize = 64 << 10

// formRequest is the body of /api/payload.
type formRequest = models.FormState

// styledFormRequest is the body of /api/preview and /api/export. A missing
// style means the default style.
type styledFormRequest struct {
	Form  models.FormState    `json:"form"`
	Style *models.StyleConfig `json:"style,omitempty"`
}

func (s styledFormRequest) style() models.StyleConfig {
	if s.Style == nil {
		return models.DefaultStyleConfig()
	}
	return *s.Style
}

type payloadResponse struct {
	Payload string `json:"payload"`
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return ErrBodyTooLarge
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	return nil
}

func writeError(w http.ResponseWriter, err error) {
	http.Error(w, err.Error(), statusFromError(err))
}
