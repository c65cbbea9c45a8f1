package http

import (
	"net/http"

	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/utils"
)

func (h *Handler) payload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var form formRequest
	if err := decodeJSON(w, r, &form); err != nil {
		log.Err(err).Str("func", "*Handler.payload").Msg("invalid request body")
		writeError(w, err)
		return
	}

	text, err := h.services.PayloadService.Payload(r.Context(), form)
	if err != nil {
		log.Err(err).Str("func", "*Handler.payload").Msg("error building payload")
		writeError(w, err)
		return
	}

	if _, err = utils.WriteJSON(w, payloadResponse{Payload: text}, http.StatusOK); err != nil {
		log.Err(err).Str("func", "*Handler.payload").Msg("error writing response")
	}
}
