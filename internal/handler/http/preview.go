package http

import (
	"net/http"

	"github.com/MKhiriev/qryptshare/internal/logger"
)

const svgContentType = "image/svg+xml"

func (h *Handler) preview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req styledFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.preview").Msg("invalid request body")
		writeError(w, err)
		return
	}

	text, err := h.services.PayloadService.Payload(r.Context(), req.Form)
	if err != nil {
		log.Err(err).Str("func", "*Handler.preview").Msg("error building payload")
		writeError(w, err)
		return
	}

	svg, err := h.services.PreviewService.SVG(r.Context(), text, req.style())
	if err != nil {
		log.Err(err).Str("func", "*Handler.preview").Msg("error rendering preview")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", svgContentType)
	w.WriteHeader(http.StatusOK)
	w.Write(svg)
}
