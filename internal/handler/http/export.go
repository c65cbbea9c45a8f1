package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/models"
)

const formatQueryParam = "format"

func (h *Handler) export(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	format := models.FormatPNG
	if raw := r.URL.Query().Get(formatQueryParam); raw != "" {
		parsed, err := models.ParseOutputFormat(raw)
		if err != nil {
			log.Err(err).Str("func", "*Handler.export").Str("format", raw).Msg("unknown output format")
			writeError(w, err)
			return
		}
		format = parsed
	}

	var req styledFormRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Str("func", "*Handler.export").Msg("invalid request body")
		writeError(w, err)
		return
	}

	file, err := h.services.ExportService.Export(r.Context(), req.Form, req.style(), format)
	if err != nil {
		log.Err(err).Str("func", "*Handler.export").Msg("error exporting code")
		writeError(w, err)
		return
	}

	w.Header().Set("Content-Type", file.Format.MIMEType())
	w.Header().Set("Content-Length", strconv.Itoa(len(file.Data)))
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.Name))
	w.WriteHeader(http.StatusOK)
	w.Write(file.Data)
}
