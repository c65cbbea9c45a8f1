package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/qryptshare/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = h.traceIDs.Generate()
		}

		l := h.logger.WithTraceID(traceID)
		ctx := context.WithValue(r.Context(), utils.TraceIDCtxKey, traceID)
		r = r.WithContext(l.WithContext(ctx))

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r)
	})
}
