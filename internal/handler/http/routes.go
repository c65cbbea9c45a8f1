package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, withLogging, withGZip)

	router.Post("/api/payload", h.payload)
	router.Post("/api/preview", h.preview)
	router.Post("/api/export", h.export)
	router.Get("/api/version", h.getServerVersion)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
