package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/MKhiriev/qryptshare/internal/config"
	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/go-chi/chi/v5/middleware"
)

type httpServer struct {
	server          *http.Server
	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func newHTTPServer(handler http.Handler, cfg config.Server, logger *logger.Logger) *httpServer {
	return &httpServer{
		server: &http.Server{
			Addr:              cfg.HTTPAddress,
			Handler:           middleware.Timeout(cfg.RequestTimeout)(handler),
			ReadHeaderTimeout: cfg.RequestTimeout,
			ReadTimeout:       cfg.RequestTimeout,
			WriteTimeout:      2 * cfg.RequestTimeout,
		},
		shutdownTimeout: cfg.RequestTimeout,
		logger:          logger,
	}
}

// RunServer blocks in ListenAndServe. A graceful Shutdown yields nil.
func (h *httpServer) RunServer() error {
	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		h.logger.Err(err).Msg("HTTP server ListenAndServe")
		return fmt.Errorf("HTTP server ListenAndServe: %w", err)
	}
	return nil
}

// Shutdown waits up to one request timeout for in-flight exports to finish.
func (h *httpServer) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), h.shutdownTimeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		h.logger.Err(err).Msg("HTTP server Shutdown")
	}
}
