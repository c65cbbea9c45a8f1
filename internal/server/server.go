package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/qryptshare/internal/config"
	"github.com/MKhiriev/qryptshare/internal/handler"
	"github.com/MKhiriev/qryptshare/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		logger:     logger,
	}, nil
}

func (s *server) RunServer() error {
	if err := s.run(); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	return nil
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
}

func (s *server) run() error {
	if s.httpServer == nil {
		return errors.New("no servers to run")
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	serveErr := make(chan error, 1)

	s.logger.Info().Str("address", s.httpServer.server.Addr).Msg("launching HTTP server")
	go func() {
		serveErr <- s.httpServer.RunServer()
	}()

	select {
	case err := <-serveErr:
		// listener failed or Shutdown was called directly
		return err
	case <-ctx.Done():
	}

	s.Shutdown()
	if err := <-serveErr; err != nil {
		return err
	}
	s.logger.Info().Msg("server shut down gracefully")

	return nil
}
