package server

import (
	"net"
	"net/http"
	"net/http/httptest"
	"syscall"
	"testing"
	"time"

	"github.com/MKhiriev/qryptshare/internal/config"
	"github.com/MKhiriev/qryptshare/internal/handler"
	handlerhttp "github.com/MKhiriev/qryptshare/internal/handler/http"
	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	handlers := &handler.Handlers{HTTP: handlerhttp.NewHandler(&service.Services{}, logger.Nop())}
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}

	srv, err := NewServer(handlers, cfg, logger.Nop())

	require.NoError(t, err)
	s, ok := srv.(*server)
	require.True(t, ok)
	require.NotNil(t, s.httpServer)
	assert.Equal(t, "127.0.0.1:0", s.httpServer.server.Addr)
	assert.Equal(t, time.Second, s.httpServer.server.ReadHeaderTimeout)
	assert.Equal(t, time.Second, s.httpServer.shutdownTimeout)
}

func TestNewServer_NothingToServe(t *testing.T) {
	tests := []struct {
		name     string
		handlers *handler.Handlers
		cfg      config.Server
	}{
		{"nil handlers", nil, config.Server{HTTPAddress: ":8080"}},
		{"nil http handler", &handler.Handlers{}, config.Server{HTTPAddress: ":8080"}},
		{"empty address", &handler.Handlers{HTTP: handlerhttp.NewHandler(&service.Services{}, logger.Nop())}, config.Server{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, err := NewServer(tt.handlers, tt.cfg, logger.Nop())

			assert.ErrorIs(t, err, errNoServersAreCreated)
			assert.Nil(t, srv)
		})
	}
}

func TestHTTPServer_RequestTimeout(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	})
	s := newHTTPServer(slow, config.Server{RequestTimeout: 20 * time.Millisecond}, logger.Nop())

	rec := httptest.NewRecorder()
	s.server.Handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/export", nil))

	assert.Equal(t, http.StatusGatewayTimeout, rec.Code)
}

func TestHTTPServer_RunAndShutdown(t *testing.T) {
	s := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())

	done := make(chan struct{})
	go func() {
		assert.NoError(t, s.RunServer())
		close(done)
	}()

	// give ListenAndServe a moment to bind
	time.Sleep(50 * time.Millisecond)
	s.Shutdown()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}

func TestServer_RunServer_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	handlers := &handler.Handlers{HTTP: handlerhttp.NewHandler(&service.Services{}, logger.Nop())}
	srv, err := NewServer(handlers, config.Server{HTTPAddress: taken.Addr().String(), RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.RunServer() }()

	select {
	case err := <-done:
		require.Error(t, err)
		assert.ErrorIs(t, err, syscall.EADDRINUSE)
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer kept blocking after the listener failed")
	}
}

func TestServer_RunServer_ShutdownReturnsNil(t *testing.T) {
	handlers := &handler.Handlers{HTTP: handlerhttp.NewHandler(&service.Services{}, logger.Nop())}
	srv, err := NewServer(handlers, config.Server{HTTPAddress: "127.0.0.1:0", RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- srv.RunServer() }()

	time.Sleep(50 * time.Millisecond)
	srv.Shutdown()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("RunServer did not return after Shutdown")
	}
}
