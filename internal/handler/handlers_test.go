package handler

import (
	"testing"

	"github.com/MKhiriev/qryptshare/internal/config"
	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandlers_HTTPAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{HTTPAddress: ":8080"}, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}
