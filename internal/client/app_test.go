package client

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/tui"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUI struct {
	err    error
	called bool
}

func (s *stubUI) Run(context.Context) error {
	s.called = true
	return s.err
}

func TestNewApp(t *testing.T) {
	app, err := NewApp(&stubUI{}, logger.Nop())
	require.NoError(t, err)
	assert.NotNil(t, app)

	_, err = NewApp(nil, logger.Nop())
	assert.Error(t, err)
}

func TestApp_Run(t *testing.T) {
	boom := errors.New("terminal is gone")

	tests := []struct {
		name    string
		uiErr   error
		wantErr error
	}{
		{"clean exit", nil, nil},
		{"user quit", tui.ErrUserQuit, nil},
		{"interrupted", context.Canceled, nil},
		{"ui failure", boom, boom},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &stubUI{err: tt.uiErr}
			app, err := NewApp(ui, logger.Nop())
			require.NoError(t, err)

			err = app.run(context.Background())

			assert.True(t, ui.called)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
