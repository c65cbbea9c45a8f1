package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/internal/payload"
	"github.com/MKhiriev/qryptshare/internal/validators"
	"github.com/MKhiriev/qryptshare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Payload ──────────────────────────────────────────────────────────────────

func TestPayloadService_Payload_Success(t *testing.T) {
	svc := NewPayloadService(payload.New(), logger.Nop())

	form := models.FormState{
		Mode: models.ModeWirelessCredential,
		WiFi: models.WirelessCredential{SSID: "GuestNet", Password: "secret1", Encryption: models.EncryptionWPA},
	}

	got, err := svc.Payload(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:WPA;S:GuestNet;P:secret1;H:false;;", got)
}

func TestPayloadService_Payload_Incomplete(t *testing.T) {
	svc := NewPayloadService(payload.New(), logger.Nop())

	tests := []struct {
		name    string
		form    models.FormState
		wantErr error
	}{
		{"empty link", models.FormState{Mode: models.ModeLink}, validators.ErrMissingURL},
		{"wifi without ssid", models.FormState{Mode: models.ModeWirelessCredential}, validators.ErrMissingSSID},
		{"contact without names", models.FormState{Mode: models.ModeContactCard}, validators.ErrMissingName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.Payload(context.Background(), tt.form)
			assert.Empty(t, got)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.ErrorIs(t, err, validators.ErrInputIncomplete)
		})
	}
}

func TestPayloadService_Payload_InvalidMode(t *testing.T) {
	svc := NewPayloadService(payload.New(), logger.Nop())

	_, err := svc.Payload(context.Background(), models.FormState{Link: models.Link{URL: "https://example.com"}})
	assert.ErrorIs(t, err, validators.ErrInvalidMode)
}

func TestPayloadService_Payload_Escaping(t *testing.T) {
	form := models.FormState{
		Mode: models.ModeWirelessCredential,
		WiFi: models.WirelessCredential{SSID: "a;b", Encryption: models.EncryptionNone},
	}

	verbatim, err := NewPayloadService(payload.New(), logger.Nop()).Payload(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, "WIFI:T:nopass;S:a;b;H:false;;", verbatim)

	escaped, err := NewPayloadService(payload.New(payload.WithEscaping()), logger.Nop()).Payload(context.Background(), form)
	require.NoError(t, err)
	assert.Equal(t, `WIFI:T:nopass;S:a\;b;H:false;;`, escaped)
}

// ── Draft ────────────────────────────────────────────────────────────────────

func TestPayloadService_Draft(t *testing.T) {
	svc := NewPayloadService(payload.New(), logger.Nop())

	assert.Empty(t, svc.Draft(models.NewFormState()))

	form := models.NewFormState()
	form.Link.URL = "https://example.com/a?b=c"
	assert.Equal(t, "https://example.com/a?b=c", svc.Draft(form))

	// a secured network without a password still yields a draft
	form = models.FormState{Mode: models.ModeWirelessCredential, WiFi: models.WirelessCredential{SSID: "Lab", Encryption: models.EncryptionWPA}}
	assert.Equal(t, "WIFI:T:WPA;S:Lab;P:;H:false;;", svc.Draft(form))
}
