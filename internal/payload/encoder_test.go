// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import (
	"strings"
	"testing"

	"github.com/MKhiriev/qryptshare/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Link ─────────────────────────────────────────────────────────────────────

func TestEncode_Link_Identity(t *testing.T) {
	urls := []string{
		"https://example.com",
		"http://a.b/c?d=e&f=g#h",
		"not even a url; with: reserved, chars\\",
		" leading and trailing spaces ",
	}

	for _, u := range urls {
		t.Run(u, func(t *testing.T) {
			form := models.FormState{Mode: models.ModeLink, Link: models.Link{URL: u}}
			assert.Equal(t, u, Encode(form))
			assert.Equal(t, u, New(WithEscaping()).Encode(form), "links are never escaped")
		})
	}
}

func TestEncode_Link_EmptyURL(t *testing.T) {
	assert.Equal(t, "", Encode(models.FormState{Mode: models.ModeLink}))
}

// ── WiFi ─────────────────────────────────────────────────────────────────────

func TestEncode_WiFi(t *testing.T) {
	tests := []struct {
		name string
		wifi models.WirelessCredential
		want string
	}{
		{
			name: "wpa guest network",
			wifi: models.WirelessCredential{SSID: "GuestNet", Password: "secret1", Encryption: models.EncryptionWPA},
			want: "WIFI:T:WPA;S:GuestNet;P:secret1;H:false;;",
		},
		{
			name: "wep hidden",
			wifi: models.WirelessCredential{SSID: "Lab", Password: "abc", Encryption: models.EncryptionWEP, Hidden: true},
			want: "WIFI:T:WEP;S:Lab;P:abc;H:true;;",
		},
		{
			name: "open network drops password",
			wifi: models.WirelessCredential{SSID: "Cafe", Password: "ignored", Encryption: models.EncryptionNone},
			want: "WIFI:T:nopass;S:Cafe;H:false;;",
		},
		{
			name: "unset encryption is treated as open",
			wifi: models.WirelessCredential{SSID: "Cafe"},
			want: "WIFI:T:nopass;S:Cafe;H:false;;",
		},
		{
			name: "wpa with empty password keeps segment",
			wifi: models.WirelessCredential{SSID: "Home", Encryption: models.EncryptionWPA},
			want: "WIFI:T:WPA;S:Home;P:;H:false;;",
		},
		{
			name: "empty ssid",
			wifi: models.WirelessCredential{Password: "secret1", Encryption: models.EncryptionWPA},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := models.FormState{Mode: models.ModeWirelessCredential, WiFi: tt.wifi}
			assert.Equal(t, tt.want, Encode(form))
		})
	}
}

func TestEncode_WiFi_PasswordSegmentPresence(t *testing.T) {
	for _, enc := range models.Encryptions {
		t.Run(string(enc), func(t *testing.T) {
			got := Encode(models.FormState{
				Mode: models.ModeWirelessCredential,
				WiFi: models.WirelessCredential{SSID: "net", Password: "p@ss;word", Encryption: enc},
			})
			if enc == models.EncryptionNone {
				assert.NotContains(t, got, "P:")
				return
			}
			assert.Contains(t, got, ";P:p@ss;word;")
		})
	}
}

func TestEncode_WiFi_Escaping(t *testing.T) {
	form := models.FormState{
		Mode: models.ModeWirelessCredential,
		WiFi: models.WirelessCredential{SSID: `My;Net`, Password: `a:b,c\d"e`, Encryption: models.EncryptionWPA},
	}

	assert.Equal(t, `WIFI:T:WPA;S:My;Net;P:a:b,c\d"e;H:false;;`, Encode(form))
	assert.Equal(t, `WIFI:T:WPA;S:My\;Net;P:a\:b\,c\\d\"e;H:false;;`, New(WithEscaping()).Encode(form))
}

// ── Contact ──────────────────────────────────────────────────────────────────

func TestEncode_Contact_NameOnly(t *testing.T) {
	form := models.FormState{
		Mode:    models.ModeContactCard,
		Contact: models.ContactCard{FirstName: "Ana", LastName: "Cruz"},
	}

	assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nN:Cruz;Ana;;;\nFN:Ana Cruz\nEND:VCARD", Encode(form))
}

func TestEncode_Contact_AllFields(t *testing.T) {
	form := models.FormState{
		Mode: models.ModeContactCard,
		Contact: models.ContactCard{
			FirstName:    "Ana",
			LastName:     "Cruz",
			Mobile:       "+63 900 000 0000",
			Email:        "ana@example.com",
			JobTitle:     "Engineer",
			Organization: "Acme",
			Website:      "https://acme.example",
		},
	}

	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Cruz;Ana;;;",
		"FN:Ana Cruz",
		"TITLE:Engineer",
		"ORG:Acme",
		"TEL;TYPE=CELL:+63 900 000 0000",
		"EMAIL:ana@example.com",
		"URL:https://acme.example",
		"END:VCARD",
	}, "\n")
	assert.Equal(t, want, Encode(form))
}

func TestEncode_Contact_OptionalLinesIffPresent(t *testing.T) {
	order := []string{"TITLE:", "ORG:", "TEL;TYPE=CELL:", "EMAIL:", "URL:"}

	// every subset of the five optional fields
	for mask := 0; mask < 1<<len(order); mask++ {
		c := models.ContactCard{LastName: "Cruz"}
		set := func(i int, v string) string {
			if mask&(1<<i) != 0 {
				return v
			}
			return ""
		}
		c.JobTitle = set(0, "t")
		c.Organization = set(1, "o")
		c.Mobile = set(2, "m")
		c.Email = set(3, "e")
		c.Website = set(4, "w")

		got := Encode(models.FormState{Mode: models.ModeContactCard, Contact: c})
		lines := strings.Split(got, "\n")
		require.Equal(t, "BEGIN:VCARD", lines[0])
		require.Equal(t, "END:VCARD", lines[len(lines)-1])

		last := -1
		for i, prefix := range order {
			idx := -1
			for j, line := range lines {
				if strings.HasPrefix(line, prefix) {
					idx = j
				}
			}
			if mask&(1<<i) == 0 {
				assert.Equal(t, -1, idx, "mask %05b: %s must be absent", mask, prefix)
				continue
			}
			require.NotEqual(t, -1, idx, "mask %05b: %s must be present", mask, prefix)
			assert.Greater(t, idx, last, "mask %05b: %s out of order", mask, prefix)
			last = idx
		}
	}
}

func TestEncode_Contact_SingleName(t *testing.T) {
	first := Encode(models.FormState{Mode: models.ModeContactCard, Contact: models.ContactCard{FirstName: "Ana"}})
	assert.Contains(t, first, "N:;Ana;;;\nFN:Ana \n")

	last := Encode(models.FormState{Mode: models.ModeContactCard, Contact: models.ContactCard{LastName: "Cruz"}})
	assert.Contains(t, last, "N:Cruz;;;;\nFN: Cruz\n")
}

func TestEncode_Contact_NoNames(t *testing.T) {
	form := models.FormState{
		Mode:    models.ModeContactCard,
		Contact: models.ContactCard{Email: "ana@example.com", Organization: "Acme"},
	}
	assert.Equal(t, "", Encode(form))
}

func TestEncode_Contact_Escaping(t *testing.T) {
	form := models.FormState{
		Mode:    models.ModeContactCard,
		Contact: models.ContactCard{FirstName: "Ana", LastName: "Cruz", Organization: "Acme, Inc; R&D\nLabs"},
	}

	assert.Contains(t, Encode(form), "ORG:Acme, Inc; R&D\nLabs")
	assert.Contains(t, New(WithEscaping()).Encode(form), `ORG:Acme\, Inc\; R&D\nLabs`)
}

// ── general properties ───────────────────────────────────────────────────────

func TestEncode_Idempotent(t *testing.T) {
	form := models.FormState{
		Mode:    models.ModeContactCard,
		Link:    models.Link{URL: "https://example.com"},
		WiFi:    models.WirelessCredential{SSID: "GuestNet", Password: "secret1", Encryption: models.EncryptionWPA},
		Contact: models.ContactCard{FirstName: "Ana", LastName: "Cruz", Email: "ana@example.com"},
	}

	for _, mode := range models.Modes {
		form.Mode = mode
		assert.Equal(t, Encode(form), Encode(form))
	}
}

func TestEncode_InactiveFieldsIgnored(t *testing.T) {
	base := models.FormState{
		Mode: models.ModeWirelessCredential,
		WiFi: models.WirelessCredential{SSID: "GuestNet", Password: "secret1", Encryption: models.EncryptionWPA},
	}
	changed := base
	changed.Link.URL = "https://changed.example"
	changed.Contact.FirstName = "Someone"

	assert.Equal(t, Encode(base), Encode(changed))
}

func TestEncode_UnknownMode(t *testing.T) {
	assert.Equal(t, "", Encode(models.FormState{Link: models.Link{URL: "https://example.com"}}))
}
