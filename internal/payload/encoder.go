// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package payload converts form input into the text that gets encoded into a
// scannable code.
//
// Three record types are supported: a web link (verbatim URL), a wireless
// network credential (WIFI: format) and a contact card (vCard 3.0). The
// encoder is a pure function of the form state: no I/O, no hidden state, and
// an empty result means "nothing to encode yet".
package payload

import (
	"strconv"
	"strings"

	"github.com/MKhiriev/qryptshare/models"
)

// Encoder builds payload strings. The zero value emits field values
// verbatim; use [WithEscaping] to escape reserved delimiter characters.
type Encoder struct {
	escape bool
}

// Option configures an [Encoder].
type Option func(*Encoder)

// WithEscaping makes the encoder backslash-escape the reserved characters of
// the WIFI and vCard formats inside user supplied values. Link payloads are
// never altered.
func WithEscaping() Option {
	return func(e *Encoder) { e.escape = true }
}

// New returns an Encoder configured with opts.
func New(opts ...Option) *Encoder {
	e := &Encoder{}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

var defaultEncoder = New()

// Encode runs the default (verbatim) encoder on form.
func Encode(form models.FormState) string {
	return defaultEncoder.Encode(form)
}

// Encode returns the payload for the active mode of form, or "" when the
// required fields of that mode are unset. Fields of inactive modes are
// ignored.
func (e *Encoder) Encode(form models.FormState) string {
	switch form.Mode {
	case models.ModeLink:
		return e.Link(form.Link)
	case models.ModeWirelessCredential:
		return e.WiFi(form.WiFi)
	case models.ModeContactCard:
		return e.Contact(form.Contact)
	default:
		return ""
	}
}

// Link returns the URL unchanged.
func (e *Encoder) Link(l models.Link) string {
	return l.URL
}

// WiFi returns WIFI:T:<enc>;S:<ssid>;[P:<password>;]H:<hidden>;;
// The password segment is present only for WPA and WEP.
func (e *Encoder) WiFi(w models.WirelessCredential) string {
	if w.SSID == "" {
		return ""
	}

	enc := w.Encryption
	if enc == "" {
		enc = models.EncryptionNone
	}

	var b strings.Builder
	b.WriteString("WIFI:T:")
	b.WriteString(string(enc))
	b.WriteString(";S:")
	b.WriteString(e.wifiValue(w.SSID))
	b.WriteString(";")
	if enc != models.EncryptionNone {
		b.WriteString("P:")
		b.WriteString(e.wifiValue(w.Password))
		b.WriteString(";")
	}
	b.WriteString("H:")
	b.WriteString(strconv.FormatBool(w.Hidden))
	b.WriteString(";;")

	return b.String()
}

// Contact returns a newline-joined vCard 3.0 record. Optional properties
// appear only when set, always in the order TITLE, ORG, TEL, EMAIL, URL.
func (e *Encoder) Contact(c models.ContactCard) string {
	if c.FirstName == "" && c.LastName == "" {
		return ""
	}

	first := e.vcardValue(c.FirstName)
	last := e.vcardValue(c.LastName)

	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + last + ";" + first + ";;;",
		"FN:" + first + " " + last,
	}

	optional := []struct {
		property string
		value    string
	}{
		{"TITLE", c.JobTitle},
		{"ORG", c.Organization},
		{"TEL;TYPE=CELL", c.Mobile},
		{"EMAIL", c.Email},
		{"URL", c.Website},
	}
	for _, p := range optional {
		if p.value == "" {
			continue
		}
		lines = append(lines, p.property+":"+e.vcardValue(p.value))
	}

	lines = append(lines, "END:VCARD")
	return strings.Join(lines, "\n")
}

var (
	wifiEscaper  = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, `:`, `\:`, `"`, `\"`)
	vcardEscaper = strings.NewReplacer(`\`, `\\`, `;`, `\;`, `,`, `\,`, "\r\n", `\n`, "\n", `\n`)
)

func (e *Encoder) wifiValue(v string) string {
	if !e.escape {
		return v
	}
	return wifiEscaper.Replace(v)
}

func (e *Encoder) vcardValue(v string) string {
	if !e.escape {
		return v
	}
	return vcardEscaper.Replace(v)
}
