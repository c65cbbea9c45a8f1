// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownMode is returned when a textual mode token does not name one of
// the supported payload kinds.
var ErrUnknownMode = errors.New("unknown mode")

// Mode selects which field set of a [FormState] is active and therefore which
// encoding rule produces the payload.
// The value determines how the form must be interpreted.
type Mode int

const (
	// ModeLink encodes a single URL verbatim.
	ModeLink Mode = 1

	// ModeWirelessCredential encodes network credentials in the WIFI: text
	// format understood by mobile camera scanners.
	ModeWirelessCredential Mode = 2

	// ModeContactCard encodes a vCard 3.0 record.
	ModeContactCard Mode = 3
)

// Modes lists every supported mode in menu order.
var Modes = []Mode{ModeLink, ModeWirelessCredential, ModeContactCard}

// String returns the short token used in file names and JSON payloads
// ("url", "wifi", "contact").
func (m Mode) String() string {
	switch m {
	case ModeLink:
		return "url"
	case ModeWirelessCredential:
		return "wifi"
	case ModeContactCard:
		return "contact"
	default:
		return "unknown"
	}
}

// Title returns the human readable label shown in menus.
func (m Mode) Title() string {
	switch m {
	case ModeLink:
		return "Link / URL"
	case ModeWirelessCredential:
		return "WiFi Access"
	case ModeContactCard:
		return "Contact Card"
	default:
		return "Unknown"
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m >= ModeLink && m <= ModeContactCard
}

// ParseMode converts a token produced by [Mode.String] back into a Mode.
// Matching is case-insensitive; "link" is accepted as an alias of "url".
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "url", "link":
		return ModeLink, nil
	case "wifi":
		return ModeWirelessCredential, nil
	case "contact", "vcard":
		return ModeContactCard, nil
	default:
		return 0, ErrUnknownMode
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (m Mode) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, ErrUnknownMode
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Mode) UnmarshalText(text []byte) error {
	parsed, err := ParseMode(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
