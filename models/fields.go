// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownEncryption is returned when an encryption token is not one of
// WPA, WEP or nopass.
var ErrUnknownEncryption = errors.New("unknown encryption")

// Encryption is the wireless security scheme. Its string value is the literal
// token written after "T:" in the WIFI payload.
type Encryption string

const (
	// EncryptionWPA covers WPA and WPA2 personal networks.
	EncryptionWPA Encryption = "WPA"
	// EncryptionWEP is the legacy WEP scheme.
	EncryptionWEP Encryption = "WEP"
	// EncryptionNone marks an open network; no password is encoded.
	EncryptionNone Encryption = "nopass"
)

// Encryptions lists the selectable schemes in the order shown to the user.
var Encryptions = []Encryption{EncryptionWPA, EncryptionWEP, EncryptionNone}

// Label returns the text shown in the encryption selector.
func (e Encryption) Label() string {
	switch e {
	case EncryptionWPA:
		return "WPA/WPA2"
	case EncryptionWEP:
		return "WEP"
	case EncryptionNone:
		return "No Password"
	default:
		return string(e)
	}
}

// ParseEncryption accepts the payload tokens plus "none" and the empty string
// (both meaning an open network).
func ParseEncryption(s string) (Encryption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wpa", "wpa2", "wpa/wpa2":
		return EncryptionWPA, nil
	case "wep":
		return EncryptionWEP, nil
	case "nopass", "none", "":
		return EncryptionNone, nil
	default:
		return "", ErrUnknownEncryption
	}
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (e *Encryption) UnmarshalText(text []byte) error {
	parsed, err := ParseEncryption(string(text))
	if err != nil {
		return err
	}
	*e = parsed
	return nil
}

// Link holds the field of [ModeLink].
type Link struct {
	// URL is encoded without any transformation.
	URL string `json:"url"`
}

// WirelessCredential holds the fields of [ModeWirelessCredential].
type WirelessCredential struct {
	// SSID is the network name. Required.
	SSID string `json:"ssid"`
	// Password is required unless Encryption is [EncryptionNone].
	Password string `json:"password"`
	// Encryption selects the security scheme.
	Encryption Encryption `json:"encryption"`
	// Hidden marks a network that does not broadcast its SSID.
	Hidden bool `json:"hidden"`
}

// ContactCard holds the fields of [ModeContactCard]. At least one of
// FirstName and LastName is required; the rest are optional.
type ContactCard struct {
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Mobile       string `json:"mobile"`
	Email        string `json:"email"`
	JobTitle     string `json:"jobTitle"`
	Organization string `json:"organization"`
	Website      string `json:"website"`
}

// FormState is the complete set of user input for one session.
//
// Every mode keeps its own fields; switching Mode changes which group is
// encoded but never clears the others.
type FormState struct {
	Mode    Mode               `json:"mode"`
	Link    Link               `json:"link"`
	WiFi    WirelessCredential `json:"wifi"`
	Contact ContactCard        `json:"contact"`
}

// NewFormState returns the session-start state: link mode, empty fields and
// WPA selected.
func NewFormState() FormState {
	return FormState{
		Mode: ModeLink,
		WiFi: WirelessCredential{Encryption: EncryptionWPA},
	}
}
