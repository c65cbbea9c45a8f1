// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qryptshare/models"
)

// Field name constants used to restrict form validation to a subset of
// fields.
const (
	// FieldMode targets the active mode of the form.
	FieldMode = "mode"

	// FieldURL targets the link URL.
	FieldURL = "url"

	// FieldSSID targets the wireless network name.
	FieldSSID = "ssid"

	// FieldEncryption targets the wireless security type.
	FieldEncryption = "encryption"

	// FieldPassword targets the wireless password. It is only required when
	// the network is secured.
	FieldPassword = "password"

	// FieldName targets the contact first/last name pair.
	FieldName = "name"
)

// FormValidator implements Validator for models.FormState and for each of
// the three field sets on their own.
type FormValidator struct{}

// NewFormValidator constructs a FormValidator and returns it as Validator.
func NewFormValidator() Validator {
	return &FormValidator{}
}

// Validate dispatches on the dynamic type of obj. A FormState is validated
// against the field set of its active mode only.
func (v *FormValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.FormState:
		return v.validateForm(ctx, value, fields...)
	case *models.FormState:
		return v.validateForm(ctx, *value, fields...)

	case models.Link:
		return v.validateLink(value, fields...)
	case *models.Link:
		return v.validateLink(*value, fields...)

	case models.WirelessCredential:
		return v.validateWiFi(value, fields...)
	case *models.WirelessCredential:
		return v.validateWiFi(*value, fields...)

	case models.ContactCard:
		return v.validateContact(value, fields...)
	case *models.ContactCard:
		return v.validateContact(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FormValidator) validateForm(ctx context.Context, form models.FormState, fields ...string) error {
	if !form.Mode.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidMode, form.Mode)
	}

	// FieldMode alone only checks the mode
	if len(fields) == 1 && fields[0] == FieldMode {
		return nil
	}

	switch form.Mode {
	case models.ModeLink:
		return v.validateLink(form.Link, fields...)
	case models.ModeWirelessCredential:
		return v.validateWiFi(form.WiFi, fields...)
	default:
		return v.validateContact(form.Contact, fields...)
	}
}

func (v *FormValidator) validateLink(l models.Link, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldURL}
	}

	for _, f := range fields {
		switch f {
		case FieldURL:
			if l.URL == "" {
				return ErrMissingURL
			}
		case FieldMode:
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *FormValidator) validateWiFi(w models.WirelessCredential, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSSID, FieldEncryption, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldSSID:
			if w.SSID == "" {
				return ErrMissingSSID
			}
		case FieldEncryption:
			if !isValidEncryption(w.Encryption) {
				return fmt.Errorf("%w: %q", ErrInvalidEncryption, w.Encryption)
			}
		case FieldPassword:
			if w.Encryption != models.EncryptionNone && w.Encryption != "" && w.Password == "" {
				return ErrMissingPassword
			}
		case FieldMode:
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func (v *FormValidator) validateContact(c models.ContactCard, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if c.FirstName == "" && c.LastName == "" {
				return ErrMissingName
			}
		case FieldMode:
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

// isValidEncryption accepts the three known types and the empty value,
// which the encoder treats as an open network.
func isValidEncryption(e models.Encryption) bool {
	if e == "" {
		return true
	}
	for _, known := range models.Encryptions {
		if e == known {
			return true
		}
	}
	return false
}
