// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package vector

import (
	"errors"
	"fmt"
	"strings"

	qrcode "github.com/skip2/go-qrcode"
)

var (
	// ErrEmptyPayload is returned when asked to render an empty payload.
	ErrEmptyPayload = errors.New("payload is empty")
	// ErrSymbolEncode wraps failures of the symbol encoder, most often a
	// payload too long for any symbol version.
	ErrSymbolEncode = errors.New("failed to encode code symbol")
	// ErrUnknownRecoveryLevel is returned by ParseRecoveryLevel.
	ErrUnknownRecoveryLevel = errors.New("unknown recovery level")
)

// ParseRecoveryLevel maps the standard level letters L, M, Q and H onto the
// symbol encoder's levels.
func ParseRecoveryLevel(s string) (qrcode.RecoveryLevel, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "L":
		return qrcode.Low, nil
	case "M":
		return qrcode.Medium, nil
	case "Q", "":
		return qrcode.High, nil
	case "H":
		return qrcode.Highest, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownRecoveryLevel, s)
	}
}
