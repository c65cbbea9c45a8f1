// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/qryptshare/models"
)

// Field name constants for style validation.
const (
	FieldPadding         = "padding"
	FieldBorderThickness = "border_thickness"
	FieldBorderRadius    = "border_radius"
)

// StyleValidator implements Validator for models.StyleConfig. Values are
// checked even when the style is disabled, so that enabling it later can
// never produce an invalid export.
type StyleValidator struct{}

// NewStyleValidator constructs a StyleValidator and returns it as Validator.
func NewStyleValidator() Validator {
	return &StyleValidator{}
}

// Validate checks that each numeric style value lies within its inclusive
// range.
func (v *StyleValidator) Validate(_ context.Context, obj any, fields ...string) error {
	var style models.StyleConfig
	switch value := obj.(type) {
	case models.StyleConfig:
		style = value
	case *models.StyleConfig:
		style = *value
	default:
		return ErrUnsupportedType
	}

	if len(fields) == 0 {
		fields = []string{FieldPadding, FieldBorderThickness, FieldBorderRadius}
	}

	for _, f := range fields {
		switch f {
		case FieldPadding:
			if err := inRange(ErrPaddingOutOfRange, style.Padding, models.MaxPadding); err != nil {
				return err
			}
		case FieldBorderThickness:
			if err := inRange(ErrBorderThicknessOutOfRange, style.BorderThickness, models.MaxBorderThickness); err != nil {
				return err
			}
		case FieldBorderRadius:
			if err := inRange(ErrBorderRadiusOutOfRange, style.BorderRadius, models.MaxBorderRadius); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, f)
		}
	}

	return nil
}

func inRange(sentinel error, v, hi int) error {
	if v < 0 || v > hi {
		return fmt.Errorf("%w: %d not in [0, %d]", sentinel, v, hi)
	}
	return nil
}
