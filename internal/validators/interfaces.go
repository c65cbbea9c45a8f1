// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks form input and style values before they reach
// the payload encoder or the raster exporter.
//
// Core concepts:
//   - Validator: generic interface to validate arbitrary values or structures.
//     Supports optional field-level scoping for targeted validation.
//   - FormValidator: required-field rules of the three payload modes.
//     Missing fields wrap ErrInputIncomplete.
//   - StyleValidator: allowed ranges of the style values. Violations wrap
//     ErrInvalidStyle.
//
// Validators never modify their input.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
// Implementations may perform structural validation, semantic checks,
// cross-field rules.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
