// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors produced while decoding request input. Callers can match
// against them with [errors.Is].
var (
	// ErrInvalidJSON is returned when the request body is not a valid JSON
	// document of the expected shape.
	ErrInvalidJSON = errors.New("invalid JSON was passed")

	// ErrBodyTooLarge is returned when the request body exceeds
	// [maxRequestBodySize].
	ErrBodyTooLarge = errors.New("request body is too large")
)
