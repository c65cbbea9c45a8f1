// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package raster

import "errors"

var (
	// ErrRenderTargetMissing means the vector source is absent, empty or
	// could not be decoded into a drawable image.
	ErrRenderTargetMissing = errors.New("vector source is missing or unreadable")
	// ErrSurfaceUnavailable means a drawing surface of the required size
	// could not be allocated.
	ErrSurfaceUnavailable = errors.New("drawing surface is unavailable")
	// ErrEncodingUnsupported means no encoder is registered for the requested
	// output format, or the encoder failed.
	ErrEncodingUnsupported = errors.New("output encoding is not supported")
)
