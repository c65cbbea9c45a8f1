// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package vector turns a payload string into a scannable code image.
//
// Symbol generation (module placement, error correction) is delegated to
// github.com/skip2/go-qrcode. This package only lays the module bitmap out
// as a square SVG document, which is the vector source consumed by the
// raster exporter, and as a compact block-character string for terminal
// previews.
package vector

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/qryptshare/models"
	qrcode "github.com/skip2/go-qrcode"
)

// DefaultSize is the edge length of the SVG document in user units. It
// doubles as the on-screen display size of the code.
const DefaultSize = 256

// Renderer renders payloads with a fixed recovery level and document size.
// It is stateless and safe for concurrent use.
type Renderer struct {
	level qrcode.RecoveryLevel
	size  int
}

// Option configures a [Renderer].
type Option func(*Renderer)

// WithRecoveryLevel sets the error-correction level.
func WithRecoveryLevel(level qrcode.RecoveryLevel) Option {
	return func(r *Renderer) { r.level = level }
}

// WithSize sets the SVG edge length. Non-positive values are ignored.
func WithSize(size int) Option {
	return func(r *Renderer) {
		if size > 0 {
			r.size = size
		}
	}
}

// NewRenderer returns a Renderer using recovery level Q and [DefaultSize]
// unless overridden by opts.
func NewRenderer(opts ...Option) *Renderer {
	r := &Renderer{
		level: qrcode.High,
		size:  DefaultSize,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Size returns the edge length of the documents produced by SVG.
func (r *Renderer) Size() int {
	return r.size
}

// SVG renders payload as a square SVG document with a white background and
// modules filled with fg. The symbol has no built-in quiet zone; the
// exporter's padding provides it.
func (r *Renderer) SVG(payload string, fg models.Color) ([]byte, error) {
	if payload == "" {
		return nil, ErrEmptyPayload
	}

	code, err := qrcode.New(payload, r.level)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSymbolEncode, err)
	}
	code.DisableBorder = true

	bitmap := code.Bitmap()
	modules := len(bitmap)
	unit := float64(r.size) / float64(modules)
	size := strconv.Itoa(r.size)

	var buf bytes.Buffer
	buf.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" version="1.1" shape-rendering="crispEdges"`)
	buf.WriteString(` width="` + size + `" height="` + size + `" viewBox="0 0 ` + size + ` ` + size + `">`)
	buf.WriteString(`<rect x="0" y="0" width="` + size + `" height="` + size + `" fill="` + models.White.Hex() + `"/>`)
	buf.WriteString(`<g fill="` + fg.Hex() + `">`)

	// one rect per horizontal run of dark modules
	for y, row := range bitmap {
		for x := 0; x < len(row); {
			if !row[x] {
				x++
				continue
			}
			start := x
			for x < len(row) && row[x] {
				x++
			}
			fmt.Fprintf(&buf, `<rect x="%s" y="%s" width="%s" height="%s"/>`,
				coord(float64(start)*unit), coord(float64(y)*unit),
				coord(float64(x-start)*unit), coord(unit))
		}
	}

	buf.WriteString(`</g></svg>`)
	return buf.Bytes(), nil
}

// Terminal renders payload as half-block characters, two module rows per
// text line, including the standard four-module quiet zone. With invert
// set, dark modules are drawn as filled blocks (for light terminals).
func (r *Renderer) Terminal(payload string, invert bool) (string, error) {
	if payload == "" {
		return "", ErrEmptyPayload
	}

	code, err := qrcode.New(payload, r.level)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSymbolEncode, err)
	}

	return strings.TrimRight(code.ToSmallString(invert), "\n"), nil
}

// Modules returns the number of modules per side of the symbol for payload,
// without quiet zone.
func (r *Renderer) Modules(payload string) (int, error) {
	if payload == "" {
		return 0, ErrEmptyPayload
	}
	code, err := qrcode.New(payload, r.level)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrSymbolEncode, err)
	}
	code.DisableBorder = true
	return len(code.Bitmap()), nil
}

func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', 3, 64)
}
