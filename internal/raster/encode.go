// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package raster

import (
	"fmt"
	"io"

	"github.com/HugoSmits86/nativewebp"
	"github.com/MKhiriev/qryptshare/models"
	"github.com/gogpu/gg"
)

// jpegQuality is the maximum quality accepted by image/jpeg.
const jpegQuality = 100

type encodeFunc func(w io.Writer, dc *gg.Context) error

// encoders maps each output format to its encoder. PNG and WebP are
// lossless.
var encoders = map[models.OutputFormat]encodeFunc{
	models.FormatPNG: func(w io.Writer, dc *gg.Context) error {
		return dc.EncodePNG(w)
	},
	models.FormatJPEG: func(w io.Writer, dc *gg.Context) error {
		return dc.EncodeJPEG(w, jpegQuality)
	},
	models.FormatWebP: func(w io.Writer, dc *gg.Context) error {
		return nativewebp.Encode(w, dc.Image(), nil)
	},
}

func encoderFor(format models.OutputFormat) (encodeFunc, error) {
	enc, ok := encoders[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEncodingUnsupported, format)
	}
	return enc, nil
}

// Supports reports whether format has a registered encoder.
func Supports(format models.OutputFormat) bool {
	_, ok := encoders[format]
	return ok
}

// Supports reports whether the exporter can encode format.
func (e *Exporter) Supports(format models.OutputFormat) bool {
	return Supports(format)
}
