// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package raster

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/MKhiriev/qryptshare/models"
	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// MaxContentSize bounds the intrinsic size accepted from a vector source.
const MaxContentSize = models.MaxContentSize

// decoded is the outcome of an asynchronous rasterization.
type decoded struct {
	img image.Image
	err error
}

// parseSource reads the SVG document and returns it with its intrinsic
// edge length.
func parseSource(src []byte) (icon *oksvg.SvgIcon, contentSize int, err error) {
	if len(src) == 0 {
		return nil, 0, ErrRenderTargetMissing
	}

	defer func() {
		if r := recover(); r != nil {
			icon, contentSize, err = nil, 0, fmt.Errorf("%w: %v", ErrRenderTargetMissing, r)
		}
	}()

	icon, err = oksvg.ReadIconStream(bytes.NewReader(src), oksvg.StrictErrorMode)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrRenderTargetMissing, err)
	}

	w := icon.ViewBox.W
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return nil, 0, fmt.Errorf("%w: source has no intrinsic size", ErrRenderTargetMissing)
	}
	contentSize = int(math.Round(w))
	if contentSize > MaxContentSize {
		return nil, 0, fmt.Errorf("%w: source size %d exceeds %d", ErrSurfaceUnavailable, contentSize, MaxContentSize)
	}

	return icon, contentSize, nil
}

// rasterize draws icon into a square RGBA image of edge px.
func rasterize(icon *oksvg.SvgIcon, px int) (img image.Image, err error) {
	defer func() {
		if r := recover(); r != nil {
			img, err = nil, fmt.Errorf("%w: %v", ErrRenderTargetMissing, r)
		}
	}()

	dst := image.NewRGBA(image.Rect(0, 0, px, px))
	icon.SetTarget(0, 0, float64(px), float64(px))
	scanner := rasterx.NewScannerGV(px, px, dst, dst.Bounds())
	icon.Draw(rasterx.NewDasher(px, px, scanner), 1)

	return dst, nil
}

// rasterizeAsync runs rasterize on its own goroutine. The returned channel
// receives exactly one value.
func rasterizeAsync(icon *oksvg.SvgIcon, px int) <-chan decoded {
	out := make(chan decoded, 1)
	go func() {
		img, err := rasterize(icon, px)
		out <- decoded{img: img, err: err}
	}()
	return out
}
