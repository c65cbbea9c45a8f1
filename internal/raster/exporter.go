// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package raster composites a vector code image and a style into a flat,
// opaque, high resolution raster file.
//
// Each export allocates a private surface pre-scaled by [ScaleFactor], fills
// it white, draws the rasterized code at its intrinsic size inside the
// padding, draws the frame last and encodes the result. Exports share no
// mutable state and may run concurrently.
package raster

import (
	"bytes"
	"context"
	"fmt"
	"slices"

	"github.com/MKhiriev/qryptshare/internal/logger"
	"github.com/MKhiriev/qryptshare/models"
	"github.com/gogpu/gg"
)

// Request is everything an export reads. It is copied when an export
// starts, so later changes by the caller are never observed.
type Request struct {
	// Source is the SVG document of the code.
	Source []byte
	Style  models.StyleConfig
	Format models.OutputFormat
}

func (r Request) snapshot() Request {
	r.Source = slices.Clone(r.Source)
	return r
}

// Result is the outcome of one export. Err is set on failure, in which case
// Data is nil.
type Result struct {
	Data   []byte
	Format models.OutputFormat
	EdgePx int
	Err    error
}

// Exporter renders export requests.
type Exporter struct {
	scale  int
	logger *logger.Logger
}

// NewExporter returns an Exporter drawing at [ScaleFactor].
func NewExporter(logger *logger.Logger) *Exporter {
	return &Exporter{
		scale:  ScaleFactor,
		logger: logger,
	}
}

// Export renders req and blocks until the image is encoded.
func (e *Exporter) Export(ctx context.Context, req Request) (Result, error) {
	res := <-e.ExportAsync(ctx, req)
	return res, res.Err
}

// ExportAsync snapshots req and returns at once. The channel receives
// exactly one Result and is then closed. ctx is only consulted before
// decoding starts; once drawing begins the export always runs to the end.
func (e *Exporter) ExportAsync(ctx context.Context, req Request) <-chan Result {
	snap := req.snapshot()
	out := make(chan Result, 1)

	go func() {
		defer close(out)
		res := e.render(ctx, snap)
		if res.Err != nil {
			e.logger.Err(res.Err).Str("format", string(snap.Format)).Msg("export failed")
		} else {
			e.logger.Debug().
				Str("format", string(res.Format)).
				Int("edge_px", res.EdgePx).
				Int("bytes", len(res.Data)).
				Msg("export rendered")
		}
		out <- res
	}()

	return out
}

func (e *Exporter) render(ctx context.Context, req Request) Result {
	fail := func(err error) Result {
		return Result{Format: req.Format, Err: err}
	}

	encode, err := encoderFor(req.Format)
	if err != nil {
		return fail(err)
	}

	icon, contentSize, err := parseSource(req.Source)
	if err != nil {
		return fail(err)
	}

	layout := NewLayout(contentSize, req.Style)
	layout.Scale = e.scale
	if layout.CanvasSize() <= 0 {
		return fail(fmt.Errorf("%w: canvas size %d", ErrSurfaceUnavailable, layout.CanvasSize()))
	}

	dc := gg.NewContext(layout.CanvasSize(), layout.CanvasSize(), gg.WithDeviceScale(float64(layout.Scale)))
	defer dc.Close()
	if dc.PixelWidth() != layout.EdgePx() || dc.PixelHeight() != layout.EdgePx() {
		return fail(fmt.Errorf("%w: got %dx%d px, want %d", ErrSurfaceUnavailable,
			dc.PixelWidth(), dc.PixelHeight(), layout.EdgePx()))
	}

	dc.ClearWithColor(gg.FromColor(models.White))

	if err := ctx.Err(); err != nil {
		return fail(err)
	}

	dec := <-rasterizeAsync(icon, contentSize*layout.Scale)
	if dec.err != nil {
		return fail(dec.err)
	}

	offset := float64(layout.ContentOffset())
	dc.DrawImageEx(gg.ImageBufFromImage(dec.img), gg.DrawImageOptions{
		X:             offset,
		Y:             offset,
		DstWidth:      float64(contentSize),
		DstHeight:     float64(contentSize),
		Interpolation: gg.InterpNearest,
		Opacity:       1,
	})

	if req.Style.HasBorder() {
		fallback, err := drawFrame(dc, layout, req.Style.BorderColor)
		if fallback {
			e.logger.Warn().Msg("rounded frame fill failed, drew straight bands")
		}
		if err != nil {
			return fail(fmt.Errorf("%w: %w", ErrSurfaceUnavailable, err))
		}
	}

	var buf bytes.Buffer
	if err := encode(&buf, dc); err != nil {
		return fail(fmt.Errorf("%w: %w", ErrEncodingUnsupported, err))
	}

	return Result{
		Data:   buf.Bytes(),
		Format: req.Format,
		EdgePx: layout.EdgePx(),
	}
}
