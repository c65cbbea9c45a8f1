// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package raster

import "math"

// kappa places cubic control points so that a quarter curve approximates a
// circular arc.
const kappa = 0.5522847498307936

// pathBuilder is the subset of a drawing context needed to trace paths.
// *gg.Context satisfies it.
type pathBuilder interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	CubicTo(c1x, c1y, c2x, c2y, x, y float64)
	ClosePath()
}

// traceRoundedRect adds one closed subpath to p: four straight edges joined
// by four quarter arcs of radius r. r is clamped to [0, min(w,h)/2]. The
// path runs clockwise starting at the end of the top-left arc.
func traceRoundedRect(p pathBuilder, x, y, w, h, r float64) {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))

	if r == 0 {
		p.MoveTo(x, y)
		p.LineTo(x+w, y)
		p.LineTo(x+w, y+h)
		p.LineTo(x, y+h)
		p.ClosePath()
		return
	}

	k := r * kappa
	right, bottom := x+w, y+h

	p.MoveTo(x+r, y)
	p.LineTo(right-r, y)
	p.CubicTo(right-r+k, y, right, y+r-k, right, y+r)
	p.LineTo(right, bottom-r)
	p.CubicTo(right, bottom-r+k, right-r+k, bottom, right-r, bottom)
	p.LineTo(x+r, bottom)
	p.CubicTo(x+r-k, bottom, x, bottom-r+k, x, bottom-r)
	p.LineTo(x, y+r)
	p.CubicTo(x, y+r-k, x+r-k, y, x+r, y)
	p.ClosePath()
}
