// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package raster

import "github.com/MKhiriev/qryptshare/models"

// ScaleFactor is the device scale of every export surface.
const ScaleFactor = 3

// Layout holds the geometry of one export in unscaled units.
type Layout struct {
	ContentSize     int
	Padding         int
	BorderThickness int
	BorderRadius    int
	Scale           int
}

// NewLayout derives the export geometry from the intrinsic size of the
// vector source and the style. A disabled style yields the default padding
// and no border.
func NewLayout(contentSize int, style models.StyleConfig) Layout {
	l := Layout{
		ContentSize:     contentSize,
		Padding:         style.EffectivePadding(),
		BorderThickness: style.EffectiveBorderThickness(),
		Scale:           ScaleFactor,
	}
	if style.Enabled {
		l.BorderRadius = style.BorderRadius
	}
	return l
}

// CanvasSize is content + 2*padding + 2*border.
func (l Layout) CanvasSize() int {
	return l.ContentSize + 2*l.Padding + 2*l.BorderThickness
}

// EdgePx is the edge of the encoded image in pixels.
func (l Layout) EdgePx() int {
	return l.CanvasSize() * l.Scale
}

// ContentOffset is where the code is drawn on both axes.
func (l Layout) ContentOffset() int {
	return l.BorderThickness + l.Padding
}

// OuterRadius is the corner radius of the frame's outer edge.
func (l Layout) OuterRadius() float64 {
	return float64(l.BorderRadius) + float64(l.BorderThickness)/2
}

// InnerRadius is the corner radius of the frame's inner edge.
func (l Layout) InnerRadius() float64 {
	return float64(l.BorderRadius)
}
