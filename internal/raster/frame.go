// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package raster

import (
	"errors"
	"image/color"

	"github.com/gogpu/gg"
)

// frameCanvas is what drawFrame needs from a drawing context.
type frameCanvas interface {
	pathBuilder
	SetColor(c color.Color)
	SetFillRule(rule gg.FillRule)
	DrawRectangle(x, y, w, h float64)
	Fill() error
}

// drawFrame fills the region between an outer rounded rectangle spanning the
// whole canvas and an inner one inset by the border thickness. If the
// even-odd fill fails, four straight bands are drawn instead and
// usedFallback is set; corners are then square.
func drawFrame(dc frameCanvas, l Layout, c color.Color) (usedFallback bool, err error) {
	size := float64(l.CanvasSize())
	t := float64(l.BorderThickness)

	dc.SetColor(c)
	dc.SetFillRule(gg.FillRuleEvenOdd)
	traceRoundedRect(dc, 0, 0, size, size, l.OuterRadius())
	traceRoundedRect(dc, t, t, size-2*t, size-2*t, l.InnerRadius())

	fillErr := dc.Fill()
	if fillErr == nil {
		return false, nil
	}

	dc.SetFillRule(gg.FillRuleNonZero)
	bands := [4][4]float64{
		{0, 0, size, t},
		{0, size - t, size, t},
		{0, t, t, size - 2*t},
		{size - t, t, t, size - 2*t},
	}
	for _, b := range bands {
		dc.DrawRectangle(b[0], b[1], b[2], b[3])
		if err = dc.Fill(); err != nil {
			return true, errors.Join(fillErr, err)
		}
	}

	return true, nil
}
