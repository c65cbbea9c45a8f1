// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package raster

import (
	"errors"
	"image/color"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y float64 }

type segment struct {
	op     string
	points []point
}

// recorder captures path operations and fills.
type recorder struct {
	segments []segment
	fills    int
	rule     gg.FillRule
	rects    [][4]float64
	failFill int // number of leading Fill calls that fail
	col      color.Color
}

func (r *recorder) MoveTo(x, y float64) {
	r.segments = append(r.segments, segment{"M", []point{{x, y}}})
}

func (r *recorder) LineTo(x, y float64) {
	r.segments = append(r.segments, segment{"L", []point{{x, y}}})
}

func (r *recorder) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.segments = append(r.segments, segment{"C", []point{{c1x, c1y}, {c2x, c2y}, {x, y}}})
}

func (r *recorder) ClosePath() {
	r.segments = append(r.segments, segment{op: "Z"})
}

func (r *recorder) SetColor(c color.Color)       { r.col = c }
func (r *recorder) SetFillRule(rule gg.FillRule) { r.rule = rule }

func (r *recorder) DrawRectangle(x, y, w, h float64) {
	r.rects = append(r.rects, [4]float64{x, y, w, h})
}

func (r *recorder) Fill() error {
	r.fills++
	if r.fills <= r.failFill {
		return errors.New("fill failed")
	}
	return nil
}

func (r *recorder) ops() string {
	s := ""
	for _, seg := range r.segments {
		s += seg.op
	}
	return s
}

func TestTraceRoundedRect_Shape(t *testing.T) {
	rec := &recorder{}
	traceRoundedRect(rec, 10, 20, 100, 50, 8)

	assert.Equal(t, "MLCLCLCLCZ", rec.ops())
	assert.Equal(t, point{18, 20}, rec.segments[0].points[0], "starts after the top-left arc")

	last := rec.segments[len(rec.segments)-2].points
	assert.Equal(t, point{18, 20}, last[len(last)-1], "ends where it started")

	for _, seg := range rec.segments {
		for _, p := range seg.points {
			assert.GreaterOrEqual(t, p.x, 10.0)
			assert.LessOrEqual(t, p.x, 110.0)
			assert.GreaterOrEqual(t, p.y, 20.0)
			assert.LessOrEqual(t, p.y, 70.0)
		}
	}
}

func TestTraceRoundedRect_ArcEndpoints(t *testing.T) {
	rec := &recorder{}
	traceRoundedRect(rec, 0, 0, 100, 100, 10)

	var ends []point
	for _, seg := range rec.segments {
		if seg.op == "C" {
			ends = append(ends, seg.points[2])
		}
	}
	require.Len(t, ends, 4)
	assert.Equal(t, []point{{100, 10}, {90, 100}, {0, 90}, {10, 0}}, ends)
}

func TestTraceRoundedRect_ClampsRadius(t *testing.T) {
	rec := &recorder{}
	traceRoundedRect(rec, 0, 0, 40, 20, 100)

	// r clamps to 10: top edge collapses to x in [10, 30]
	assert.Equal(t, point{10, 0}, rec.segments[0].points[0])
	assert.Equal(t, point{30, 0}, rec.segments[1].points[0])
}

func TestTraceRoundedRect_ZeroRadius(t *testing.T) {
	for _, r := range []float64{0, -5} {
		rec := &recorder{}
		traceRoundedRect(rec, 1, 2, 3, 4, r)

		assert.Equal(t, "MLLLZ", rec.ops())
		assert.Equal(t, point{1, 2}, rec.segments[0].points[0])
		assert.Equal(t, point{4, 6}, rec.segments[2].points[0])
	}
}

func TestDrawFrame_EvenOdd(t *testing.T) {
	rec := &recorder{}
	l := Layout{ContentSize: 256, Padding: 10, BorderThickness: 5, BorderRadius: 12, Scale: 3}

	fallback, err := drawFrame(rec, l, color.Black)
	require.NoError(t, err)

	assert.False(t, fallback)
	assert.Equal(t, gg.FillRuleEvenOdd, rec.rule)
	assert.Equal(t, 1, rec.fills)
	assert.Equal(t, "MLCLCLCLCZMLCLCLCLCZ", rec.ops(), "outer and inner subpaths")
	assert.Empty(t, rec.rects)

	// outer starts at its radius 12+2.5, inner is inset by 5 with radius 12
	assert.Equal(t, point{14.5, 0}, rec.segments[0].points[0])
	assert.Equal(t, point{17, 5}, rec.segments[10].points[0])
}

func TestDrawFrame_FallsBackToBands(t *testing.T) {
	rec := &recorder{failFill: 1}
	l := Layout{ContentSize: 256, Padding: 10, BorderThickness: 5, BorderRadius: 12, Scale: 3}

	fallback, err := drawFrame(rec, l, color.Black)
	require.NoError(t, err)

	assert.True(t, fallback)
	assert.Equal(t, gg.FillRuleNonZero, rec.rule)
	assert.Equal(t, 5, rec.fills)
	assert.Equal(t, [][4]float64{
		{0, 0, 286, 5},
		{0, 281, 286, 5},
		{0, 5, 5, 276},
		{281, 5, 5, 276},
	}, rec.rects)
}

func TestDrawFrame_FallbackFailure(t *testing.T) {
	rec := &recorder{failFill: 2}
	l := Layout{ContentSize: 100, BorderThickness: 2, Scale: 3}

	fallback, err := drawFrame(rec, l, color.Black)
	assert.True(t, fallback)
	assert.Error(t, err)
}
