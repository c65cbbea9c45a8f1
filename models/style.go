// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned by [ParseColor] for anything other than
// #RGB or #RRGGBB hex notation.
var ErrInvalidColor = errors.New("invalid color")

// Inclusive limits of the user-tunable style values, in unscaled pixels.
const (
	MaxPadding         = 50
	MaxBorderThickness = 15
	MaxBorderRadius    = 40

	// MaxContentSize bounds the edge of the vector code, in unscaled pixels.
	MaxContentSize = 4096

	// DefaultPadding and DefaultBorderThickness apply whenever the style is
	// disabled.
	DefaultPadding         = 24
	DefaultBorderThickness = 0
)

// Color is an opaque sRGB color.
type Color struct {
	R, G, B uint8
}

var (
	// Black is the default code foreground.
	Black = Color{}
	// White is the fixed code background.
	White = Color{R: 0xff, G: 0xff, B: 0xff}
)

// RGBA implements [color.Color]. The alpha channel is always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Hex returns the color in lowercase #rrggbb form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// String implements [fmt.Stringer].
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses "#rgb" or "#rrggbb" (the leading # is optional).
func ParseColor(s string) (Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) == 3 {
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	}
	if len(s) != 6 {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return Color{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// MarshalText implements [encoding.TextMarshaler].
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// StyleConfig governs raster export and the foreground of the preview.
// The code background is always white and is deliberately not configurable.
type StyleConfig struct {
	Enabled         bool  `json:"enabled"`
	LineColor       Color `json:"lineColor"`
	Padding         int   `json:"padding"`
	BorderColor     Color `json:"borderColor"`
	BorderThickness int   `json:"borderThickness"`
	BorderRadius    int   `json:"borderRadius"`
}

// DefaultStyleConfig returns the style a session starts with.
func DefaultStyleConfig() StyleConfig {
	return StyleConfig{
		Enabled:         false,
		LineColor:       Black,
		Padding:         DefaultPadding,
		BorderColor:     Black,
		BorderThickness: DefaultBorderThickness,
		BorderRadius:    0,
	}
}

// EffectivePadding is the quiet zone used by export: the configured padding
// when the style is enabled, [DefaultPadding] otherwise.
func (s StyleConfig) EffectivePadding() int {
	if s.Enabled {
		return s.Padding
	}
	return DefaultPadding
}

// EffectiveBorderThickness is the frame width used by export: the configured
// thickness when the style is enabled, zero otherwise.
func (s StyleConfig) EffectiveBorderThickness() int {
	if s.Enabled {
		return s.BorderThickness
	}
	return DefaultBorderThickness
}

// HasBorder reports whether export draws a frame.
func (s StyleConfig) HasBorder() bool {
	return s.Enabled && s.BorderThickness > 0
}

// Foreground is the color of the code modules.
func (s StyleConfig) Foreground() Color {
	if s.Enabled {
		return s.LineColor
	}
	return Black
}

// Clamped returns a copy with every numeric value forced into its allowed
// range.
func (s StyleConfig) Clamped() StyleConfig {
	s.Padding = clamp(s.Padding, 0, MaxPadding)
	s.BorderThickness = clamp(s.BorderThickness, 0, MaxBorderThickness)
	s.BorderRadius = clamp(s.BorderRadius, 0, MaxBorderRadius)
	return s
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
