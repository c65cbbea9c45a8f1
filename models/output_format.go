// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"strings"
)

// ErrUnknownOutputFormat is returned for a format token that is not png,
// jpeg/jpg or webp.
var ErrUnknownOutputFormat = errors.New("unknown output format")

// OutputFormat is the raster encoding requested for an export.
type OutputFormat string

const (
	FormatPNG  OutputFormat = "png"
	FormatJPEG OutputFormat = "jpeg"
	FormatWebP OutputFormat = "webp"
)

// OutputFormats lists the formats offered to the user.
var OutputFormats = []OutputFormat{FormatPNG, FormatJPEG, FormatWebP}

// Ext returns the file extension without the dot. JPEG files use "jpg".
func (f OutputFormat) Ext() string {
	if f == FormatJPEG {
		return "jpg"
	}
	return string(f)
}

// MIMEType returns the media type of the encoded image.
func (f OutputFormat) MIMEType() string {
	return "image/" + string(f)
}

// ParseOutputFormat accepts "png", "jpeg", "jpg" and "webp" in any case.
func ParseOutputFormat(s string) (OutputFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "png":
		return FormatPNG, nil
	case "jpeg", "jpg":
		return FormatJPEG, nil
	case "webp":
		return FormatWebP, nil
	default:
		return "", ErrUnknownOutputFormat
	}
}

// ExportedFile is a finished, downloadable raster export.
type ExportedFile struct {
	// Name is "<product>-<mode>.<ext>".
	Name string
	// Format is the encoding of Data.
	Format OutputFormat
	// EdgePx is the width and height of the square image in pixels.
	EdgePx int
	// Data holds the encoded image bytes.
	Data []byte
}

// ExportFileName builds the download name for an export,
// e.g. "qry-share-wifi.png".
func ExportFileName(product string, mode Mode, format OutputFormat) string {
	return product + "-" + mode.String() + "." + format.Ext()
}

// ExportResult is delivered exactly once per asynchronous export: either a
// finished file or the error that stopped it.
type ExportResult struct {
	File ExportedFile
	Err  error
}
