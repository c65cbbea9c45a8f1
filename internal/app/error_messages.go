// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the user-facing wording shared by the qry-share
// terminal client.
//
// All Msg* constants are human-readable notices shown in the TUI status line.
// UserMessage turns any error returned by the service layer into one of them,
// so raw error chains never reach the screen.
package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/qryptshare/internal/raster"
	"github.com/MKhiriev/qryptshare/internal/service"
	"github.com/MKhiriev/qryptshare/internal/store"
	"github.com/MKhiriev/qryptshare/internal/validators"
	"github.com/MKhiriev/qryptshare/internal/vector"
)

const (
	// MsgTypeToGenerate is shown in place of the preview while the payload
	// is empty.
	MsgTypeToGenerate = "Type to generate"

	// MsgExportDisabled is shown when an export hotkey is pressed while the
	// form is incomplete.
	MsgExportDisabled = "Fill in the required fields to enable export"

	MsgMissingURL      = "Enter a URL"
	MsgMissingSSID     = "Enter the network name"
	MsgMissingPassword = "Enter the network password or choose No Password"
	MsgMissingName     = "Enter a first or last name"

	// MsgInvalidStyle is shown when a style value is outside its range.
	MsgInvalidStyle = "Style value is out of range"

	// MsgInvalidColor is shown when a color field does not hold #RRGGBB.
	MsgInvalidColor = "Colors must look like #RRGGBB"

	// MsgRenderFailed covers a vector source that could not be produced or
	// decoded and a drawing surface that could not be allocated.
	MsgRenderFailed = "Could not render the code"

	// MsgPayloadTooLong is shown when the payload does not fit into a code.
	MsgPayloadTooLong = "Too much data to fit into a code"

	// MsgFormatUnsupported is shown when the requested image format has no
	// encoder.
	MsgFormatUnsupported = "This image format is not supported"

	// MsgSaveFailed is shown when the exported file could not be written.
	MsgSaveFailed = "Could not save the exported file"

	// MsgCopyFailed is shown when the clipboard is unavailable.
	MsgCopyFailed = "Could not copy to the clipboard"

	// MsgCancelled is shown when an export was abandoned.
	MsgCancelled = "Export cancelled"

	// MsgInternalError is the fallback for anything unclassified.
	MsgInternalError = "Something went wrong"

	// MsgCopied confirms a clipboard copy.
	MsgCopied = "Payload copied to the clipboard"

	// MsgSavedPrefix precedes the path of a saved export.
	MsgSavedPrefix = "Saved "
)

// noticeByError is checked in order; the first match wins, so the more
// specific sentinels come before the classes that wrap them.
var noticeByError = []struct {
	err error
	msg string
}{
	{validators.ErrMissingURL, MsgMissingURL},
	{validators.ErrMissingSSID, MsgMissingSSID},
	{validators.ErrMissingPassword, MsgMissingPassword},
	{validators.ErrMissingName, MsgMissingName},
	{validators.ErrInputIncomplete, MsgExportDisabled},
	{service.ErrEmptyPayload, MsgExportDisabled},
	{validators.ErrInvalidStyle, MsgInvalidStyle},
	{vector.ErrSymbolEncode, MsgPayloadTooLong},
	{raster.ErrRenderTargetMissing, MsgRenderFailed},
	{raster.ErrSurfaceUnavailable, MsgRenderFailed},
	{raster.ErrEncodingUnsupported, MsgFormatUnsupported},
	{store.ErrExportDirUnavailable, MsgSaveFailed},
	{store.ErrExportNotSaved, MsgSaveFailed},
	{service.ErrExportStorageMissing, MsgSaveFailed},
	{context.Canceled, MsgCancelled},
	{context.DeadlineExceeded, MsgCancelled},
}

// UserMessage returns the notice for err, or an empty string for nil.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	for _, n := range noticeByError {
		if errors.Is(err, n.err) {
			return n.msg
		}
	}

	return MsgInternalError
}
