// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// AppBuildInfo carries the product name and the build metadata injected by
// linker flags. It is shown in the TUI about window and logged at startup.
type AppBuildInfo struct {
	product string
	version string
	date    string
	commit  string
}

// NewAppBuildInfo constructs [AppBuildInfo]. Blank values are reported as
// "N/A" by the accessors.
func NewAppBuildInfo(product, version, date, commit string) AppBuildInfo {
	return AppBuildInfo{
		product: product,
		version: version,
		date:    date,
		commit:  commit,
	}
}

// Product returns the product name used as the export file prefix.
func (a AppBuildInfo) Product() string { return OrNA(a.product) }

// Version returns the semantic version string of the build.
func (a AppBuildInfo) Version() string { return OrNA(a.version) }

// Date returns the build timestamp string.
func (a AppBuildInfo) Date() string { return OrNA(a.date) }

// Commit returns the source-control commit hash used for the build.
func (a AppBuildInfo) Commit() string { return OrNA(a.commit) }

// OrNA returns v, or "N/A" when v is blank.
func OrNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
