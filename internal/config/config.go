// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// qry-share binaries. It aggregates all sub-configurations and is populated
// by merging values from environment variables, command-line flags, an
// optional JSON file and finally the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds product naming, version and payload encoding settings.
	App App `envPrefix:"APP_"`

	// Server holds network address and timeout settings for the HTTP
	// export service.
	Server Server `envPrefix:"SERVER_"`

	// Export holds raster export settings shared by both binaries.
	Export Export `envPrefix:"EXPORT_"`

	// Style holds the style a new session starts with.
	Style Style `envPrefix:"STYLE_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged after the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// ProductName prefixes every exported file name
	// ("<product>-<mode>.<ext>").
	// Env: APP_PRODUCT_NAME
	ProductName string `env:"PRODUCT_NAME"`

	// Version is the semantic version string of the running application
	// (e.g. "1.2.3"). Exposed via the /api/version endpoint.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// EscapeReserved enables backslash escaping of the WIFI and vCard
	// delimiter characters inside field values. Off by default, in which
	// case values are encoded verbatim.
	// Env: APP_ESCAPE_RESERVED
	EscapeReserved bool `env:"ESCAPE_RESERVED"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Export holds raster export settings.
type Export struct {
	// OutputDir is the directory the terminal client writes exported files
	// into.
	// Env: EXPORT_OUTPUT_DIR
	OutputDir string `env:"OUTPUT_DIR"`

	// ContentSize is the edge length of the vector code in unscaled pixels.
	// Env: EXPORT_CONTENT_SIZE
	ContentSize int `env:"CONTENT_SIZE"`

	// RecoveryLevel is the error-correction level letter: L, M, Q or H.
	// Env: EXPORT_RECOVERY_LEVEL
	RecoveryLevel string `env:"RECOVERY_LEVEL"`
}

// Style holds the initial style of a session in its textual form.
// Padding is a pointer because zero is a meaningful value that must not be
// replaced by the default.
type Style struct {
	// Env: STYLE_ENABLED
	Enabled bool `env:"ENABLED"`
	// Env: STYLE_LINE_COLOR
	LineColor string `env:"LINE_COLOR"`
	// Env: STYLE_BORDER_COLOR
	BorderColor string `env:"BORDER_COLOR"`
	// Env: STYLE_PADDING
	Padding *int `env:"PADDING"`
	// Env: STYLE_BORDER_THICKNESS
	BorderThickness int `env:"BORDER_THICKNESS"`
	// Env: STYLE_BORDER_RADIUS
	BorderRadius int `env:"BORDER_RADIUS"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources. For every field the first
// source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
