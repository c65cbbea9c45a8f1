package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an empty product name or version).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidExportConfigs indicates invalid export settings
	// (for example, a non-positive content size or unknown recovery level).
	ErrInvalidExportConfigs = errors.New("invalid export configuration")
	// ErrInvalidStyleConfigs indicates an unparsable color or an
	// out-of-range style value.
	ErrInvalidStyleConfigs = errors.New("invalid style configuration")
)
