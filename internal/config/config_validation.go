// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/qryptshare/models"
)

var recoveryLevels = map[string]struct{}{"L": {}, "M": {}, "Q": {}, "H": {}}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	if strings.TrimSpace(cfg.App.ProductName) == "" {
		return fmt.Errorf("%w: empty product name", ErrInvalidAppConfigs)
	}

	if err := cfg.Export.validate(); err != nil {
		return err
	}

	if _, err := cfg.Style.toModel(); err != nil {
		return err
	}

	return nil
}

func (e Export) validate() error {
	if e.OutputDir == "" {
		return fmt.Errorf("%w: empty output directory", ErrInvalidExportConfigs)
	}
	if e.ContentSize <= 0 || e.ContentSize > models.MaxContentSize {
		return fmt.Errorf("%w: content size %d outside 1..%d", ErrInvalidExportConfigs, e.ContentSize, models.MaxContentSize)
	}
	if _, ok := recoveryLevels[strings.ToUpper(e.RecoveryLevel)]; !ok {
		return fmt.Errorf("%w: unknown recovery level %q", ErrInvalidExportConfigs, e.RecoveryLevel)
	}
	return nil
}

// toModel converts the textual style into [models.StyleConfig]. Numeric
// values outside their allowed ranges are rejected, not clamped.
func (s Style) toModel() (models.StyleConfig, error) {
	style := models.DefaultStyleConfig()
	style.Enabled = s.Enabled
	style.BorderThickness = s.BorderThickness
	style.BorderRadius = s.BorderRadius
	if s.Padding != nil {
		style.Padding = *s.Padding
	}

	if s.LineColor != "" {
		c, err := models.ParseColor(s.LineColor)
		if err != nil {
			return models.StyleConfig{}, fmt.Errorf("%w: line color: %w", ErrInvalidStyleConfigs, err)
		}
		style.LineColor = c
	}
	if s.BorderColor != "" {
		c, err := models.ParseColor(s.BorderColor)
		if err != nil {
			return models.StyleConfig{}, fmt.Errorf("%w: border color: %w", ErrInvalidStyleConfigs, err)
		}
		style.BorderColor = c
	}

	if style.Clamped() != style {
		return models.StyleConfig{}, fmt.Errorf("%w: padding, border thickness or radius out of range", ErrInvalidStyleConfigs)
	}

	return style, nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.App.ProductName == "" {
		return ErrInvalidAppConfigs
	}

	return cfg.Export.validate()
}

func (cfg *ServerConfig) validate() error {
	if cfg.App.Version == "" {
		return fmt.Errorf("%w: empty version", ErrInvalidAppConfigs)
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return cfg.Export.validate()
}
