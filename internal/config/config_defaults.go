// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/MKhiriev/qryptshare/models"
)

// Default values applied to every field left unset by env, flags and JSON.
const (
	DefaultProductName    = "qry-share"
	DefaultVersion        = "dev"
	DefaultHTTPAddress    = "localhost:8080"
	DefaultRequestTimeout = 30 * time.Second
	DefaultOutputDir      = "."
	DefaultContentSize    = 256
	DefaultRecoveryLevel  = "Q"
)

func defaultConfig() *StructuredConfig {
	padding := models.DefaultPadding

	return &StructuredConfig{
		App: App{
			ProductName: DefaultProductName,
			Version:     DefaultVersion,
		},
		Server: Server{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Export: Export{
			OutputDir:     DefaultOutputDir,
			ContentSize:   DefaultContentSize,
			RecoveryLevel: DefaultRecoveryLevel,
		},
		Style: Style{
			LineColor:       models.Black.Hex(),
			BorderColor:     models.Black.Hex(),
			Padding:         &padding,
			BorderThickness: models.DefaultBorderThickness,
		},
	}
}
