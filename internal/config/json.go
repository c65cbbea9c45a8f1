package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the layout of the optional JSON config file.
type StructuredJSONConfig struct {
	App struct {
		ProductName    string `json:"product_name"`
		Version        string `json:"version"`
		EscapeReserved bool   `json:"escape_reserved"`
	} `json:"app,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	Export struct {
		OutputDir     string `json:"output_dir"`
		ContentSize   int    `json:"content_size"`
		RecoveryLevel string `json:"recovery_level"`
	} `json:"export,omitempty"`

	Style struct {
		Enabled         bool   `json:"enabled"`
		LineColor       string `json:"line_color"`
		BorderColor     string `json:"border_color"`
		Padding         *int   `json:"padding"`
		BorderThickness int    `json:"border_thickness"`
		BorderRadius    int    `json:"border_radius"`
	} `json:"style,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			ProductName:    jsonCfg.App.ProductName,
			Version:        jsonCfg.App.Version,
			EscapeReserved: jsonCfg.App.EscapeReserved,
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		Export: Export{
			OutputDir:     jsonCfg.Export.OutputDir,
			ContentSize:   jsonCfg.Export.ContentSize,
			RecoveryLevel: jsonCfg.Export.RecoveryLevel,
		},
		Style: Style{
			Enabled:         jsonCfg.Style.Enabled,
			LineColor:       jsonCfg.Style.LineColor,
			BorderColor:     jsonCfg.Style.BorderColor,
			Padding:         jsonCfg.Style.Padding,
			BorderThickness: jsonCfg.Style.BorderThickness,
			BorderRadius:    jsonCfg.Style.BorderRadius,
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
