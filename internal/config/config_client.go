package config

import (
	"fmt"

	"github.com/MKhiriev/qryptshare/models"
)

// ClientConfig is the top-level configuration of the terminal client,
// assembled from [StructuredConfig].
type ClientConfig struct {
	// App contains product naming and payload encoding settings.
	App App
	// Export contains output directory and code rendering settings.
	Export Export
	// Style is the style a new session starts with.
	Style models.StyleConfig
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	style, err := cfg.Style.toModel()
	if err != nil {
		return nil, err
	}

	clientCfg := &ClientConfig{
		App:    cfg.App,
		Export: cfg.Export,
		Style:  style,
	}

	return clientCfg, clientCfg.validate()
}
