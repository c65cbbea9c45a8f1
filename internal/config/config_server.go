package config

import "fmt"

// ServerConfig is the configuration of the HTTP export service, assembled
// from [StructuredConfig].
type ServerConfig struct {
	// App contains product naming, version and payload encoding settings.
	App App
	// Server contains the listen address and request timeout.
	Server Server
	// Export contains code rendering settings.
	Export Export
}

// GetServerConfig builds and validates the server view of the merged
// structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newServerConfig(cfg)
}

func newServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:    cfg.App,
		Server: cfg.Server,
		Export: cfg.Export,
	}

	return serverCfg, serverCfg.validate()
}
