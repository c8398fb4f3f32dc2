package config

import "github.com/bobmcallan/ghl-mcp/internal/common"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Name: common.ServerName,
			Host: "0.0.0.0",
			Port: 8000,
		},
		CRM: CRMConfig{
			BaseURL: "https://services.leadconnectorhq.com",
			Version: "2021-07-28",
			Timeout: "30s",
		},
		Logging: common.LoggingConfig{
			Level:   "info",
			Outputs: []string{"console"},
		},
	}
}
