package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/ghl-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	CRM     CRMConfig            `toml:"crm"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP transport settings.
type ServerConfig struct {
	Name string `toml:"name"`
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// Addr returns host:port for the HTTP listener.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// CRMConfig contains the backend REST API credentials and defaults.
type CRMConfig struct {
	BaseURL    string `toml:"base_url"`
	APIKey     string `toml:"api_key"`
	LocationID string `toml:"location_id"`
	Version    string `toml:"version"`
	Timeout    string `toml:"timeout"`
}

// GetTimeout parses the configured timeout, falling back to 30s.
func (c CRMConfig) GetTimeout() time.Duration {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 30 * time.Second
	}
	return d
}

// LoadFromFiles loads configuration with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	cfg := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// applyEnvOverrides applies GHL_* environment variable overrides to cfg.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("GHL_API_KEY"); v != "" {
		cfg.CRM.APIKey = v
	}
	if v := os.Getenv("GHL_BASE_URL"); v != "" {
		cfg.CRM.BaseURL = v
	}
	if v := os.Getenv("GHL_LOCATION_ID"); v != "" {
		cfg.CRM.LocationID = v
	}
	if v := os.Getenv("GHL_API_VERSION"); v != "" {
		cfg.CRM.Version = v
	}
	if v := os.Getenv("GHL_TIMEOUT"); v != "" {
		cfg.CRM.Timeout = v
	}
	if v := os.Getenv("GHL_SERVER_HOST"); v != "" {
		cfg.Server.Host = v
	}
	// PORT is honoured for container platforms; GHL_SERVER_PORT wins when both are set.
	for _, key := range []string{"PORT", "GHL_SERVER_PORT"} {
		if v := os.Getenv(key); v != "" {
			if p, err := strconv.Atoi(v); err == nil {
				cfg.Server.Port = p
			}
		}
	}
	if v := os.Getenv("GHL_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
}

// ApplyFlagOverrides applies command-line flag overrides to cfg.
func ApplyFlagOverrides(cfg *Config, port int, host string) {
	if port > 0 {
		cfg.Server.Port = port
	}
	if host != "" {
		cfg.Server.Host = host
	}
}

// Validate returns a human-readable list of problems; empty means usable.
func (c *Config) Validate() []string {
	var issues []string
	if strings.TrimSpace(c.CRM.APIKey) == "" {
		issues = append(issues, "crm.api_key is required (set GHL_API_KEY)")
	}
	if strings.TrimSpace(c.CRM.BaseURL) == "" {
		issues = append(issues, "crm.base_url must not be empty")
	}
	if c.CRM.Timeout != "" {
		if _, err := time.ParseDuration(c.CRM.Timeout); err != nil {
			issues = append(issues, fmt.Sprintf("crm.timeout %q is not a valid duration", c.CRM.Timeout))
		}
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	return issues
}
