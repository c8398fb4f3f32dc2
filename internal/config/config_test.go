package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
	if cfg.CRM.BaseURL != "https://services.leadconnectorhq.com" {
		t.Errorf("unexpected default base URL %s", cfg.CRM.BaseURL)
	}
	if cfg.CRM.Version != "2021-07-28" {
		t.Errorf("expected default API version 2021-07-28, got %s", cfg.CRM.Version)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles with no files should not error: %v", err)
	}
	if cfg.Server.Port != 8000 && os.Getenv("PORT") == "" && os.Getenv("GHL_SERVER_PORT") == "" {
		t.Errorf("expected default port 8000, got %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ghl-mcp.toml")

	content := `
[server]
port = 9090
host = "127.0.0.1"

[crm]
api_key = "pit-123"
location_id = "loc-1"
timeout = "5s"

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(path)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Addr() != "127.0.0.1:9090" {
		t.Errorf("expected addr 127.0.0.1:9090, got %s", cfg.Server.Addr())
	}
	if cfg.CRM.APIKey != "pit-123" {
		t.Errorf("expected api key pit-123, got %s", cfg.CRM.APIKey)
	}
	if cfg.CRM.LocationID != "loc-1" {
		t.Errorf("expected location loc-1, got %s", cfg.CRM.LocationID)
	}
	if cfg.CRM.GetTimeout() != 5*time.Second {
		t.Errorf("expected 5s timeout, got %v", cfg.CRM.GetTimeout())
	}
	// Untouched sections keep their defaults.
	if cfg.CRM.Version != "2021-07-28" {
		t.Errorf("expected default version to survive, got %s", cfg.CRM.Version)
	}
}

func TestLoadFromFiles_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "a.toml")
	second := filepath.Join(dir, "b.toml")
	os.WriteFile(first, []byte("[crm]\nlocation_id = \"first\"\n"), 0644)
	os.WriteFile(second, []byte("[crm]\nlocation_id = \"second\"\n"), 0644)

	cfg, err := LoadFromFiles(first, second)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.CRM.LocationID != "second" {
		t.Errorf("expected later file to win, got %s", cfg.CRM.LocationID)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/ghl-mcp.toml")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadFromFiles_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.toml")
	os.WriteFile(path, []byte("[server\nport = "), 0644)

	_, err := LoadFromFiles(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "failed to parse config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GHL_API_KEY", "env-key")
	t.Setenv("GHL_LOCATION_ID", "env-loc")
	t.Setenv("GHL_BASE_URL", "http://localhost:9999")
	t.Setenv("PORT", "7000")
	t.Setenv("GHL_SERVER_PORT", "7001")
	t.Setenv("GHL_LOG_LEVEL", "warn")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.CRM.APIKey != "env-key" {
		t.Errorf("expected env-key, got %s", cfg.CRM.APIKey)
	}
	if cfg.CRM.LocationID != "env-loc" {
		t.Errorf("expected env-loc, got %s", cfg.CRM.LocationID)
	}
	if cfg.CRM.BaseURL != "http://localhost:9999" {
		t.Errorf("expected overridden base URL, got %s", cfg.CRM.BaseURL)
	}
	if cfg.Server.Port != 7001 {
		t.Errorf("expected GHL_SERVER_PORT to win over PORT, got %d", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected warn level, got %s", cfg.Logging.Level)
	}
}

func TestEnvOverrides_InvalidPortIgnored(t *testing.T) {
	t.Setenv("GHL_SERVER_PORT", "not-a-port")
	t.Setenv("PORT", "")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}
	if cfg.Server.Port != 8000 {
		t.Errorf("expected default port for invalid env, got %d", cfg.Server.Port)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()
	ApplyFlagOverrides(cfg, 1234, "example.local")
	if cfg.Server.Port != 1234 || cfg.Server.Host != "example.local" {
		t.Errorf("flags not applied: %+v", cfg.Server)
	}

	ApplyFlagOverrides(cfg, 0, "")
	if cfg.Server.Port != 1234 || cfg.Server.Host != "example.local" {
		t.Errorf("zero flags should not override: %+v", cfg.Server)
	}
}

func TestValidate(t *testing.T) {
	cfg := NewDefaultConfig()
	issues := cfg.Validate()
	if len(issues) != 1 || !strings.Contains(issues[0], "api_key") {
		t.Fatalf("expected only a missing api_key issue, got %v", issues)
	}

	cfg.CRM.APIKey = "key"
	if issues := cfg.Validate(); len(issues) != 0 {
		t.Errorf("expected valid config, got %v", issues)
	}

	cfg.CRM.Timeout = "soon"
	cfg.Server.Port = 70000
	issues = cfg.Validate()
	if len(issues) != 2 {
		t.Errorf("expected timeout and port issues, got %v", issues)
	}
}

func TestGetTimeout_Fallback(t *testing.T) {
	c := CRMConfig{Timeout: "garbage"}
	if c.GetTimeout() != 30*time.Second {
		t.Errorf("expected 30s fallback, got %v", c.GetTimeout())
	}
}
