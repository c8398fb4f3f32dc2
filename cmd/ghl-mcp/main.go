// Package main provides the ghl-mcp entrypoint.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bobmcallan/ghl-mcp/internal/app"
	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/config"
)

var configFiles []string

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "ghl-mcp",
		Short: "MCP server exposing the CRM REST API as tools",
		Long: `ghl-mcp publishes the CRM capability groups as MCP tools.

Transports:
  ghl-mcp stdio    JSON-RPC over stdin/stdout (desktop clients)
  ghl-mcp serve    HTTP + SSE with informational endpoints`,
		SilenceUsage: true,
	}

	root.PersistentFlags().StringArrayVarP(&configFiles, "config", "c", nil, "Configuration file path (can be specified multiple times)")

	root.AddCommand(stdioCmd(), serveCmd(), toolsCmd(), versionCmd())
	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "ghl-mcp version %s\n", common.GetFullVersion())
		},
	}
}

// loadConfig resolves configuration: defaults, files, GHL_* env, then the
// caller's flag overrides. Auto-discovers a config file when none is given.
func loadConfig(apply func(*config.Config), validate bool) (*config.Config, error) {
	paths := configFiles
	if len(paths) == 0 {
		for _, path := range configSearchPaths() {
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
				break
			}
		}
	}

	cfg, err := config.LoadFromFiles(paths...)
	if err != nil {
		return nil, err
	}

	if apply != nil {
		apply(cfg)
	}

	if !validate {
		return cfg, nil
	}

	if issues := cfg.Validate(); len(issues) > 0 {
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Configuration error: mandatory fields are missing or invalid:")
		fmt.Fprintln(os.Stderr, "")
		for _, issue := range issues {
			fmt.Fprintf(os.Stderr, "  - %s\n", issue)
		}
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Values can be set via TOML file, GHL_* environment variables, or CLI flags.")
		fmt.Fprintln(os.Stderr, "")
		return nil, fmt.Errorf("invalid configuration (%d issues)", len(issues))
	}

	return cfg, nil
}

// buildApp loads configuration and wires the application.
func buildApp(apply func(*config.Config)) (*app.App, error) {
	cfg, err := loadConfig(apply, true)
	if err != nil {
		return nil, err
	}

	logger := common.NewLoggerFromConfig(cfg.Logging)
	logger.Info().
		Str("base_url", cfg.CRM.BaseURL).
		Str("api_version", cfg.CRM.Version).
		Bool("location_configured", cfg.CRM.LocationID != "").
		Str("config_files", fmt.Sprintf("%v", configFiles)).
		Msg("configuration loaded")

	application, err := app.New(cfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("failed to initialize application")
		return nil, err
	}
	return application, nil
}

// configSearchPaths returns TOML files to auto-discover (first match wins).
// Binary-relative paths are tried first, with CWD fallbacks after.
func configSearchPaths() []string {
	candidates := []string{
		"ghl-mcp.toml",
		"config/ghl-mcp.toml",
	}

	exe, err := os.Executable()
	if err != nil {
		return candidates
	}
	binDir := filepath.Dir(exe)

	paths := []string{
		filepath.Join(binDir, "ghl-mcp.toml"),
		filepath.Join(binDir, "config", "ghl-mcp.toml"),
	}
	paths = append(paths, candidates...)

	seen := make(map[string]bool, len(paths))
	deduped := make([]string, 0, len(paths))
	for _, p := range paths {
		abs, err := filepath.Abs(p)
		if err != nil {
			abs = p
		}
		if seen[abs] {
			continue
		}
		seen[abs] = true
		deduped = append(deduped, p)
	}
	return deduped
}
