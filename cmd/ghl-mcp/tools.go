package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bobmcallan/ghl-mcp/internal/app"
	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/registry"
)

func toolsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List the published tool catalog by category",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Listing needs no credentials.
			cfg, err := loadConfig(nil, false)
			if err != nil {
				return err
			}

			application, err := app.New(cfg, common.NewSilentLogger())
			if err != nil {
				return err
			}
			defer application.Close()

			out := cmd.OutOrStdout()
			if asJSON {
				return writeCatalogJSON(out, application.Catalog)
			}
			writeCatalog(out, application.Catalog)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func writeCatalogJSON(w io.Writer, catalog *registry.Catalog) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"tools":      catalog.Tools(),
		"totalCount": catalog.Len(),
		"categories": registry.Classify(catalog.Names()),
	})
}

func writeCatalog(w io.Writer, catalog *registry.Catalog) {
	heading := color.New(color.FgCyan, color.Bold)

	for _, cat := range registry.Classify(catalog.Names()) {
		heading.Fprintf(w, "%s (%d)\n", cat.Name, cat.Count)
		for _, name := range cat.Tools {
			tool, _ := catalog.Lookup(name)
			fmt.Fprintf(w, "  %-40s %s\n", name, tool.Description)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "%s tools across %d groups\n", color.GreenString("%d", catalog.Len()), len(catalog.Groups()))
}
