package registry

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/ghl-mcp/internal/common"
)

// Router resolves a tool name to its owning group and forwards the call.
type Router struct {
	catalog *Catalog
	owners  map[string]Group
	logger  *common.Logger
}

// NewRouter builds the name ownership index from every group's ToolNames and
// cross-checks it against the catalog in both directions.
func NewRouter(catalog *Catalog, logger *common.Logger) (*Router, error) {
	owners := make(map[string]Group, catalog.Len())

	for gi, g := range catalog.Groups() {
		for _, name := range g.ToolNames() {
			if prev, exists := owners[name]; exists {
				return nil, &DuplicateToolNameError{Name: name, First: prev.Name(), Second: g.Name()}
			}
			idx, publisher, published := catalog.publisher(name)
			if !published {
				return nil, &OwnershipMismatchError{Group: g.Name(), Name: name, Reason: "is claimed but not published"}
			}
			if idx != gi {
				return nil, &OwnershipMismatchError{Group: g.Name(), Name: name, Reason: fmt.Sprintf("is claimed but published by group %q", publisher.Name())}
			}
			owners[name] = g
		}
	}

	for _, name := range catalog.Names() {
		if _, ok := owners[name]; !ok {
			_, g, _ := catalog.publisher(name)
			return nil, &OwnershipMismatchError{Group: g.Name(), Name: name, Reason: "is published but not claimed"}
		}
	}

	return &Router{catalog: catalog, owners: owners, logger: logger}, nil
}

// Catalog returns the catalog the router was built from.
func (r *Router) Catalog() *Catalog {
	return r.catalog
}

// Owner returns the group that owns name.
func (r *Router) Owner(name string) (Group, bool) {
	g, ok := r.owners[name]
	return g, ok
}

// Dispatch executes name on its owning group and wraps the payload in the
// text envelope. Errors are *UnknownToolError or *DispatchError.
func (r *Router) Dispatch(ctx context.Context, name string, args map[string]any) (*mcp.CallToolResult, error) {
	g, ok := r.owners[name]
	if !ok {
		r.logger.Warn().Str("tool", name).Msg("unknown tool")
		return nil, &UnknownToolError{Name: name}
	}
	if args == nil {
		args = map[string]any{}
	}

	start := time.Now()
	payload, err := execute(ctx, g, name, args)
	elapsed := time.Since(start)
	if err != nil {
		de := translate(name, err)
		r.logger.Warn().Str("tool", name).Str("group", g.Name()).Int("code", de.Code).Int64("duration_ms", elapsed.Milliseconds()).Err(err).Msg("tool failed")
		return nil, de
	}

	result, err := textEnvelope(payload)
	if err != nil {
		return nil, translate(name, err)
	}

	r.logger.Info().Str("tool", name).Str("group", g.Name()).Int64("duration_ms", elapsed.Milliseconds()).Msg("tool executed")
	return result, nil
}

// execute isolates a group call so a panicking handler cannot take the process down.
func execute(ctx context.Context, g Group, name string, args map[string]any) (payload any, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in group %s: %v", g.Name(), rec)
		}
	}()
	return g.Execute(ctx, name, args)
}

// textEnvelope serializes payload as indented JSON with sorted map keys.
func textEnvelope(payload any) (*mcp.CallToolResult, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return nil, fmt.Errorf("failed to encode result: %w", err)
	}
	text := string(bytes.TrimRight(buf.Bytes(), "\n"))
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.NewTextContent(text)},
	}, nil
}
