package registry

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// Group is a capability group: a self-contained bundle of tools backed by one
// functional area of the CRM. The router depends only on this contract.
type Group interface {
	// Name identifies the group in errors and logs.
	Name() string

	// Definitions returns the group's published tools in a stable order.
	Definitions() []mcp.Tool

	// ToolNames returns the names the group claims to own. Every claimed name
	// must also be published by Definitions.
	ToolNames() []string

	// Execute runs the named tool. args is never nil.
	Execute(ctx context.Context, name string, args map[string]any) (any, error)
}
