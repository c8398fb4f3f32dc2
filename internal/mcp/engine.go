// Package mcp implements the MCP JSON-RPC method set over the tool registry and
// serves it on two transports: newline-delimited stdio and HTTP with a
// server-sent event stream per client.
package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/registry"
)

// supportedProtocolVersions are echoed back when a client asks for them.
var supportedProtocolVersions = []string{"2024-11-05", "2025-03-26", "2025-06-18"}

func negotiateVersion(requested string) string {
	if requested == mcp.LATEST_PROTOCOL_VERSION || slices.Contains(supportedProtocolVersions, requested) {
		return requested
	}
	return mcp.LATEST_PROTOCOL_VERSION
}

// Engine answers JSON-RPC messages. It holds no per-connection state and is
// safe for concurrent use by many transports.
type Engine struct {
	router  *registry.Router
	catalog *registry.Catalog
	info    mcp.Implementation
	logger  *common.Logger
}

// NewEngine creates an engine serving router's catalog as server name/version.
func NewEngine(router *registry.Router, name, version string, logger *common.Logger) *Engine {
	return &Engine{
		router:  router,
		catalog: router.Catalog(),
		info:    mcp.Implementation{Name: name, Version: version},
		logger:  logger,
	}
}

// Handle decodes one raw message and returns the encoded reply, or nil when
// the message is a notification.
func (e *Engine) Handle(ctx context.Context, raw []byte) []byte {
	resp := e.handleRaw(ctx, raw)
	if resp == nil {
		return nil
	}
	out, err := json.Marshal(resp)
	if err != nil {
		e.logger.Error().Err(err).Msg("failed to encode response")
		out, _ = json.Marshal(errorResponse(resp.ID, mcp.INTERNAL_ERROR, "failed to encode response"))
	}
	return out
}

func (e *Engine) handleRaw(ctx context.Context, raw []byte) *Response {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		return errorResponse(nil, mcp.INVALID_REQUEST, "batch requests are not supported")
	}

	var req Request
	if err := json.Unmarshal(trimmed, &req); err != nil {
		return errorResponse(nil, mcp.PARSE_ERROR, "Parse error")
	}
	if req.JSONRPC != mcp.JSONRPC_VERSION || req.Method == "" {
		if req.IsNotification() {
			return nil
		}
		return errorResponse(req.ID, mcp.INVALID_REQUEST, "Invalid Request")
	}
	return e.HandleRequest(ctx, &req)
}

// HandleRequest dispatches a decoded request by method.
func (e *Engine) HandleRequest(ctx context.Context, req *Request) *Response {
	start := time.Now()

	if req.IsNotification() {
		e.logger.Debug().Str("method", req.Method).Msg("notification received")
		return nil
	}

	var resp *Response
	switch req.Method {
	case "initialize":
		resp = e.initialize(req)
	case "ping":
		resp = resultResponse(req.ID, struct{}{})
	case "tools/list":
		resp = resultResponse(req.ID, mcp.ListToolsResult{Tools: e.catalog.Tools()})
	case "tools/call":
		resp = e.callTool(ctx, req)
	case "tools/describe":
		resp = e.describeTool(req)
	default:
		if strings.HasPrefix(req.Method, "notifications/") {
			resp = resultResponse(req.ID, struct{}{})
			break
		}
		resp = errorResponse(req.ID, mcp.METHOD_NOT_FOUND, "Method not found: "+req.Method)
	}

	elapsed := time.Since(start).Milliseconds()
	if resp.Error != nil {
		e.logger.Warn().Str("method", req.Method).Int("code", resp.Error.Code).Int64("duration_ms", elapsed).Msg("rpc failed")
	} else {
		e.logger.Debug().Str("method", req.Method).Int64("duration_ms", elapsed).Msg("rpc handled")
	}
	return resp
}

func (e *Engine) initialize(req *Request) *Response {
	var params initializeParams
	if len(req.Params) > 0 {
		if err := json.Unmarshal(req.Params, &params); err != nil {
			return errorResponse(req.ID, mcp.INVALID_PARAMS, "invalid initialize params: "+err.Error())
		}
	}

	version := negotiateVersion(params.ProtocolVersion)

	e.logger.Info().
		Str("client", params.ClientInfo.Name).
		Str("client_version", params.ClientInfo.Version).
		Str("protocol_version", version).
		Msg("client initialized")

	return resultResponse(req.ID, initializeResult{
		ProtocolVersion: version,
		Capabilities:    ServerCapabilities(),
		ServerInfo:      e.info,
	})
}

func (e *Engine) callTool(ctx context.Context, req *Request) *Response {
	var params callParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return errorResponse(req.ID, mcp.INVALID_PARAMS, "invalid tools/call params")
	}
	if params.Name == "" {
		return errorResponse(req.ID, mcp.INVALID_PARAMS, "tool name is required")
	}

	result, err := e.router.Dispatch(ctx, params.Name, params.Arguments)
	if err != nil {
		code, msg := registry.ProtocolError(err)
		return errorResponse(req.ID, code, msg)
	}
	return resultResponse(req.ID, result)
}

func (e *Engine) describeTool(req *Request) *Response {
	var params describeParams
	if err := json.Unmarshal(req.Params, &params); err != nil || params.Name == "" {
		return errorResponse(req.ID, mcp.INVALID_PARAMS, "tool name is required")
	}

	desc, err := e.catalog.Describe(params.Name)
	if err != nil {
		var unknown *registry.UnknownToolError
		if errors.As(err, &unknown) {
			return errorResponse(req.ID, mcp.INVALID_REQUEST, unknown.Error())
		}
		return errorResponse(req.ID, mcp.INTERNAL_ERROR, err.Error())
	}
	return resultResponse(req.ID, desc)
}
