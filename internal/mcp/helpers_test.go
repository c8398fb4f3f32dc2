package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/require"

	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/registry"
)

// stubGroup answers a fixed set of tools for engine tests.
type stubGroup struct{}

func (stubGroup) Name() string { return "stub" }

func (stubGroup) Definitions() []mcp.Tool {
	return []mcp.Tool{
		mcp.NewTool("create_contact",
			mcp.WithDescription("Create a contact"),
			mcp.WithString("email", mcp.Required()),
		),
		mcp.NewTool("send_sms",
			mcp.WithDescription("Send an SMS"),
			mcp.WithString("contactId", mcp.Required()),
			mcp.WithString("message", mcp.Required()),
		),
		mcp.NewTool("get_contact", mcp.WithDescription("Get a contact")),
		mcp.NewTool("explode_contact", mcp.WithDescription("Always fails")),
	}
}

func (g stubGroup) ToolNames() []string {
	return []string{"create_contact", "send_sms", "get_contact", "explode_contact"}
}

func (stubGroup) Execute(_ context.Context, name string, args map[string]any) (any, error) {
	switch name {
	case "create_contact":
		return map[string]any{"contact": map[string]any{"id": "c1", "email": args["email"]}}, nil
	case "send_sms":
		return map[string]any{"messageId": "m1", "contactId": args["contactId"]}, nil
	case "get_contact":
		return nil, errors.New("CRM API error (404): Contact not found")
	default:
		return nil, errors.New("connection reset by peer")
	}
}

func testLogger() *common.Logger {
	return common.NewSilentLogger()
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	catalog, err := registry.BuildCatalog(stubGroup{})
	require.NoError(t, err)
	router, err := registry.NewRouter(catalog, testLogger())
	require.NoError(t, err)
	return NewEngine(router, "ghl-mcp-server", "test", testLogger())
}

// rpcReply is a decoded response with a raw result.
type rpcReply struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  json.RawMessage `json:"result"`
	Error   *Error          `json:"error"`
}

func decodeReply(t *testing.T, raw []byte) rpcReply {
	t.Helper()
	require.NotNil(t, raw, "expected a reply")
	var r rpcReply
	require.NoError(t, json.Unmarshal(raw, &r), string(raw))
	return r
}

func call(t *testing.T, e *Engine, msg string) rpcReply {
	t.Helper()
	return decodeReply(t, e.Handle(t.Context(), []byte(msg)))
}

// callText extracts the single text content of a tools/call result.
func callText(t *testing.T, r rpcReply) string {
	t.Helper()
	require.Nil(t, r.Error)
	var result struct {
		Content []struct {
			Type string `json:"type"`
			Text string `json:"text"`
		} `json:"content"`
	}
	require.NoError(t, json.Unmarshal(r.Result, &result))
	require.Len(t, result.Content, 1)
	require.Equal(t, "text", result.Content[0].Type)
	return result.Content[0].Text
}
