package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/registry"
)

type testGroup struct {
	tools []string
}

func (g testGroup) Name() string { return "test" }

func (g testGroup) Definitions() []mcp.Tool {
	defs := make([]mcp.Tool, len(g.tools))
	for i, name := range g.tools {
		defs[i] = mcp.NewTool(name, mcp.WithDescription("desc "+name), mcp.WithString("contactId", mcp.Required()))
	}
	return defs
}

func (g testGroup) ToolNames() []string { return g.tools }

func (g testGroup) Execute(context.Context, string, map[string]any) (any, error) { return nil, nil }

func testCatalog(t *testing.T) *registry.Catalog {
	t.Helper()
	catalog, err := registry.BuildCatalog(testGroup{tools: []string{"get_contact", "send_sms", "create_contact", "verify_address"}})
	if err != nil {
		t.Fatalf("BuildCatalog: %v", err)
	}
	return catalog
}

func TestHealthHandler_ReturnsHealthy(t *testing.T) {
	handler := NewHealthHandler(common.ServerName, testCatalog(t), common.NewSilentLogger())
	handler.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	req := httptest.NewRequest("GET", "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", w.Code)
	}

	var body healthResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body.Status != "healthy" {
		t.Errorf("expected status healthy, got %s", body.Status)
	}
	if body.Server != common.ServerName {
		t.Errorf("expected server %s, got %s", common.ServerName, body.Server)
	}
	if body.Tools != 4 {
		t.Errorf("expected 4 tools, got %d", body.Tools)
	}
	if body.Timestamp != "2026-01-02T03:04:05Z" {
		t.Errorf("unexpected timestamp %s", body.Timestamp)
	}
}

func TestHealthHandler_RejectsNonGET(t *testing.T) {
	handler := NewHealthHandler(common.ServerName, testCatalog(t), common.NewSilentLogger())

	req := httptest.NewRequest("POST", "/health", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestVersionHandler_ReturnsJSON(t *testing.T) {
	handler := NewVersionHandler()

	req := httptest.NewRequest("GET", "/version", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if contentType := w.Header().Get("Content-Type"); contentType != "application/json" {
		t.Errorf("expected Content-Type application/json, got %s", contentType)
	}

	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	for _, key := range []string{"version", "build", "git_commit"} {
		if _, ok := body[key]; !ok {
			t.Errorf("expected %s field in response", key)
		}
	}
}

func TestCapabilitiesHandler(t *testing.T) {
	handler := NewCapabilitiesHandler(common.ServerName)

	req := httptest.NewRequest("GET", "/capabilities", nil)
	w := httptest.NewRecorder()

	handler.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Capabilities struct {
			Tools     struct{ ListChanged bool } `json:"tools"`
			Resources struct{ Subscribe bool }   `json:"resources"`
			Prompts   struct{ ListChanged bool } `json:"prompts"`
		} `json:"capabilities"`
		Server string `json:"server"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if !body.Capabilities.Tools.ListChanged {
		t.Error("expected tools.listChanged true")
	}
	if body.Capabilities.Resources.Subscribe {
		t.Error("expected resources.subscribe false")
	}
	if body.Capabilities.Prompts.ListChanged {
		t.Error("expected prompts.listChanged false")
	}
	if body.Server != common.ServerName {
		t.Errorf("expected server %s, got %s", common.ServerName, body.Server)
	}
}

func TestToolsHandler_List(t *testing.T) {
	handler := NewToolsHandler(testCatalog(t), common.NewSilentLogger())

	req := httptest.NewRequest("GET", "/tools", nil)
	w := httptest.NewRecorder()

	handler.HandleList(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body struct {
		Tools      []mcp.Tool          `json:"tools"`
		TotalCount int                 `json:"totalCount"`
		Categories []registry.Category `json:"categories"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}

	if body.TotalCount != 4 || len(body.Tools) != 4 {
		t.Errorf("expected 4 tools, got total=%d len=%d", body.TotalCount, len(body.Tools))
	}
	if body.Tools[0].Name != "get_contact" {
		t.Errorf("expected catalog order, first tool %s", body.Tools[0].Name)
	}
	if len(body.Categories) != 3 {
		t.Fatalf("expected 3 categories, got %d", len(body.Categories))
	}
	first := body.Categories[0]
	if first.Name != "Contact Management" || first.Count != 2 {
		t.Errorf("unexpected first category %+v", first)
	}
	if first.Tools[0] != "create_contact" || first.Tools[1] != "get_contact" {
		t.Errorf("expected sorted members, got %v", first.Tools)
	}
	if body.Categories[2].Name != "Other" {
		t.Errorf("expected Other last, got %s", body.Categories[2].Name)
	}
}

func TestToolsHandler_Describe(t *testing.T) {
	handler := NewToolsHandler(testCatalog(t), common.NewSilentLogger())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tools/{name}", handler.HandleDescribe)

	req := httptest.NewRequest("GET", "/tools/send_sms", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var body registry.Description
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body.Tool.Name != "send_sms" {
		t.Errorf("expected send_sms, got %s", body.Tool.Name)
	}
	if body.Category != "Messaging & Communication" {
		t.Errorf("unexpected category %s", body.Category)
	}
	if body.ExampleArguments["contactId"] != "example_id_123" {
		t.Errorf("unexpected example arguments %v", body.ExampleArguments)
	}
}

func TestToolsHandler_DescribeNotFound(t *testing.T) {
	handler := NewToolsHandler(testCatalog(t), common.NewSilentLogger())
	mux := http.NewServeMux()
	mux.HandleFunc("GET /tools/{name}", handler.HandleDescribe)

	req := httptest.NewRequest("GET", "/tools/nope", nil)
	w := httptest.NewRecorder()
	mux.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("expected status 404, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to unmarshal response: %v", err)
	}
	if body["error"] != "Tool not found: nope" {
		t.Errorf("unexpected error %q", body["error"])
	}
}

func TestHealthAndCapabilities_ReportConfiguredName(t *testing.T) {
	for _, h := range []http.Handler{
		NewHealthHandler("crm-gateway", testCatalog(t), common.NewSilentLogger()),
		NewCapabilitiesHandler("crm-gateway"),
	} {
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

		var body struct {
			Server string `json:"server"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("failed to unmarshal response: %v", err)
		}
		if body.Server != "crm-gateway" {
			t.Errorf("expected configured server name, got %s", body.Server)
		}
	}
}
