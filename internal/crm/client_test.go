package crm

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/bobmcallan/ghl-mcp/internal/common"
)

func newTestClient(serverURL string) *Client {
	return NewClient(Options{
		BaseURL:    serverURL,
		APIKey:     "test-key",
		Version:    "2021-07-28",
		LocationID: "loc-123",
	}, common.NewSilentLogger())
}

func TestClient_Do_SendsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("expected bearer header, got %q", got)
		}
		if got := r.Header.Get("Version"); got != "2021-07-28" {
			t.Errorf("expected Version header, got %q", got)
		}
		if r.URL.Path != "/contacts/abc" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"contact": map[string]any{"id": "abc"}})
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Do(t.Context(), http.MethodGet, "/contacts/abc", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m, ok := res.(map[string]any)
	if !ok {
		t.Fatalf("expected object, got %T", res)
	}
	if _, ok := m["contact"]; !ok {
		t.Errorf("expected contact key, got %v", m)
	}
}

func TestClient_Do_QueryAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Query().Get("locationId") != "loc-123" {
			t.Errorf("expected locationId query, got %s", r.URL.RawQuery)
		}
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("expected JSON content type")
		}
		body, _ := io.ReadAll(r.Body)
		var req map[string]any
		if err := json.Unmarshal(body, &req); err != nil {
			t.Errorf("body is not JSON: %v", err)
		}
		if req["firstName"] != "Ada" {
			t.Errorf("expected firstName Ada, got %v", req["firstName"])
		}
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	q := url.Values{"locationId": {"loc-123"}}
	_, err := newTestClient(srv.URL).Do(t.Context(), http.MethodPost, "/contacts/", q, map[string]any{"firstName": "Ada"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestClient_Do_EmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	res, err := newTestClient(srv.URL).Do(t.Context(), http.MethodDelete, "/contacts/abc", nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m := res.(map[string]any)
	if m["success"] != true {
		t.Errorf("expected success marker, got %v", m)
	}
}

func TestClient_Do_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"statusCode":404,"message":"Contact not found"}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Do(t.Context(), http.MethodGet, "/contacts/missing", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T (%v)", err, err)
	}
	if !apiErr.NotFound() {
		t.Errorf("expected NotFound, got status %d", apiErr.StatusCode)
	}
	if !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "Contact not found") {
		t.Errorf("error should carry status and message, got %q", err.Error())
	}
}

func TestClient_Do_MessageList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"message":["email must be an email","phone is invalid"]}`))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Do(t.Context(), http.MethodPost, "/contacts/", nil, map[string]any{})
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "email must be an email; phone is invalid") {
		t.Errorf("expected joined messages, got %q", err.Error())
	}
}

func TestClient_Do_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := newTestClient(srv.URL).Do(t.Context(), http.MethodGet, "/x", nil, nil)
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusBadGateway {
		t.Fatalf("expected 502 APIError, got %v", err)
	}
	if apiErr.Message != "upstream down" {
		t.Errorf("expected raw body as message, got %q", apiErr.Message)
	}
}

func TestClient_Do_Unreachable(t *testing.T) {
	_, err := newTestClient("http://127.0.0.1:1").Do(t.Context(), http.MethodGet, "/x", nil, nil)
	if err == nil {
		t.Fatal("expected error for unreachable backend")
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		t.Errorf("transport failure should not be an APIError")
	}
}

func TestNewClient_TrimsBaseURL(t *testing.T) {
	c := NewClient(Options{BaseURL: "http://example.com/"}, common.NewSilentLogger())
	if c.BaseURL() != "http://example.com" {
		t.Errorf("expected trailing slash trimmed, got %s", c.BaseURL())
	}
}
