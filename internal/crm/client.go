// Package crm is the REST client every capability group shares. It speaks to a
// single CRM backend with a static bearer credential and a fixed API version header.
package crm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bobmcallan/ghl-mcp/internal/common"
)

// maxResponseSize caps the backend response body.
const maxResponseSize = 20 << 20 // 20MB

// APIError is returned for any backend response with status >= 400.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("CRM API error (%d): %s", e.StatusCode, e.Message)
}

// NotFound reports whether the backend signalled a missing resource.
func (e *APIError) NotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// Options configures a Client.
type Options struct {
	BaseURL    string
	APIKey     string
	Version    string
	LocationID string
	Timeout    time.Duration
}

// Client issues authenticated JSON requests against the CRM REST API.
type Client struct {
	baseURL    string
	apiKey     string
	version    string
	locationID string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a client for opts.BaseURL.
func NewClient(opts Options, logger *common.Logger) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(opts.BaseURL, "/"),
		apiKey:     opts.APIKey,
		version:    opts.Version,
		locationID: opts.LocationID,
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

// LocationID returns the configured default location (sub-account) id.
func (c *Client) LocationID() string {
	return c.locationID
}

// BaseURL returns the configured backend URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do performs method against path with optional query and JSON body, and
// decodes the JSON response into a generic value.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body any) (any, error) {
	raw, err := c.DoRaw(ctx, method, path, query, body)
	if err != nil {
		return nil, err
	}
	return decodeBody(raw)
}

// DoRaw is Do without decoding.
func (c *Client) DoRaw(ctx context.Context, method, path string, query url.Values, body any) ([]byte, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	c.logger.Debug().Str("method", method).Str("path", path).Msg("crm request")

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, bodyReader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Version", c.version)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Str("method", method).Str("path", path).Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("crm request failed")
		return nil, fmt.Errorf("crm request failed: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Str("method", method).Str("path", path).Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("crm response")

	if resp.StatusCode >= 400 {
		return nil, parseErrorResponse(resp.StatusCode, data)
	}
	return data, nil
}

// decodeBody turns a response body into a JSON value. Empty bodies (204) become
// a small success object so callers always get something serializable.
func decodeBody(raw []byte) (any, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return map[string]any{"success": true}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return v, nil
}

// parseErrorResponse extracts the backend's message from an error body.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Message any    `json:"message"`
		Error   string `json:"error"`
	}
	msg := ""
	if json.Unmarshal(body, &errResp) == nil {
		switch m := errResp.Message.(type) {
		case string:
			msg = m
		case []any:
			parts := make([]string, 0, len(m))
			for _, p := range m {
				parts = append(parts, fmt.Sprint(p))
			}
			msg = strings.Join(parts, "; ")
		}
		if msg == "" {
			msg = errResp.Error
		}
	}
	if msg == "" {
		msg = strings.TrimSpace(string(body))
	}
	if msg == "" {
		msg = http.StatusText(statusCode)
	}
	return &APIError{StatusCode: statusCode, Message: msg}
}
