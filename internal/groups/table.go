// Package groups holds the CRM capability groups. Each group is a table of
// REST endpoints; the table yields the published tool definitions, the
// ownership claim and the request mapping for every tool it contains.
package groups

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// Parameter locations.
const (
	inPath  = "path"
	inQuery = "query"
	inBody  = "body"
)

// allowedMethods is the whitelist of HTTP methods an endpoint may use.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "PATCH": true, "DELETE": true,
}

var placeholderPattern = regexp.MustCompile(`\{([A-Za-z0-9_]+)\}`)

// ErrMissingParam is returned when a required argument is absent.
var ErrMissingParam = errors.New("missing required parameter")

// MissingParamError names the tool and argument that were missing.
type MissingParamError struct {
	Tool  string
	Param string
}

func (e *MissingParamError) Error() string {
	return fmt.Sprintf("%s parameter is required for %s", e.Param, e.Tool)
}

func (e *MissingParamError) Unwrap() error { return ErrMissingParam }

// Backend is the CRM client surface the groups call.
type Backend interface {
	Do(ctx context.Context, method, path string, query url.Values, body any) (any, error)
	LocationID() string
}

// Param describes one argument of an endpoint.
type Param struct {
	Name        string
	Type        string // string, number, integer, boolean, array, object
	Description string
	Required    bool
	In          string   // path, query, body
	Key         string   // wire name when it differs from Name
	Enum        []string // allowed string values
	Items       string   // array item type; empty means string
	Location    bool     // defaults to the configured location id
	Fixed       any      // constant value; hidden from the schema
}

func (p Param) wireKey() string {
	if p.Key != "" {
		return p.Key
	}
	return p.Name
}

// Endpoint maps one tool to one REST call.
type Endpoint struct {
	Name        string
	Description string
	Method      string
	Path        string
	Params      []Param
}

// Validate checks an endpoint is well formed.
func (e Endpoint) Validate() error {
	if e.Name == "" {
		return fmt.Errorf("endpoint has empty name")
	}
	if !allowedMethods[e.Method] {
		return fmt.Errorf("tool %q has unsupported method %q", e.Name, e.Method)
	}
	if !strings.HasPrefix(e.Path, "/") {
		return fmt.Errorf("tool %q has invalid path %q (must start with /)", e.Name, e.Path)
	}
	if strings.Contains(e.Path, "..") {
		return fmt.Errorf("tool %q has invalid path %q (contains ..)", e.Name, e.Path)
	}

	pathParams := map[string]bool{}
	seen := map[string]bool{}
	for _, p := range e.Params {
		switch p.In {
		case inPath, inQuery, inBody:
		default:
			return fmt.Errorf("tool %q param %q has invalid location %q", e.Name, p.wireKey(), p.In)
		}
		if p.Fixed == nil {
			if p.Name == "" {
				return fmt.Errorf("tool %q has a param with empty name", e.Name)
			}
			if seen[p.Name] {
				return fmt.Errorf("tool %q declares param %q twice", e.Name, p.Name)
			}
			seen[p.Name] = true
		}
		if p.Items != "" && (p.Type != "array" || p.Items != "object") {
			return fmt.Errorf("tool %q param %q has invalid items %q for type %q", e.Name, p.Name, p.Items, p.Type)
		}
		if p.In == inPath {
			pathParams[p.wireKey()] = true
		}
	}
	for _, m := range placeholderPattern.FindAllStringSubmatch(e.Path, -1) {
		if !pathParams[m[1]] {
			return fmt.Errorf("tool %q path placeholder {%s} has no param", e.Name, m[1])
		}
		delete(pathParams, m[1])
	}
	for name := range pathParams {
		return fmt.Errorf("tool %q path param %q does not appear in path", e.Name, name)
	}
	return nil
}

// Tool builds the published definition.
func (e Endpoint) Tool() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(e.Description)}
	for _, p := range e.Params {
		if p.Fixed != nil {
			continue
		}
		opts = append(opts, paramOption(p))
	}
	return mcp.NewTool(e.Name, opts...)
}

// paramOption maps a Param to the matching mcp-go property builder.
func paramOption(p Param) mcp.ToolOption {
	var opts []mcp.PropertyOption
	desc := p.Description
	if p.Location {
		desc = strings.TrimSpace(desc + " Defaults to the configured location.")
	}
	if desc != "" {
		opts = append(opts, mcp.Description(desc))
	}
	if p.Required && !p.Location {
		opts = append(opts, mcp.Required())
	}

	switch p.Type {
	case "number", "integer":
		return mcp.WithNumber(p.Name, opts...)
	case "boolean":
		return mcp.WithBoolean(p.Name, opts...)
	case "array":
		items := mcp.WithStringItems()
		if p.Items == "object" {
			items = mcp.Items(map[string]any{"type": "object"})
		}
		opts = append([]mcp.PropertyOption{items}, opts...)
		return mcp.WithArray(p.Name, opts...)
	case "object":
		return mcp.WithObject(p.Name, opts...)
	default:
		if len(p.Enum) > 0 {
			opts = append(opts, mcp.Enum(p.Enum...))
		}
		return mcp.WithString(p.Name, opts...)
	}
}

// request is a resolved REST call.
type request struct {
	path  string
	query url.Values
	body  map[string]any
}

// resolve maps tool arguments onto path, query and body.
func (e Endpoint) resolve(args map[string]any, locationID string) (*request, error) {
	req := &request{path: e.Path, query: url.Values{}, body: map[string]any{}}

	for _, p := range e.Params {
		val, ok := p.Fixed, p.Fixed != nil
		if !ok {
			val, ok = present(args, p.Name)
		}
		if !ok && p.Location && locationID != "" {
			val, ok = locationID, true
		}
		if !ok {
			if p.Required || p.In == inPath {
				return nil, &MissingParamError{Tool: e.Name, Param: p.Name}
			}
			continue
		}

		switch p.In {
		case inPath:
			req.path = strings.ReplaceAll(req.path, "{"+p.wireKey()+"}", url.PathEscape(scalar(val)))
		case inQuery:
			if list, isList := val.([]any); isList {
				for _, item := range list {
					req.query.Add(p.wireKey(), scalar(item))
				}
				continue
			}
			req.query.Set(p.wireKey(), scalar(val))
		case inBody:
			req.body[p.wireKey()] = val
		}
	}
	return req, nil
}

// present reports a usable argument value. Empty strings count as absent.
func present(args map[string]any, name string) (any, bool) {
	v, ok := args[name]
	if !ok || v == nil {
		return nil, false
	}
	if s, isString := v.(string); isString && s == "" {
		return nil, false
	}
	return v, true
}

// scalar renders a JSON value for a URL.
func scalar(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprint(t)
	}
}

// Table is a capability group backed by an endpoint table.
type Table struct {
	name      string
	endpoints []Endpoint
	byName    map[string]int
	backend   Backend
}

// NewTable builds a group named name. It panics on a malformed table, which
// is a programming error caught by the package tests.
func NewTable(name string, backend Backend, endpoints []Endpoint) *Table {
	t := &Table{
		name:      name,
		endpoints: endpoints,
		byName:    make(map[string]int, len(endpoints)),
		backend:   backend,
	}
	for i, ep := range endpoints {
		if err := ep.Validate(); err != nil {
			panic(fmt.Sprintf("groups: %s: %v", name, err))
		}
		t.byName[ep.Name] = i
	}
	return t
}

func (t *Table) Name() string { return t.name }

func (t *Table) Definitions() []mcp.Tool {
	tools := make([]mcp.Tool, len(t.endpoints))
	for i, ep := range t.endpoints {
		tools[i] = ep.Tool()
	}
	return tools
}

func (t *Table) ToolNames() []string {
	names := make([]string, len(t.endpoints))
	for i, ep := range t.endpoints {
		names[i] = ep.Name
	}
	return names
}

// Endpoints returns the group's table.
func (t *Table) Endpoints() []Endpoint {
	return append([]Endpoint(nil), t.endpoints...)
}

// Execute resolves the arguments for name and performs the backend call.
func (t *Table) Execute(ctx context.Context, name string, args map[string]any) (any, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, fmt.Errorf("group %s does not handle tool %s", t.name, name)
	}
	ep := t.endpoints[i]

	req, err := ep.resolve(args, t.backend.LocationID())
	if err != nil {
		return nil, err
	}

	var body any
	if len(req.body) > 0 {
		body = req.body
	} else if ep.Method == "POST" || ep.Method == "PUT" || ep.Method == "PATCH" {
		body = map[string]any{}
	}
	return t.backend.Do(ctx, ep.Method, req.path, req.query, body)
}
