package registry

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/mark3labs/mcp-go/mcp"
)

const maxRelatedTools = 5

// entityPattern finds the leftmost entity keyword in a tool name. Earlier
// alternatives win when two start at the same position.
var entityPattern = regexp.MustCompile(`contact|conversation|message|opportunity|pipeline|calendar|appointment|event|blog|post|email|template|location|tag|media|social|object|record|association|field|workflow|survey|store|product|price|payment|order|transaction|subscription|coupon|invoice|estimate|schedule`)

// Description is the enriched view of one tool.
type Description struct {
	Tool             mcp.Tool       `json:"tool"`
	ExampleArguments map[string]any `json:"exampleArguments"`
	RelatedTools     []string       `json:"relatedTools"`
	Category         string         `json:"category"`
}

// Describe returns the definition for name with example arguments, related
// tools and its category. Unknown names fail with *UnknownToolError.
func (c *Catalog) Describe(name string) (*Description, error) {
	tool, ok := c.Lookup(name)
	if !ok {
		return nil, &UnknownToolError{Name: name}
	}

	schema, err := inputSchema(tool)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidDefinition, name, err)
	}

	return &Description{
		Tool:             tool,
		ExampleArguments: exampleArguments(schema),
		RelatedTools:     c.related(name),
		Category:         CategoryOf(name),
	}, nil
}

// inputSchema decodes the tool's published input schema.
func inputSchema(tool mcp.Tool) (*jsonschema.Schema, error) {
	raw, err := json.Marshal(tool)
	if err != nil {
		return nil, err
	}
	var wire struct {
		InputSchema json.RawMessage `json:"inputSchema"`
	}
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, err
	}
	schema := &jsonschema.Schema{}
	if len(wire.InputSchema) == 0 {
		return schema, nil
	}
	if err := json.Unmarshal(wire.InputSchema, schema); err != nil {
		return nil, err
	}
	return schema, nil
}

// exampleArguments fills every required field with a placeholder guessed
// from its name.
func exampleArguments(schema *jsonschema.Schema) map[string]any {
	args := make(map[string]any, len(schema.Required))
	for _, field := range schema.Required {
		args[field] = exampleValue(field, schema.Properties[field])
	}
	return args
}

func exampleValue(field string, prop *jsonschema.Schema) any {
	lower := strings.ToLower(field)
	switch {
	case strings.Contains(lower, "email"):
		return "user@example.com"
	case strings.Contains(lower, "phone"):
		return "+1234567890"
	case strings.Contains(lower, "id"):
		return "example_id_123"
	}
	if prop != nil && len(prop.Enum) > 0 {
		return prop.Enum[0]
	}
	return "example_value"
}

// related returns up to five other tools sharing name's entity keyword.
func (c *Catalog) related(name string) []string {
	out := []string{}
	entity := entityPattern.FindString(name)
	if entity == "" {
		return out
	}
	for _, e := range c.entries {
		if e.tool.Name == name || !strings.Contains(e.tool.Name, entity) {
			continue
		}
		out = append(out, e.tool.Name)
		if len(out) == maxRelatedTools {
			break
		}
	}
	return out
}
