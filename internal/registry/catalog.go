package registry

import (
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// entry ties a published definition to the group that published it. groupIdx
// is the group's registration index; groups are not required to be comparable.
type entry struct {
	tool     mcp.Tool
	group    Group
	groupIdx int
}

// Catalog is the ordered, deduplicated set of tools advertised by the server.
// It is immutable after BuildCatalog returns.
type Catalog struct {
	entries []entry
	byName  map[string]int
	groups  []Group
}

// BuildCatalog concatenates every group's definitions in registration order.
// A name published twice fails with *DuplicateToolNameError.
func BuildCatalog(groups ...Group) (*Catalog, error) {
	c := &Catalog{
		byName: make(map[string]int),
		groups: append([]Group(nil), groups...),
	}

	for gi, g := range groups {
		for _, def := range g.Definitions() {
			if strings.TrimSpace(def.Name) == "" {
				return nil, fmt.Errorf("%w: group %q published a tool with an empty name", ErrInvalidDefinition, g.Name())
			}
			if i, exists := c.byName[def.Name]; exists {
				return nil, &DuplicateToolNameError{
					Name:   def.Name,
					First:  c.entries[i].group.Name(),
					Second: g.Name(),
				}
			}
			c.byName[def.Name] = len(c.entries)
			c.entries = append(c.entries, entry{tool: def, group: g, groupIdx: gi})
		}
	}

	return c, nil
}

// Tools returns a copy of the catalog in order.
func (c *Catalog) Tools() []mcp.Tool {
	tools := make([]mcp.Tool, len(c.entries))
	for i, e := range c.entries {
		tools[i] = e.tool
	}
	return tools
}

// Names returns tool names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.tool.Name
	}
	return names
}

// Lookup returns the definition for name.
func (c *Catalog) Lookup(name string) (mcp.Tool, bool) {
	i, ok := c.byName[name]
	if !ok {
		return mcp.Tool{}, false
	}
	return c.entries[i].tool, true
}

// Len returns the number of tools.
func (c *Catalog) Len() int {
	return len(c.entries)
}

// Groups returns the groups in registration order.
func (c *Catalog) Groups() []Group {
	return append([]Group(nil), c.groups...)
}

// publisher returns the registration index and group that published name.
func (c *Catalog) publisher(name string) (int, Group, bool) {
	i, ok := c.byName[name]
	if !ok {
		return -1, nil, false
	}
	return c.entries[i].groupIdx, c.entries[i].group, true
}
