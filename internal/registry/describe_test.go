package registry

import (
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describeCatalog(t *testing.T) *Catalog {
	t.Helper()
	contacts := &fakeGroup{name: "contacts"}
	contacts.defs = []mcp.Tool{
		mcp.NewTool("create_contact",
			mcp.WithDescription("Create a contact"),
			mcp.WithString("email", mcp.Required()),
			mcp.WithString("phone", mcp.Required()),
			mcp.WithString("locationId", mcp.Required()),
			mcp.WithString("firstName", mcp.Required()),
			mcp.WithString("source"),
		),
		mcp.NewTool("get_contact", mcp.WithString("contactId", mcp.Required())),
		mcp.NewTool("update_contact"),
		mcp.NewTool("delete_contact"),
		mcp.NewTool("search_contacts"),
		mcp.NewTool("get_contact_tasks"),
		mcp.NewTool("add_contact_tags"),
	}
	for _, d := range contacts.defs {
		contacts.claimed = append(contacts.claimed, d.Name)
	}
	other := newFakeGroup("misc", "send_sms", "verify_address")
	status := &fakeGroup{name: "status", defs: []mcp.Tool{
		mcp.NewTool("set_status", mcp.WithString("status", mcp.Required(), mcp.Enum("open", "won"))),
	}, claimed: []string{"set_status"}}

	catalog, err := BuildCatalog(contacts, other, status)
	require.NoError(t, err)
	return catalog
}

func TestDescribe_ExampleArguments(t *testing.T) {
	desc, err := describeCatalog(t).Describe("create_contact")
	require.NoError(t, err)

	assert.Equal(t, map[string]any{
		"email":      "user@example.com",
		"phone":      "+1234567890",
		"locationId": "example_id_123",
		"firstName":  "example_value",
	}, desc.ExampleArguments)
	assert.Equal(t, "Contact Management", desc.Category)
}

func TestDescribe_EnumPlaceholder(t *testing.T) {
	desc, err := describeCatalog(t).Describe("set_status")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "open"}, desc.ExampleArguments)
}

func TestDescribe_RelatedTools(t *testing.T) {
	desc, err := describeCatalog(t).Describe("create_contact")
	require.NoError(t, err)

	assert.Equal(t, []string{"get_contact", "update_contact", "delete_contact", "search_contacts", "get_contact_tasks"}, desc.RelatedTools)
	assert.NotContains(t, desc.RelatedTools, "create_contact")
}

func TestDescribe_NoEntityKeyword(t *testing.T) {
	desc, err := describeCatalog(t).Describe("verify_address")
	require.NoError(t, err)

	assert.Empty(t, desc.RelatedTools)
	assert.NotNil(t, desc.RelatedTools)
	assert.Empty(t, desc.ExampleArguments)
	assert.Equal(t, "Other", desc.Category)
}

func TestDescribe_RoundTrip(t *testing.T) {
	catalog := describeCatalog(t)
	for _, tool := range catalog.Tools() {
		desc, err := catalog.Describe(tool.Name)
		require.NoError(t, err, tool.Name)
		assert.Equal(t, tool.Name, desc.Tool.Name)
		assert.Equal(t, tool.Description, desc.Tool.Description)
		assert.Equal(t, CategoryOf(tool.Name), desc.Category)
	}
}

func TestDescribe_Unknown(t *testing.T) {
	_, err := describeCatalog(t).Describe("nope")
	require.ErrorIs(t, err, ErrUnknownTool)
}

func TestEntityPattern_Leftmost(t *testing.T) {
	assert.Equal(t, "contact", entityPattern.FindString("get_contact_appointments"))
	assert.Equal(t, "email", entityPattern.FindString("verify_email"))
	assert.Equal(t, "", entityPattern.FindString("frobnicate"))
}
