package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"create_contact", "Contact Management"},
		{"create_email_contact", "Contact Management"},
		{"send_sms", "Messaging & Communication"},
		{"get_email_campaigns", "Messaging & Communication"},
		{"search_conversations", "Messaging & Communication"},
		{"get_pipelines", "Sales & Opportunities"},
		{"create_appointment", "Calendar & Scheduling"},
		{"get_calendar_events", "Calendar & Scheduling"},
		{"list_invoices", "Payments & Billing"},
		{"list_transactions", "Payments & Billing"},
		{"create_blog_post", "Marketing & Content"},
		{"get_media_files", "Marketing & Content"},
		{"get_location", "Business Operations"},
		{"ghl_get_workflows", "Business Operations"},
		{"get_object_schema", "Custom Objects & Data"},
		{"ghl_get_custom_field", "Custom Objects & Data"},
		{"verify_address", "Other"},
		{"", "Other"},
		{"Get_Contact", "Contact Management"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CategoryOf(tt.name))
		})
	}
}

func TestClassify_OrderAndSorting(t *testing.T) {
	names := []string{"send_sms", "update_contact", "verify_address", "create_contact", "get_pipelines"}

	got := Classify(names)
	require.Len(t, got, 4)

	assert.Equal(t, Category{Name: "Contact Management", Count: 2, Tools: []string{"create_contact", "update_contact"}}, got[0])
	assert.Equal(t, "Messaging & Communication", got[1].Name)
	assert.Equal(t, "Sales & Opportunities", got[2].Name)
	assert.Equal(t, Category{Name: "Other", Count: 1, Tools: []string{"verify_address"}}, got[3])
}

func TestClassify_Partition(t *testing.T) {
	names := []string{
		"create_contact", "send_email", "get_opportunity", "get_calendars",
		"create_invoice", "get_social_posts", "get_location_tags", "get_all_objects", "frobnicate",
	}

	total := 0
	seen := map[string]int{}
	for _, c := range Classify(names) {
		assert.Equal(t, len(c.Tools), c.Count)
		assert.NotZero(t, c.Count)
		total += c.Count
		for _, tool := range c.Tools {
			seen[tool]++
		}
	}

	assert.Equal(t, len(names), total)
	for _, n := range names {
		assert.Equal(t, 1, seen[n], n)
	}
}

func TestClassify_Empty(t *testing.T) {
	assert.Empty(t, Classify(nil))
}

func TestCategoryLabels(t *testing.T) {
	labels := CategoryLabels()
	require.Len(t, labels, 9)
	assert.Equal(t, "Contact Management", labels[0])
	assert.Equal(t, CategoryOther, labels[8])
}
