package groups

import "github.com/bobmcallan/ghl-mcp/internal/registry"

// All returns every capability group in registration order. Catalog order,
// and therefore tools/list order, follows this slice.
func All(b Backend) []registry.Group {
	return []registry.Group{
		NewContacts(b),
		NewConversations(b),
		NewBlog(b),
		NewOpportunities(b),
		NewCalendar(b),
		NewEmail(b),
		NewLocation(b),
		NewEmailVerification(b),
		NewSocialMedia(b),
		NewMedia(b),
		NewCustomObjects(b),
		NewAssociations(b),
		NewCustomFields(b),
		NewWorkflows(b),
		NewSurveys(b),
		NewStore(b),
		NewProducts(b),
		NewPayments(b),
		NewInvoices(b),
	}
}
