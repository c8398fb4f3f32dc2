// Package registry aggregates tool definitions from capability groups into one
// immutable catalog, classifies them for discovery, and routes invocations by name
// to the single group that owns each tool.
//
// Startup order:
//
//	catalog, err := registry.BuildCatalog(groups...)   // fails on duplicate names
//	router, err := registry.NewRouter(catalog, logger) // fails on ownership gaps
//	result, err := router.Dispatch(ctx, "create_contact", args)
//
// Nothing in this package mutates the catalog or index after construction, so a
// Catalog and Router can be shared by any number of transport connections.
package registry
