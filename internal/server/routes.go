package server

import "net/http"

// setupRoutes configures all HTTP routes.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// MCP transport (SSE stream + message post)
	mux.HandleFunc("GET /sse", s.app.SSE.HandleStream)
	mux.HandleFunc("POST /messages", s.app.SSE.HandleMessage)

	// Informational
	mux.Handle("/health", s.app.HealthHandler)
	mux.Handle("/version", s.app.VersionHandler)
	mux.Handle("/capabilities", s.app.CapabilitiesHandler)
	mux.HandleFunc("GET /tools", s.app.ToolsHandler.HandleList)
	mux.HandleFunc("GET /tools/{name}", s.app.ToolsHandler.HandleDescribe)

	mux.HandleFunc("/", s.handleNotFound)

	return mux
}

// handleNotFound returns a JSON 404 for unmatched routes.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"Not Found","message":"The requested endpoint does not exist"}`))
}
