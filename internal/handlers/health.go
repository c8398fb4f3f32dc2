package handlers

import (
	"net/http"
	"time"

	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/registry"
)

// HealthHandler handles health check requests.
type HealthHandler struct {
	name    string
	catalog *registry.Catalog
	logger  *common.Logger
	now     func() time.Time
}

// NewHealthHandler creates a health handler reporting server name and catalog size.
func NewHealthHandler(name string, catalog *registry.Catalog, logger *common.Logger) *HealthHandler {
	return &HealthHandler{name: name, catalog: catalog, logger: logger, now: time.Now}
}

type healthResponse struct {
	Status    string `json:"status"`
	Server    string `json:"server"`
	Version   string `json:"version"`
	Timestamp string `json:"timestamp"`
	Tools     int    `json:"tools"`
}

// ServeHTTP handles GET /health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, healthResponse{
		Status:    "healthy",
		Server:    h.name,
		Version:   common.GetVersion(),
		Timestamp: h.now().UTC().Format(time.RFC3339),
		Tools:     h.catalog.Len(),
	})
}
