package handlers

import (
	"net/http"

	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/mcp"
)

// CapabilitiesHandler reports the protocol capabilities without a handshake.
type CapabilitiesHandler struct {
	name string
}

func NewCapabilitiesHandler(name string) *CapabilitiesHandler {
	return &CapabilitiesHandler{name: name}
}

type capabilitiesResponse struct {
	Capabilities mcp.Capabilities `json:"capabilities"`
	Server       string           `json:"server"`
	Version      string           `json:"version"`
}

// ServeHTTP handles GET /capabilities.
func (h *CapabilitiesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	WriteJSON(w, http.StatusOK, capabilitiesResponse{
		Capabilities: mcp.ServerCapabilities(),
		Server:       h.name,
		Version:      common.GetVersion(),
	})
}
