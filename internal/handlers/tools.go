package handlers

import (
	"errors"
	"net/http"

	mcpgo "github.com/mark3labs/mcp-go/mcp"

	"github.com/bobmcallan/ghl-mcp/internal/common"
	"github.com/bobmcallan/ghl-mcp/internal/registry"
)

// ToolsHandler serves the discovery endpoints.
type ToolsHandler struct {
	catalog *registry.Catalog
	logger  *common.Logger
}

// NewToolsHandler creates the discovery handler for catalog.
func NewToolsHandler(catalog *registry.Catalog, logger *common.Logger) *ToolsHandler {
	return &ToolsHandler{catalog: catalog, logger: logger}
}

type toolListResponse struct {
	Tools      []mcpgo.Tool        `json:"tools"`
	TotalCount int                 `json:"totalCount"`
	Categories []registry.Category `json:"categories"`
}

// HandleList handles GET /tools. Categories are recomputed per call.
func (h *ToolsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	categories := registry.Classify(h.catalog.Names())
	if categories == nil {
		categories = []registry.Category{}
	}

	WriteJSON(w, http.StatusOK, toolListResponse{
		Tools:      h.catalog.Tools(),
		TotalCount: h.catalog.Len(),
		Categories: categories,
	})
}

// HandleDescribe handles GET /tools/{name}.
func (h *ToolsHandler) HandleDescribe(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, http.MethodGet) {
		return
	}

	name := r.PathValue("name")
	desc, err := h.catalog.Describe(name)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownTool) {
			WriteError(w, http.StatusNotFound, "Tool not found: "+name)
			return
		}
		h.logger.Error().Str("tool", name).Err(err).Msg("describe failed")
		WriteError(w, http.StatusInternalServerError, "failed to describe tool")
		return
	}

	WriteJSON(w, http.StatusOK, desc)
}
