package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"rawdago/pkg/catalog"
)

// ToolsHandler serves the tool catalog.
type ToolsHandler struct{}

// NewToolsHandler creates a new ToolsHandler.
func NewToolsHandler() *ToolsHandler {
	return &ToolsHandler{}
}

// HandleList handles GET /api/tools
func (h *ToolsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(catalog.Groups()); err != nil {
		slog.Error("Failed to encode tool catalog", "error", err)
	}
}
