package api

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"rawdago/pkg/logging"
	"rawdago/pkg/model"
)

// ContentGenerator dispatches a tool invocation and folds any failure
// into the result's error field.
type ContentGenerator interface {
	Generate(ctx context.Context, req model.Request) model.Result
}

// GenerateHandler handles tool invocation requests.
type GenerateHandler struct {
	svc ContentGenerator
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(svc ContentGenerator) *GenerateHandler {
	return &GenerateHandler{svc: svc}
}

// HandleGenerate handles POST /api/generate
func (h *GenerateHandler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	var req model.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("API: HandleGenerate decode error", "error", err)
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	requestID := uuid.New().String()
	if logging.RequestLogger != nil {
		logging.RequestLogger.Info("Generate",
			"request_id", requestID, "tool", req.ToolID, "age", req.Age)
	}

	result := h.svc.Generate(r.Context(), req)

	if result.Error != nil {
		slog.Warn("API: generation returned an error result",
			"request_id", requestID, "tool", req.ToolID)
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		slog.Error("Failed to encode generate response", "error", err)
	}
}
