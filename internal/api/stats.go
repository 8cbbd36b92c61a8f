package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"rawdago/pkg/tracker"
)

// StatsHandler serves runtime usage statistics.
type StatsHandler struct {
	tracker *tracker.Tracker
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(t *tracker.Tracker) *StatsHandler {
	return &StatsHandler{tracker: t}
}

// ProviderStatsDTO is the JSON shape for a single provider's counters.
type ProviderStatsDTO struct {
	APISuccess    int64 `json:"api_success"`
	APIFailures   int64 `json:"api_failures"`
	APIZeroResult int64 `json:"api_zero_result"`
}

// ServeHTTP handles GET /api/stats
func (h *StatsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	providers := make(map[string]ProviderStatsDTO)
	for name, s := range h.tracker.Snapshot() {
		providers[name] = ProviderStatsDTO{
			APISuccess:    s.APISuccess,
			APIFailures:   s.APIFailures,
			APIZeroResult: s.APIZeroResult,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(map[string]any{"providers": providers}); err != nil {
		slog.Error("Failed to encode stats response", "error", err)
	}
}
