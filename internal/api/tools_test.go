package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"rawdago/pkg/catalog"
)

func TestToolsHandler_HandleList(t *testing.T) {
	h := NewToolsHandler()

	req := httptest.NewRequest("GET", "/api/tools", http.NoBody)
	w := httptest.NewRecorder()
	h.HandleList(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var groups []catalog.Group
	if err := json.NewDecoder(w.Body).Decode(&groups); err != nil {
		t.Fatalf("failed to decode catalog: %v", err)
	}
	if len(groups) == 0 {
		t.Fatal("expected at least one tool group")
	}

	// Every listed tool must be dispatchable.
	for _, g := range groups {
		for _, tool := range g.Tools {
			if _, ok := catalog.Resolve(tool.ID); !ok {
				t.Errorf("catalog lists tool %q that does not resolve", tool.ID)
			}
		}
	}
}
