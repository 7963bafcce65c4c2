package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	"github.com/nishanthj27/pdf-merger-pro/internal/registry"
)

type stubQueue struct {
	depth int
}

func (q *stubQueue) Enqueue(job domain.ThumbnailJob) error { return nil }
func (q *stubQueue) Depth() int                            { return q.depth }

func TestHealthHandler_Health(t *testing.T) {
	sessions := registry.NewSessionRegistry()
	merges := registry.NewMergeRegistry()

	sessionID := sessions.CreateOrGet("")
	sessions.Append(sessionID, domain.UploadedFile{ID: sessionID + "_0", Filename: "a.pdf"})
	sessions.Append(sessionID, domain.UploadedFile{ID: sessionID + "_1", Filename: "b.pdf"})
	merges.Put(domain.MergeResult{ID: "merge-1", SessionID: sessionID})

	handler := NewHealthHandler(sessions, merges, &stubQueue{depth: 3})

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	w := httptest.NewRecorder()
	handler.Health(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}

	var payload map[string]interface{}
	if err := json.NewDecoder(w.Body).Decode(&payload); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}

	if payload["status"] != "healthy" {
		t.Errorf("Expected status healthy, got %v", payload["status"])
	}
	if payload["active_sessions"] != float64(1) {
		t.Errorf("Expected 1 active session, got %v", payload["active_sessions"])
	}
	if payload["tracked_files"] != float64(2) {
		t.Errorf("Expected 2 tracked files, got %v", payload["tracked_files"])
	}
	if payload["merged_files"] != float64(1) {
		t.Errorf("Expected 1 merged file, got %v", payload["merged_files"])
	}
	if payload["thumbnail_queue_depth"] != float64(3) {
		t.Errorf("Expected queue depth 3, got %v", payload["thumbnail_queue_depth"])
	}

	ts, ok := payload["timestamp"].(string)
	if !ok {
		t.Fatalf("Expected timestamp string, got %v", payload["timestamp"])
	}
	if _, err := time.Parse(time.RFC3339, ts); err != nil {
		t.Errorf("Expected RFC3339 timestamp, got %s", ts)
	}
}
