package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	"github.com/nishanthj27/pdf-merger-pro/internal/registry"
)

// HealthHandler reports process liveness and registry counters
type HealthHandler struct {
	sessions *registry.SessionRegistry
	merges   *registry.MergeRegistry
	queue    domain.ThumbnailQueue
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(sessions *registry.SessionRegistry, merges *registry.MergeRegistry, queue domain.ThumbnailQueue) *HealthHandler {
	return &HealthHandler{
		sessions: sessions,
		merges:   merges,
		queue:    queue,
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":                "healthy",
		"timestamp":             time.Now().Format(time.RFC3339),
		"active_sessions":       h.sessions.Len(),
		"tracked_files":         h.sessions.FileCount(),
		"merged_files":          h.merges.Len(),
		"thumbnail_queue_depth": h.queue.Depth(),
	})
}

// writeJSON writes a JSON response
func (h *HealthHandler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
