package registry

import (
	"sync"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
)

// MergeRegistry is the in-memory index of produced merge outputs, keyed by
// merge id. Populated by merges, read by downloads, pruned by the cleanup
// sweeper.
type MergeRegistry struct {
	mu     sync.RWMutex
	merges map[string]domain.MergeResult
}

// NewMergeRegistry creates an empty registry.
func NewMergeRegistry() *MergeRegistry {
	return &MergeRegistry{
		merges: make(map[string]domain.MergeResult),
	}
}

// Put registers a merge result under its id.
func (r *MergeRegistry) Put(result domain.MergeResult) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.merges[result.ID] = result
}

// Get looks up a merge result by id.
func (r *MergeRegistry) Get(id string) (domain.MergeResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.merges[id]
	return result, ok
}

// Remove drops a single merge result.
func (r *MergeRegistry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.merges, id)
}

// RemoveBySession drops every result produced from the given session and
// returns how many were removed.
func (r *MergeRegistry) RemoveBySession(sessionID string) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, result := range r.merges {
		if result.SessionID == sessionID {
			delete(r.merges, id)
			removed++
		}
	}
	return removed
}

// PurgeOrphans drops results whose session id is not in liveSessions.
// Merge results are reclaimed through their session; without this pass an
// entry whose session vanished out-of-band would live forever.
func (r *MergeRegistry) PurgeOrphans(liveSessions map[string]struct{}) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, result := range r.merges {
		if _, ok := liveSessions[result.SessionID]; !ok {
			delete(r.merges, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of registered merge results.
func (r *MergeRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.merges)
}
