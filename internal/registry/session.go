package registry

import (
	"sync"

	"github.com/google/uuid"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
)

// SessionRegistry is the in-memory index of upload sessions: session id to
// the ordered list of files uploaded into it. Handlers, the thumbnail
// worker, and the cleanup sweeper all share it, so every access goes
// through the mutex.
type SessionRegistry struct {
	mu       sync.RWMutex
	sessions map[string][]domain.UploadedFile
}

// NewSessionRegistry creates an empty registry.
func NewSessionRegistry() *SessionRegistry {
	return &SessionRegistry{
		sessions: make(map[string][]domain.UploadedFile),
	}
}

// CreateOrGet returns existing when it names a live session; otherwise it
// creates a fresh session and returns the new id.
func (r *SessionRegistry) CreateOrGet(existing string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing != "" {
		if _, ok := r.sessions[existing]; ok {
			return existing
		}
	}

	id := uuid.New().String()
	r.sessions[id] = []domain.UploadedFile{}
	return id
}

// Has reports whether a session is live.
func (r *SessionRegistry) Has(sessionID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.sessions[sessionID]
	return ok
}

// NextIndex returns the index the next appended file will receive.
func (r *SessionRegistry) NextIndex(sessionID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions[sessionID])
}

// Append adds a file record to the end of a session's list.
func (r *SessionRegistry) Append(sessionID string, file domain.UploadedFile) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[sessionID] = append(r.sessions[sessionID], file)
}

// Files returns a copy of a session's records in upload order.
func (r *SessionRegistry) Files(sessionID string) ([]domain.UploadedFile, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	files, ok := r.sessions[sessionID]
	if !ok {
		return nil, false
	}

	out := make([]domain.UploadedFile, len(files))
	copy(out, files)
	return out, true
}

// SetThumbnail overwrites the thumbnail of the record with the given file
// index. It reports false when the session or the record is gone, which
// callers treat as a no-op.
func (r *SessionRegistry) SetThumbnail(sessionID string, fileIndex int, dataURI string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	files, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	for i := range files {
		if files[i].FileIndex == fileIndex {
			files[i].Thumbnail = dataURI
			return true
		}
	}
	return false
}

// Remove drops a session from the registry.
func (r *SessionRegistry) Remove(sessionID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, sessionID)
}

// IDs returns the ids of all live sessions.
func (r *SessionRegistry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.sessions))
	for id := range r.sessions {
		ids = append(ids, id)
	}
	return ids
}

// Len returns the number of live sessions.
func (r *SessionRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.sessions)
}

// FileCount returns the total number of tracked files across all sessions.
func (r *SessionRegistry) FileCount() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, files := range r.sessions {
		total += len(files)
	}
	return total
}
