package service

import (
	"sync"
	"time"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	"github.com/nishanthj27/pdf-merger-pro/internal/registry"
	"github.com/nishanthj27/pdf-merger-pro/internal/storage"
)

// CleanupService reclaims expired sessions: the registry entry, every merge
// result produced from it, and the on-disk directory. Reclamation is
// best-effort — timing depends on when a trigger fires, not a precise TTL.
type CleanupService struct {
	sessions  *registry.SessionRegistry
	merges    *registry.MergeRegistry
	store     *storage.FileStore
	ttl       time.Duration
	threshold int
	logger    domain.Logger

	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// NewCleanupService creates the sweeper. Sessions older than ttl are
// evicted; threshold is the registry size that triggers an opportunistic
// sweep after uploads.
func NewCleanupService(
	sessions *registry.SessionRegistry,
	merges *registry.MergeRegistry,
	store *storage.FileStore,
	ttl time.Duration,
	threshold int,
	logger domain.Logger,
) *CleanupService {
	return &CleanupService{
		sessions:  sessions,
		merges:    merges,
		store:     store,
		ttl:       ttl,
		threshold: threshold,
		logger:    logger,
		quit:      make(chan struct{}),
		done:      make(chan struct{}),
	}
}

// Start launches the periodic sweep loop.
func (c *CleanupService) Start(interval time.Duration) {
	go c.run(interval)
}

// Stop ends the periodic sweep loop.
func (c *CleanupService) Stop() {
	c.once.Do(func() {
		close(c.quit)
	})
	<-c.done
}

func (c *CleanupService) run(interval time.Duration) {
	defer close(c.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Sweep()
		case <-c.quit:
			return
		}
	}
}

// MaybeSweep sweeps when the session registry has grown past the
// threshold. Upload handling calls this after each batch.
func (c *CleanupService) MaybeSweep() {
	if c.threshold > 0 && c.sessions.Len() > c.threshold {
		c.Sweep()
	}
}

// Sweep evicts every session older than the TTL and purges merge results
// whose session no longer exists. It returns the number of evicted
// sessions.
func (c *CleanupService) Sweep() int {
	evicted := 0
	for _, sessionID := range c.knownSessions() {
		age, err := c.store.SessionAge(sessionID)
		if err == nil && age <= c.ttl {
			continue
		}
		if err != nil {
			c.logger.Warn("Session age unreadable, treating as expired",
				"session_id", sessionID, "error", err)
		}
		c.evict(sessionID)
		evicted++
	}

	live := make(map[string]struct{})
	for _, id := range c.sessions.IDs() {
		live[id] = struct{}{}
	}
	if purged := c.merges.PurgeOrphans(live); purged > 0 {
		c.logger.Info("Purged orphaned merge results", "count", purged)
	}

	if evicted > 0 {
		c.logger.Info("Cleanup pass complete", "evicted_sessions", evicted)
	}
	return evicted
}

// knownSessions is the union of registry entries and on-disk session
// directories, so directories orphaned by a restart still get reclaimed.
func (c *CleanupService) knownSessions() []string {
	ids := c.sessions.IDs()
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		seen[id] = struct{}{}
	}
	for _, id := range c.store.SessionIDs() {
		if _, ok := seen[id]; !ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func (c *CleanupService) evict(sessionID string) {
	c.sessions.Remove(sessionID)
	removedMerges := c.merges.RemoveBySession(sessionID)

	if err := c.store.RemoveSession(sessionID); err != nil {
		c.logger.Error("Failed to delete session directory", err, "session_id", sessionID)
	}

	c.logger.Info("Evicted expired session",
		"session_id", sessionID, "merge_results_removed", removedMerges)
}
