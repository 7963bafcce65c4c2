package service

import (
	"sync"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	"github.com/nishanthj27/pdf-merger-pro/internal/registry"
)

// ThumbnailWorker renders preview thumbnails off the request path. A single
// goroutine owns the queue, and session state is only touched through the
// registry, so the worker never races the handlers.
type ThumbnailWorker struct {
	jobs     chan domain.ThumbnailJob
	renderer domain.ThumbnailRenderer
	sessions *registry.SessionRegistry
	logger   domain.Logger

	quit chan struct{}
	done chan struct{}
	once sync.Once
}

// NewThumbnailWorker creates a worker with a bounded FIFO queue.
func NewThumbnailWorker(
	queueSize int,
	renderer domain.ThumbnailRenderer,
	sessions *registry.SessionRegistry,
	logger domain.Logger,
) *ThumbnailWorker {
	if queueSize <= 0 {
		queueSize = 1
	}
	return &ThumbnailWorker{
		jobs:     make(chan domain.ThumbnailJob, queueSize),
		renderer: renderer,
		sessions: sessions,
		logger:   logger,
		quit:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Start launches the consumer goroutine.
func (w *ThumbnailWorker) Start() {
	go w.run()
}

// Stop ends the consumer once its in-flight job finishes. Jobs still queued
// are dropped; their previews keep the placeholder.
func (w *ThumbnailWorker) Stop() {
	w.once.Do(func() {
		close(w.quit)
	})
	<-w.done
}

// Enqueue queues a render job without blocking. When the queue is full the
// job is dropped and the preview keeps its placeholder.
func (w *ThumbnailWorker) Enqueue(job domain.ThumbnailJob) error {
	select {
	case w.jobs <- job:
		return nil
	default:
		return domain.ErrQueueFull
	}
}

// Depth returns the number of jobs waiting to be processed.
func (w *ThumbnailWorker) Depth() int {
	return len(w.jobs)
}

func (w *ThumbnailWorker) run() {
	defer close(w.done)
	for {
		select {
		case job := <-w.jobs:
			w.process(job)
		case <-w.quit:
			return
		}
	}
}

func (w *ThumbnailWorker) process(job domain.ThumbnailJob) {
	thumb, err := w.renderer.Render(job.FilePath)
	if err != nil {
		w.logger.Warn("Thumbnail render failed, keeping placeholder",
			"session_id", job.SessionID, "file_index", job.FileIndex, "error", err)
		thumb = domain.PlaceholderThumbnail()
	}

	if !w.sessions.SetThumbnail(job.SessionID, job.FileIndex, thumb.DataURI) {
		// Session was evicted before the render finished.
		w.logger.Debug("Dropping thumbnail for vanished session",
			"session_id", job.SessionID, "file_index", job.FileIndex)
	}
}
