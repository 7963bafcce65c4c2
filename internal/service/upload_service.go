package service

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	"github.com/nishanthj27/pdf-merger-pro/internal/registry"
	"github.com/nishanthj27/pdf-merger-pro/internal/storage"
	apperrors "github.com/nishanthj27/pdf-merger-pro/pkg/errors"
)

// UploadService persists uploads into session directories and builds the
// preview records the client renders. Previews go out with the placeholder
// thumbnail; the background worker fills in the real one.
type UploadService struct {
	sessions  *registry.SessionRegistry
	store     *storage.FileStore
	inspector domain.PDFInspector
	queue     domain.ThumbnailQueue
	cleanup   *CleanupService
	logger    domain.Logger
}

// NewUploadService creates the upload orchestrator.
func NewUploadService(
	sessions *registry.SessionRegistry,
	store *storage.FileStore,
	inspector domain.PDFInspector,
	queue domain.ThumbnailQueue,
	cleanup *CleanupService,
	logger domain.Logger,
) *UploadService {
	return &UploadService{
		sessions:  sessions,
		store:     store,
		inspector: inspector,
		queue:     queue,
		cleanup:   cleanup,
		logger:    logger,
	}
}

// ProcessUploads stores a batch of uploads under one session, reusing
// existingSession when it still names a live one. Files that are not PDFs
// are skipped, not reported; a batch where nothing survives is a
// validation error.
func (s *UploadService) ProcessUploads(existingSession string, uploads []domain.Upload) ([]domain.UploadedFile, string, error) {
	sessionID := s.sessions.CreateOrGet(existingSession)

	previews := make([]domain.UploadedFile, 0, len(uploads))
	for _, upload := range uploads {
		preview, err := s.processOne(sessionID, upload)
		if err != nil {
			s.logger.Warn("Skipping upload", "filename", upload.Filename, "error", err)
			continue
		}
		previews = append(previews, preview)
	}

	if len(previews) == 0 {
		return nil, "", apperrors.NewValidationError("No valid PDF files found")
	}

	s.logger.Info("Upload batch stored",
		"session_id", sessionID,
		"new_files", len(previews),
		"session_files", s.sessions.NextIndex(sessionID))

	if s.cleanup != nil {
		s.cleanup.MaybeSweep()
	}

	return previews, sessionID, nil
}

// SessionPreviews returns a session's current previews, including any
// thumbnails the worker has finished since upload.
func (s *UploadService) SessionPreviews(sessionID string) ([]domain.UploadedFile, error) {
	files, ok := s.sessions.Files(sessionID)
	if !ok {
		return nil, apperrors.NewNotFoundError("Session expired or invalid")
	}
	return files, nil
}

func (s *UploadService) processOne(sessionID string, upload domain.Upload) (domain.UploadedFile, error) {
	if upload.Filename == "" || !strings.EqualFold(filepath.Ext(upload.Filename), ".pdf") {
		return domain.UploadedFile{}, fmt.Errorf("%w: %q", domain.ErrInvalidFileType, upload.Filename)
	}

	index := s.sessions.NextIndex(sessionID)
	storedName := fmt.Sprintf("%d_%s", index, storage.SanitizeFilename(upload.Filename))

	path, size, err := s.store.SaveFile(sessionID, storedName, upload.Reader)
	if err != nil {
		return domain.UploadedFile{}, fmt.Errorf("save upload: %w", err)
	}

	pages, err := s.inspector.PageCount(path)
	if err != nil {
		// Extension said PDF but the content may not be; keep the file
		// with a zero count rather than failing the batch.
		s.logger.Error("Failed to read page count", err, "file", storedName)
		pages = 0
	}

	file := domain.UploadedFile{
		ID:           fmt.Sprintf("%s_%d", sessionID, index),
		Filename:     upload.Filename,
		SafeFilename: storedName,
		Size:         size,
		Pages:        pages,
		Thumbnail:    domain.PlaceholderThumbnailURI,
		SessionID:    sessionID,
		FileIndex:    index,
		FilePath:     storedName,
	}
	s.sessions.Append(sessionID, file)

	if err := s.queue.Enqueue(domain.ThumbnailJob{
		SessionID: sessionID,
		FileIndex: index,
		FilePath:  path,
	}); err != nil {
		s.logger.Warn("Thumbnail job dropped",
			"session_id", sessionID, "file_index", index, "error", err)
	}

	s.logger.Info("Stored upload",
		"filename", upload.Filename, "stored_as", storedName, "pages", pages, "size", size)

	return file, nil
}
