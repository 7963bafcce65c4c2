package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	"github.com/nishanthj27/pdf-merger-pro/internal/registry"
	"github.com/nishanthj27/pdf-merger-pro/internal/storage"
	apperrors "github.com/nishanthj27/pdf-merger-pro/pkg/errors"
)

const outputTimestampLayout = "20060102_150405"

// MergeService builds merged PDFs from a session's files in the order the
// client asked for, and resolves merge ids for download.
type MergeService struct {
	sessions  *registry.SessionRegistry
	merges    *registry.MergeRegistry
	store     *storage.FileStore
	inspector domain.PDFInspector
	logger    domain.Logger
}

// NewMergeService creates the merge orchestrator.
func NewMergeService(
	sessions *registry.SessionRegistry,
	merges *registry.MergeRegistry,
	store *storage.FileStore,
	inspector domain.PDFInspector,
	logger domain.Logger,
) *MergeService {
	return &MergeService{
		sessions:  sessions,
		merges:    merges,
		store:     store,
		inspector: inspector,
		logger:    logger,
	}
}

// MergeOrdered concatenates the session's files in the requested order into
// a new PDF and registers the result for download. Order entries that no
// longer resolve are skipped; the operation only fails when nothing
// resolves at all.
func (s *MergeService) MergeOrdered(sessionID string, order []domain.FileOrderEntry) (domain.MergeResult, error) {
	if sessionID == "" || len(order) == 0 {
		return domain.MergeResult{}, apperrors.NewValidationError("Missing session or file order data")
	}
	if !s.store.SessionExists(sessionID) {
		return domain.MergeResult{}, apperrors.NewValidationError("Session expired or invalid")
	}

	files, ok := s.sessions.Files(sessionID)
	if !ok || len(files) == 0 {
		return domain.MergeResult{}, apperrors.NewValidationError("No files found in session")
	}

	s.logger.Info("Merge requested",
		"session_id", sessionID, "order_entries", len(order), "session_files", len(files))

	byID := make(map[string]domain.UploadedFile, len(files))
	for _, file := range files {
		byID[file.ID] = file
	}

	inputs := make([]string, 0, len(order))
	names := make([]string, 0, len(order))
	totalPages := 0

	for _, entry := range order {
		file, ok := byID[entry.ID]
		if !ok {
			s.logger.Warn("Ordered file not found in session", "file_id", entry.ID)
			continue
		}

		if !s.store.FileExists(sessionID, file.SafeFilename) {
			s.logger.Warn("Stored file missing from disk",
				"file_id", entry.ID, "stored_name", file.SafeFilename)
			continue
		}

		path := s.store.FilePath(sessionID, file.SafeFilename)
		pages, err := s.inspector.PageCount(path)
		if err != nil {
			s.logger.Warn("Unreadable PDF skipped from merge",
				"stored_name", file.SafeFilename, "error", err)
			continue
		}

		inputs = append(inputs, path)
		totalPages += pages

		name := entry.Filename
		if name == "" {
			name = file.Filename
		}
		names = append(names, name)
	}

	if len(inputs) == 0 {
		return domain.MergeResult{}, apperrors.NewValidationError("No valid files could be processed")
	}

	outputName := composeOutputName(names, totalPages, time.Now())
	outputPath := s.store.FilePath(sessionID, outputName)

	if err := s.inspector.Merge(inputs, outputPath); err != nil {
		s.logger.Error("Merge failed", err, "session_id", sessionID)
		return domain.MergeResult{}, apperrors.NewInternalError(
			fmt.Sprintf("An error occurred while processing PDFs: %v", err), err)
	}

	result := domain.MergeResult{
		ID:         uuid.New().String(),
		Path:       outputPath,
		Filename:   outputName,
		SessionID:  sessionID,
		CreatedAt:  time.Now(),
		FileCount:  len(inputs),
		TotalPages: totalPages,
	}
	s.merges.Put(result)

	s.logger.Info("Merge complete",
		"merged_id", result.ID,
		"filename", result.Filename,
		"file_count", result.FileCount,
		"total_pages", result.TotalPages)

	return result, nil
}

// ResolveDownload looks up a merge output and the filename it should be
// served under. A custom name gains .pdf when missing and is sanitized;
// names that sanitize away fall back to the stored one.
func (s *MergeService) ResolveDownload(mergedID, customName string) (domain.MergedDownload, error) {
	result, ok := s.merges.Get(mergedID)
	if !ok {
		return domain.MergedDownload{}, apperrors.NewNotFoundError("Merged PDF not found or expired")
	}

	filename := result.Filename
	if customName != "" {
		if !strings.HasSuffix(strings.ToLower(customName), ".pdf") {
			customName += ".pdf"
		}
		sanitized := storage.SanitizeFilename(customName)
		if sanitized == "" || sanitized == ".pdf" {
			sanitized = result.Filename
		}
		filename = sanitized
	}

	if !s.store.FileExists(result.SessionID, result.Filename) {
		// Cleanup can race a download; the registry entry may outlive
		// the file by one sweep.
		return domain.MergedDownload{}, apperrors.NewNotFoundError("File not found on server")
	}

	s.logger.Info("Download resolved",
		"merged_id", mergedID, "filename", filename, "stored_name", result.Filename)

	return domain.MergedDownload{Path: result.Path, Filename: filename}, nil
}

// composeOutputName mirrors the names users see when saving: a single file
// keeps its own name, a batch describes its size. The single-file base is
// sanitized because it comes from the client's order entry.
func composeOutputName(names []string, totalPages int, now time.Time) string {
	ts := now.Format(outputTimestampLayout)
	if len(names) != 1 {
		return fmt.Sprintf("merged_%d_files_%d_pages_%s.pdf", len(names), totalPages, ts)
	}

	base := storage.SanitizeFilename(strings.ReplaceAll(names[0], ".pdf", ""))
	if base == "" {
		base = "document"
	}
	return fmt.Sprintf("processed_%s_%s.pdf", base, ts)
}
