package service

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	"github.com/nishanthj27/pdf-merger-pro/internal/registry"
	"github.com/nishanthj27/pdf-merger-pro/internal/storage"
	apperrors "github.com/nishanthj27/pdf-merger-pro/pkg/errors"
)

// Mock implementations for testing
type MockInspector struct {
	pages    map[string]int
	pageErr  map[string]error
	mergeErr error
	merged   [][]string
}

func NewMockInspector() *MockInspector {
	return &MockInspector{
		pages:   make(map[string]int),
		pageErr: make(map[string]error),
	}
}

func (m *MockInspector) PageCount(path string) (int, error) {
	base := filepath.Base(path)
	if err, exists := m.pageErr[base]; exists {
		return 0, err
	}
	if pages, exists := m.pages[base]; exists {
		return pages, nil
	}
	return 1, nil
}

func (m *MockInspector) Merge(inputPaths []string, outputPath string) error {
	if m.mergeErr != nil {
		return m.mergeErr
	}
	m.merged = append(m.merged, append([]string(nil), inputPaths...))
	return os.WriteFile(outputPath, []byte("%PDF-1.4 merged"), 0644)
}

type MockQueue struct {
	jobs []domain.ThumbnailJob
	err  error
}

func (m *MockQueue) Enqueue(job domain.ThumbnailJob) error {
	if m.err != nil {
		return m.err
	}
	m.jobs = append(m.jobs, job)
	return nil
}

func (m *MockQueue) Depth() int {
	return len(m.jobs)
}

type MockLogger struct {
	messages []string
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.messages = append(m.messages, "INFO: "+msg)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.messages = append(m.messages, "ERROR: "+msg+" - "+err.Error())
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.messages = append(m.messages, "DEBUG: "+msg)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.messages = append(m.messages, "WARN: "+msg)
}

func newUploadFixture(t *testing.T) (*UploadService, *registry.SessionRegistry, *storage.FileStore, *MockInspector, *MockQueue) {
	t.Helper()
	sessions := registry.NewSessionRegistry()
	store := storage.NewFileStore(t.TempDir(), NewMockLogger())
	inspector := NewMockInspector()
	queue := &MockQueue{}
	svc := NewUploadService(sessions, store, inspector, queue, nil, NewMockLogger())
	return svc, sessions, store, inspector, queue
}

func TestUploadService_ProcessUploads(t *testing.T) {
	svc, sessions, store, inspector, queue := newUploadFixture(t)
	inspector.pages["0_a.pdf"] = 2
	inspector.pages["1_My_Report.pdf"] = 3

	previews, sessionID, err := svc.ProcessUploads("", []domain.Upload{
		{Filename: "a.pdf", Reader: strings.NewReader("%PDF-1.4 aaa")},
		{Filename: "My Report.pdf", Reader: strings.NewReader("%PDF-1.4 bbbb")},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sessionID == "" {
		t.Fatal("Expected a session id")
	}
	if len(previews) != 2 {
		t.Fatalf("Expected 2 previews, got %d", len(previews))
	}

	first := previews[0]
	if first.ID != sessionID+"_0" {
		t.Errorf("Expected id %s_0, got %s", sessionID, first.ID)
	}
	if first.Filename != "a.pdf" {
		t.Errorf("Expected original filename a.pdf, got %s", first.Filename)
	}
	if first.SafeFilename != "0_a.pdf" {
		t.Errorf("Expected stored name 0_a.pdf, got %s", first.SafeFilename)
	}
	if first.Size != int64(len("%PDF-1.4 aaa")) {
		t.Errorf("Expected size %d, got %d", len("%PDF-1.4 aaa"), first.Size)
	}
	if first.Pages != 2 {
		t.Errorf("Expected 2 pages, got %d", first.Pages)
	}
	if first.Thumbnail != domain.PlaceholderThumbnailURI {
		t.Error("Expected the placeholder thumbnail on a fresh preview")
	}
	if first.FileIndex != 0 || first.SessionID != sessionID {
		t.Errorf("Expected index 0 in session %s, got %d in %s", sessionID, first.FileIndex, first.SessionID)
	}

	second := previews[1]
	if second.SafeFilename != "1_My_Report.pdf" {
		t.Errorf("Expected stored name 1_My_Report.pdf, got %s", second.SafeFilename)
	}
	if second.Pages != 3 {
		t.Errorf("Expected 3 pages, got %d", second.Pages)
	}

	if !store.FileExists(sessionID, "0_a.pdf") || !store.FileExists(sessionID, "1_My_Report.pdf") {
		t.Error("Expected both uploads on disk")
	}
	if sessions.NextIndex(sessionID) != 2 {
		t.Errorf("Expected 2 files tracked, got %d", sessions.NextIndex(sessionID))
	}

	if len(queue.jobs) != 2 {
		t.Fatalf("Expected 2 thumbnail jobs, got %d", len(queue.jobs))
	}
	if queue.jobs[0].FilePath != store.FilePath(sessionID, "0_a.pdf") {
		t.Errorf("Expected job path for 0_a.pdf, got %s", queue.jobs[0].FilePath)
	}
	if queue.jobs[1].FileIndex != 1 {
		t.Errorf("Expected second job index 1, got %d", queue.jobs[1].FileIndex)
	}
}

func TestUploadService_SkipsNonPDFUploads(t *testing.T) {
	svc, sessions, _, _, queue := newUploadFixture(t)

	previews, sessionID, err := svc.ProcessUploads("", []domain.Upload{
		{Filename: "notes.txt", Reader: strings.NewReader("plain text")},
		{Filename: "", Reader: strings.NewReader("")},
		{Filename: "keep.pdf", Reader: strings.NewReader("%PDF-1.4")},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(previews) != 1 {
		t.Fatalf("Expected 1 preview, got %d", len(previews))
	}
	if previews[0].Filename != "keep.pdf" {
		t.Errorf("Expected keep.pdf to survive, got %s", previews[0].Filename)
	}
	if previews[0].FileIndex != 0 {
		t.Errorf("Expected skipped files not to consume indices, got index %d", previews[0].FileIndex)
	}
	if sessions.NextIndex(sessionID) != 1 {
		t.Errorf("Expected 1 tracked file, got %d", sessions.NextIndex(sessionID))
	}
	if len(queue.jobs) != 1 {
		t.Errorf("Expected 1 thumbnail job, got %d", len(queue.jobs))
	}
}

func TestUploadService_RejectsBatchWithNoValidFiles(t *testing.T) {
	svc, _, _, _, _ := newUploadFixture(t)

	_, _, err := svc.ProcessUploads("", []domain.Upload{
		{Filename: "notes.txt", Reader: strings.NewReader("plain text")},
	})
	if err == nil {
		t.Fatal("Expected error for batch with no valid files")
	}
	if apperrors.GetStatusCode(err) != 400 {
		t.Errorf("Expected status 400, got %d", apperrors.GetStatusCode(err))
	}
	if apperrors.GetMessage(err) != "No valid PDF files found" {
		t.Errorf("Expected message 'No valid PDF files found', got %q", apperrors.GetMessage(err))
	}
}

func TestUploadService_ExistingSessionContinuesIndexing(t *testing.T) {
	svc, _, _, _, _ := newUploadFixture(t)

	_, sessionID, err := svc.ProcessUploads("", []domain.Upload{
		{Filename: "a.pdf", Reader: strings.NewReader("%PDF-1.4")},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	previews, reusedID, err := svc.ProcessUploads(sessionID, []domain.Upload{
		{Filename: "b.pdf", Reader: strings.NewReader("%PDF-1.4")},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if reusedID != sessionID {
		t.Errorf("Expected session %s to be reused, got %s", sessionID, reusedID)
	}
	if previews[0].FileIndex != 1 {
		t.Errorf("Expected index 1 for the second upload, got %d", previews[0].FileIndex)
	}
	if previews[0].ID != sessionID+"_1" {
		t.Errorf("Expected id %s_1, got %s", sessionID, previews[0].ID)
	}
	if previews[0].SafeFilename != "1_b.pdf" {
		t.Errorf("Expected stored name 1_b.pdf, got %s", previews[0].SafeFilename)
	}
}

func TestUploadService_UnknownExistingSessionStartsFresh(t *testing.T) {
	svc, sessions, _, _, _ := newUploadFixture(t)

	_, sessionID, err := svc.ProcessUploads("long-gone", []domain.Upload{
		{Filename: "a.pdf", Reader: strings.NewReader("%PDF-1.4")},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if sessionID == "long-gone" {
		t.Error("Expected a fresh session id, not the stale one")
	}
	if !sessions.Has(sessionID) {
		t.Error("Expected the fresh session to be registered")
	}
}

func TestUploadService_PageCountFailureKeepsFile(t *testing.T) {
	svc, _, store, inspector, queue := newUploadFixture(t)
	inspector.pageErr["0_bad.pdf"] = errors.New("xref table corrupt")

	previews, sessionID, err := svc.ProcessUploads("", []domain.Upload{
		{Filename: "bad.pdf", Reader: strings.NewReader("not really a pdf")},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if previews[0].Pages != 0 {
		t.Errorf("Expected 0 pages on unreadable PDF, got %d", previews[0].Pages)
	}
	if !store.FileExists(sessionID, "0_bad.pdf") {
		t.Error("Expected the file to be kept on disk")
	}
	if len(queue.jobs) != 1 {
		t.Errorf("Expected a thumbnail job anyway, got %d", len(queue.jobs))
	}
}

func TestUploadService_FullQueueKeepsPlaceholder(t *testing.T) {
	svc, _, _, _, queue := newUploadFixture(t)
	queue.err = domain.ErrQueueFull

	previews, _, err := svc.ProcessUploads("", []domain.Upload{
		{Filename: "a.pdf", Reader: strings.NewReader("%PDF-1.4")},
	})
	if err != nil {
		t.Fatalf("Expected upload to succeed despite full queue, got %v", err)
	}
	if previews[0].Thumbnail != domain.PlaceholderThumbnailURI {
		t.Error("Expected the placeholder thumbnail to remain")
	}
}

func TestUploadService_SessionPreviews(t *testing.T) {
	svc, sessions, _, _, _ := newUploadFixture(t)

	_, sessionID, err := svc.ProcessUploads("", []domain.Upload{
		{Filename: "a.pdf", Reader: strings.NewReader("%PDF-1.4")},
	})
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	// The worker may have finished a render by the time the client asks.
	sessions.SetThumbnail(sessionID, 0, "data:image/png;base64,rendered")

	previews, err := svc.SessionPreviews(sessionID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(previews) != 1 {
		t.Fatalf("Expected 1 preview, got %d", len(previews))
	}
	if previews[0].Thumbnail != "data:image/png;base64,rendered" {
		t.Error("Expected the finished thumbnail in the previews")
	}

	_, err = svc.SessionPreviews("missing")
	if err == nil {
		t.Fatal("Expected error for unknown session")
	}
	if apperrors.GetStatusCode(err) != 404 {
		t.Errorf("Expected status 404, got %d", apperrors.GetStatusCode(err))
	}
	if apperrors.GetMessage(err) != "Session expired or invalid" {
		t.Errorf("Expected message 'Session expired or invalid', got %q", apperrors.GetMessage(err))
	}
}
