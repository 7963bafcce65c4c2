package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
)

// FileStore keeps uploaded originals and merge outputs in session-scoped
// directories under a single root: <root>/<session_id>/<stored_name>.
type FileStore struct {
	root   string
	logger domain.Logger
}

// NewFileStore creates the store root if needed and returns the store.
func NewFileStore(root string, logger domain.Logger) *FileStore {
	if err := os.MkdirAll(root, 0755); err != nil {
		logger.Error("Failed to create upload root", err, "path", root)
	}
	return &FileStore{
		root:   root,
		logger: logger,
	}
}

// Root returns the store's base directory.
func (s *FileStore) Root() string {
	return s.root
}

// SessionDir returns the directory that holds a session's files.
func (s *FileStore) SessionDir(sessionID string) string {
	return filepath.Join(s.root, sessionID)
}

// EnsureSession creates the session directory if it does not exist yet.
func (s *FileStore) EnsureSession(sessionID string) (string, error) {
	dir := s.SessionDir(sessionID)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create session directory: %w", err)
	}
	return dir, nil
}

// SessionExists reports whether the session directory is present on disk.
func (s *FileStore) SessionExists(sessionID string) bool {
	info, err := os.Stat(s.SessionDir(sessionID))
	return err == nil && info.IsDir()
}

// FilePath returns the on-disk path of a stored file.
func (s *FileStore) FilePath(sessionID, storedName string) string {
	return filepath.Join(s.SessionDir(sessionID), storedName)
}

// FileExists reports whether a stored file is present on disk.
func (s *FileStore) FileExists(sessionID, storedName string) bool {
	info, err := os.Stat(s.FilePath(sessionID, storedName))
	return err == nil && !info.IsDir()
}

// SaveFile streams an upload to disk and returns its path and size.
func (s *FileStore) SaveFile(sessionID, storedName string, r io.Reader) (string, int64, error) {
	if _, err := s.EnsureSession(sessionID); err != nil {
		return "", 0, err
	}

	path := s.FilePath(sessionID, storedName)
	dst, err := os.Create(path)
	if err != nil {
		return "", 0, fmt.Errorf("create file: %w", err)
	}

	size, err := io.Copy(dst, r)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(path)
		return "", 0, fmt.Errorf("write file: %w", err)
	}

	return path, size, nil
}

// SessionAge returns how long ago the session directory was last written
// to. An error means the directory is unreadable or gone; callers treat
// that as expired.
func (s *FileStore) SessionAge(sessionID string) (time.Duration, error) {
	info, err := os.Stat(s.SessionDir(sessionID))
	if err != nil {
		return 0, err
	}
	return time.Since(info.ModTime()), nil
}

// RemoveSession deletes a session directory and everything in it.
func (s *FileStore) RemoveSession(sessionID string) error {
	if err := os.RemoveAll(s.SessionDir(sessionID)); err != nil {
		return fmt.Errorf("remove session directory: %w", err)
	}
	return nil
}

// SessionIDs lists the session directories currently on disk.
func (s *FileStore) SessionIDs() []string {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		s.logger.Warn("Failed to list upload root", "path", s.root, "error", err)
		return nil
	}

	ids := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			ids = append(ids, entry.Name())
		}
	}
	return ids
}
