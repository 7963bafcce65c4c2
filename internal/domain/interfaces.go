package domain

import "time"

// PDFInspector defines the interface to the PDF-structure library: page
// counts and ordered concatenation of whole documents.
type PDFInspector interface {
	PageCount(path string) (int, error)
	Merge(inputPaths []string, outputPath string) error
}

// ThumbnailRenderer rasterizes the first page of a stored PDF into a
// base64 data URI.
type ThumbnailRenderer interface {
	Render(path string) (Thumbnail, error)
}

// ThumbnailQueue accepts jobs for asynchronous thumbnail generation.
type ThumbnailQueue interface {
	Enqueue(job ThumbnailJob) error
	Depth() int
}

// UploadService drives the upload-preview flow.
type UploadService interface {
	ProcessUploads(existingSession string, uploads []Upload) ([]UploadedFile, string, error)
	SessionPreviews(sessionID string) ([]UploadedFile, error)
}

// MergeService drives the merge and download flows.
type MergeService interface {
	MergeOrdered(sessionID string, order []FileOrderEntry) (MergeResult, error)
	ResolveDownload(mergedID, customName string) (MergedDownload, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetSessionTTL() time.Duration
	GetCleanupInterval() time.Duration
	GetCleanupThreshold() int
	GetThumbnailScale() float64
	GetThumbnailQueueSize() int
	GetAllowedOrigins() []string
	IsForceHTTPS() bool
}
