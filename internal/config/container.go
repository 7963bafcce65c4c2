package config

import (
	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	"github.com/nishanthj27/pdf-merger-pro/internal/registry"
	"github.com/nishanthj27/pdf-merger-pro/internal/service"
	"github.com/nishanthj27/pdf-merger-pro/internal/storage"
	"github.com/nishanthj27/pdf-merger-pro/pkg/logger"
)

// Container holds all application dependencies
type Container struct {
	Config          domain.Config
	Logger          domain.Logger
	FileStore       *storage.FileStore
	Sessions        *registry.SessionRegistry
	Merges          *registry.MergeRegistry
	PDFService      domain.PDFInspector
	Thumbnailer     domain.ThumbnailRenderer
	ThumbnailWorker *service.ThumbnailWorker
	UploadService   domain.UploadService
	MergeService    domain.MergeService
	CleanupService  *service.CleanupService
}

// NewContainer creates a new dependency injection container
func NewContainer() *Container {
	config := NewConfig()
	appLogger := logger.NewLogger(config.GetLogLevel())

	// Initialize storage and registries
	fileStore := storage.NewFileStore(config.GetUploadPath(), appLogger)
	sessions := registry.NewSessionRegistry()
	merges := registry.NewMergeRegistry()

	// Initialize services
	pdfService := service.NewPDFService(appLogger)
	thumbnailer := service.NewThumbnailService(config.GetThumbnailScale(), appLogger)
	thumbnailWorker := service.NewThumbnailWorker(config.GetThumbnailQueueSize(), thumbnailer, sessions, appLogger)
	cleanupService := service.NewCleanupService(sessions, merges, fileStore,
		config.GetSessionTTL(), config.GetCleanupThreshold(), appLogger)
	uploadService := service.NewUploadService(sessions, fileStore, pdfService,
		thumbnailWorker, cleanupService, appLogger)
	mergeService := service.NewMergeService(sessions, merges, fileStore, pdfService, appLogger)

	return &Container{
		Config:          config,
		Logger:          appLogger,
		FileStore:       fileStore,
		Sessions:        sessions,
		Merges:          merges,
		PDFService:      pdfService,
		Thumbnailer:     thumbnailer,
		ThumbnailWorker: thumbnailWorker,
		UploadService:   uploadService,
		MergeService:    mergeService,
		CleanupService:  cleanupService,
	}
}

// GetConfig returns the configuration instance
func (c *Container) GetConfig() domain.Config {
	return c.Config
}

// GetLogger returns the logger instance
func (c *Container) GetLogger() domain.Logger {
	return c.Logger
}

// GetFileStore returns the file store instance
func (c *Container) GetFileStore() *storage.FileStore {
	return c.FileStore
}

// GetSessions returns the session registry instance
func (c *Container) GetSessions() *registry.SessionRegistry {
	return c.Sessions
}

// GetMerges returns the merge result registry instance
func (c *Container) GetMerges() *registry.MergeRegistry {
	return c.Merges
}

// GetPDFService returns the PDF inspector instance
func (c *Container) GetPDFService() domain.PDFInspector {
	return c.PDFService
}

// GetThumbnailer returns the thumbnail renderer instance
func (c *Container) GetThumbnailer() domain.ThumbnailRenderer {
	return c.Thumbnailer
}

// GetThumbnailWorker returns the thumbnail worker instance
func (c *Container) GetThumbnailWorker() *service.ThumbnailWorker {
	return c.ThumbnailWorker
}

// GetUploadService returns the upload service instance
func (c *Container) GetUploadService() domain.UploadService {
	return c.UploadService
}

// GetMergeService returns the merge service instance
func (c *Container) GetMergeService() domain.MergeService {
	return c.MergeService
}

// GetCleanupService returns the cleanup service instance
func (c *Container) GetCleanupService() *service.CleanupService {
	return c.CleanupService
}
