package handler

import (
	"net/http"

	"github.com/nishanthj27/pdf-merger-pro/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	cfg := container.GetConfig()
	logger := container.GetLogger()

	// Initialize handlers
	uploadHandler := NewUploadHandler(container.GetUploadService(), cfg.GetMaxFileSize(), logger)
	mergeHandler := NewMergeHandler(container.GetMergeService(), logger)
	healthHandler := NewHealthHandler(container.GetSessions(), container.GetMerges(), container.GetThumbnailWorker())

	// Upload and preview routes
	router.HandleFunc("/upload-preview", uploadHandler.UploadPreview).Methods("POST")
	router.HandleFunc("/session-previews/{session_id}", uploadHandler.SessionPreviews).Methods("GET")

	// Merge and download routes
	router.HandleFunc("/merge-ordered", mergeHandler.MergeOrdered).Methods("POST")
	router.HandleFunc("/download-merged/{merged_id}", mergeHandler.DownloadMerged).Methods("GET")

	// Health check endpoint
	router.HandleFunc("/api/health", healthHandler.Health).Methods("GET")

	router.Use(SecurityHeaders)
	router.Use(RequestLogger(logger))
	if cfg.IsForceHTTPS() {
		router.Use(ForceHTTPS)
	}

	// Configure CORS
	c := cors.New(cors.Options{
		AllowedOrigins: cfg.GetAllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
		},
		MaxAge: 300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
