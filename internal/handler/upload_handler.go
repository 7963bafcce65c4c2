package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	apperrors "github.com/nishanthj27/pdf-merger-pro/pkg/errors"

	"github.com/gorilla/mux"
)

// uploadFileField is the multipart form field carrying the PDF parts.
const uploadFileField = "pdf_files"

// UploadHandler handles upload and preview HTTP requests
type UploadHandler struct {
	uploadService domain.UploadService
	maxUploadSize int64
	logger        domain.Logger
}

// NewUploadHandler creates a new upload handler
func NewUploadHandler(uploadService domain.UploadService, maxUploadSize int64, logger domain.Logger) *UploadHandler {
	return &UploadHandler{
		uploadService: uploadService,
		maxUploadSize: maxUploadSize,
		logger:        logger,
	}
}

type uploadResponse struct {
	Success   bool                  `json:"success"`
	Previews  []domain.UploadedFile `json:"previews"`
	SessionID string                `json:"session_id"`
}

// UploadPreview handles POST /upload-preview. It stores the posted PDFs
// under a session (a new one, or existing_session when that still exists)
// and returns a preview record per stored file.
func (h *UploadHandler) UploadPreview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.writeError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("File too large. Maximum upload size is %dMB.", h.maxUploadSize/(1024*1024)))
			return
		}
		h.writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	headers := r.MultipartForm.File[uploadFileField]
	if len(headers) == 0 {
		// A file input submitted with nothing chosen arrives as a part
		// with an empty filename, which the form parser files under
		// Value rather than File.
		if _, ok := r.MultipartForm.Value[uploadFileField]; ok {
			h.writeError(w, http.StatusBadRequest, "No files selected")
			return
		}
		h.writeError(w, http.StatusBadRequest, "No files uploaded")
		return
	}

	var parts []multipart.File
	defer func() {
		for _, part := range parts {
			part.Close()
		}
	}()

	uploads := make([]domain.Upload, 0, len(headers))
	for _, header := range headers {
		part, err := header.Open()
		if err != nil {
			h.logger.Warn("Skipping unreadable upload part", "filename", header.Filename, "error", err)
			continue
		}
		parts = append(parts, part)
		uploads = append(uploads, domain.Upload{Filename: header.Filename, Reader: part})
	}

	previews, sessionID, err := h.uploadService.ProcessUploads(r.FormValue("existing_session"), uploads)
	if err != nil {
		h.logger.Error("Upload processing failed", err)
		status := apperrors.GetStatusCode(err)
		message := apperrors.GetMessage(err)
		if status >= http.StatusInternalServerError {
			message = "Error processing files: " + message
		}
		h.writeError(w, status, message)
		return
	}

	h.writeJSON(w, http.StatusOK, uploadResponse{
		Success:   true,
		Previews:  previews,
		SessionID: sessionID,
	})
}

// SessionPreviews handles GET /session-previews/{session_id}. It returns
// the preview records already stored for a session, so a reloaded client
// can re-render its file list.
func (h *UploadHandler) SessionPreviews(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	sessionID := vars["session_id"]

	previews, err := h.uploadService.SessionPreviews(sessionID)
	if err != nil {
		h.writeError(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
		return
	}

	h.writeJSON(w, http.StatusOK, uploadResponse{
		Success:   true,
		Previews:  previews,
		SessionID: sessionID,
	})
}

// writeError writes an error response
func (h *UploadHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON writes a JSON response
func (h *UploadHandler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
