package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
	apperrors "github.com/nishanthj27/pdf-merger-pro/pkg/errors"

	"github.com/gorilla/mux"
)

// MergeHandler handles merge and download HTTP requests
type MergeHandler struct {
	mergeService domain.MergeService
	logger       domain.Logger
}

// NewMergeHandler creates a new merge handler
func NewMergeHandler(mergeService domain.MergeService, logger domain.Logger) *MergeHandler {
	return &MergeHandler{
		mergeService: mergeService,
		logger:       logger,
	}
}

type mergeRequest struct {
	SessionID string                  `json:"session_id"`
	FileOrder []domain.FileOrderEntry `json:"file_order"`
}

type mergeResponse struct {
	Success    bool   `json:"success"`
	MergedID   string `json:"merged_id"`
	Filename   string `json:"filename"`
	FileCount  int    `json:"file_count"`
	TotalPages int    `json:"total_pages"`
	Message    string `json:"message"`
}

// MergeOrdered handles POST /merge-ordered. It merges a session's files in
// the order the client requests and returns the merge id for download.
func (h *MergeHandler) MergeOrdered(w http.ResponseWriter, r *http.Request) {
	var req mergeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "Missing session or file order data")
		return
	}

	result, err := h.mergeService.MergeOrdered(req.SessionID, req.FileOrder)
	if err != nil {
		h.writeError(w, apperrors.GetStatusCode(err), apperrors.GetMessage(err))
		return
	}

	h.writeJSON(w, http.StatusOK, mergeResponse{
		Success:    true,
		MergedID:   result.ID,
		Filename:   result.Filename,
		FileCount:  result.FileCount,
		TotalPages: result.TotalPages,
		Message:    fmt.Sprintf("Successfully merged %d PDF(s) with %d pages", result.FileCount, result.TotalPages),
	})
}

// DownloadMerged handles GET /download-merged/{merged_id}. The optional
// filename query parameter renames the attachment; the stored name is used
// when it is absent or sanitizes away to nothing.
func (h *MergeHandler) DownloadMerged(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	mergedID := vars["merged_id"]

	download, err := h.mergeService.ResolveDownload(mergedID, r.URL.Query().Get("filename"))
	if err != nil {
		status := apperrors.GetStatusCode(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("Download failed", err, "merged_id", mergedID)
			h.writeError(w, status, "Error downloading file")
			return
		}
		h.writeError(w, status, apperrors.GetMessage(err))
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", download.Filename))
	http.ServeFile(w, r, download.Path)
}

// writeError writes an error response
func (h *MergeHandler) writeError(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}

// writeJSON writes a JSON response
func (h *MergeHandler) writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}
