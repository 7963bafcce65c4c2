package service

import (
	"encoding/base64"
	"fmt"

	"github.com/gen2brain/go-fitz"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
)

// baseRenderDPI is standard PDF resolution; the configured scale is applied
// on top of it to keep previews small.
const baseRenderDPI = 72.0

// ThumbnailService implements domain.ThumbnailRenderer with go-fitz
// (MuPDF): page one of a document rendered as a PNG data URI.
type ThumbnailService struct {
	dpi    float64
	logger domain.Logger
}

// NewThumbnailService creates a renderer. A scale of 1.0 renders at 72 DPI;
// smaller values shrink the bitmap proportionally.
func NewThumbnailService(scale float64, logger domain.Logger) *ThumbnailService {
	if scale <= 0 {
		scale = 1.0
	}
	return &ThumbnailService{
		dpi:    baseRenderDPI * scale,
		logger: logger,
	}
}

// Render rasterizes the first page of the PDF at path. Callers fall back to
// domain.PlaceholderThumbnail() on error.
func (t *ThumbnailService) Render(path string) (domain.Thumbnail, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return domain.Thumbnail{}, fmt.Errorf("open document: %w", err)
	}
	defer doc.Close()

	if doc.NumPage() == 0 {
		return domain.Thumbnail{}, domain.ErrEmptyDocument
	}

	png, err := doc.ImagePNG(0, t.dpi)
	if err != nil {
		return domain.Thumbnail{}, fmt.Errorf("render first page: %w", err)
	}

	t.logger.Debug("Rendered thumbnail", "path", path, "bytes", len(png))

	return domain.Thumbnail{
		DataURI: "data:image/png;base64," + base64.StdEncoding.EncodeToString(png),
	}, nil
}
