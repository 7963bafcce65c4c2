package service

import (
	"fmt"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"

	"github.com/nishanthj27/pdf-merger-pro/internal/domain"
)

// PDFService implements domain.PDFInspector on top of pdfcpu. Page counts
// and concatenation are delegated entirely to the library; this layer adds
// logging and error context.
type PDFService struct {
	conf   *model.Configuration
	logger domain.Logger
}

// NewPDFService creates the inspector with pdfcpu's default relaxed
// validation, which tolerates the slightly out-of-spec files real uploads
// tend to be.
func NewPDFService(logger domain.Logger) *PDFService {
	return &PDFService{
		conf:   model.NewDefaultConfiguration(),
		logger: logger,
	}
}

// PageCount returns the number of pages in the PDF at path.
func (s *PDFService) PageCount(path string) (int, error) {
	count, err := pdfapi.PageCountFile(path)
	if err != nil {
		return 0, fmt.Errorf("page count: %w", err)
	}
	return count, nil
}

// Merge concatenates the inputs, in the order given, into a new PDF at
// outputPath. Every page of every input is carried over in its original
// intra-file order.
func (s *PDFService) Merge(inputPaths []string, outputPath string) error {
	if len(inputPaths) == 0 {
		return fmt.Errorf("merge: no input files")
	}

	s.logger.Debug("Merging PDF files", "count", len(inputPaths), "output", outputPath)

	if err := pdfapi.MergeCreateFile(inputPaths, outputPath, false, s.conf); err != nil {
		return fmt.Errorf("merge %d files: %w", len(inputPaths), err)
	}
	return nil
}
