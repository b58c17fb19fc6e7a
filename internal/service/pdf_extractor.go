package service

import (
	"context"
	"fmt"
	"strings"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

// pdfRasterScale is the scale factor over the page's default viewport
// used when rasterizing pages for OCR
const pdfRasterScale = 2.0

// PDFExtractor extracts text from PDFs with a two-phase policy: direct
// text-layer extraction first, per-page OCR fallback when the text layer
// is too short to be useful.
type PDFExtractor struct {
	engine domain.PDFEngine
	ocr    domain.OCREngine
	config domain.Config
	logger domain.Logger
}

// NewPDFExtractor creates a new PDF extractor
func NewPDFExtractor(engine domain.PDFEngine, ocr domain.OCREngine, config domain.Config, logger domain.Logger) *PDFExtractor {
	return &PDFExtractor{engine: engine, ocr: ocr, config: config, logger: logger}
}

// Extract attempts text-layer extraction across all pages; if the result
// is shorter than the scanned-text threshold it is discarded and every
// page is rasterized and OCRed instead. The returned method tags which
// path produced the text.
func (e *PDFExtractor) Extract(ctx context.Context, data []byte, fileName string, onProgress domain.ExtractProgressFunc) (string, domain.ExtractionMethod, error) {
	doc, err := e.engine.Open(data)
	if err != nil {
		return "", domain.MethodPDFTextLayer,
			apperrors.NewExtractionError("failed to open PDF "+fileName, err)
	}
	defer doc.Close()

	text, err := e.extractTextLayer(ctx, doc)
	if err != nil {
		return "", domain.MethodPDFTextLayer,
			apperrors.NewExtractionError("failed to read PDF text layer of "+fileName, err)
	}

	// The threshold is a heuristic: a short but genuine text layer will
	// be mis-classified as scanned. Known limitation, tunable via config.
	if len(strings.TrimSpace(text)) >= e.config.GetScannedTextThreshold() {
		return strings.TrimSpace(text), domain.MethodPDFTextLayer, nil
	}

	e.logger.Info("PDF text layer below threshold, falling back to OCR",
		"file", fileName, "text_layer_chars", len(strings.TrimSpace(text)))

	ocrText, err := e.extractViaOCR(ctx, doc, fileName, onProgress)
	if err != nil {
		return "", domain.MethodOCRScanned, err
	}
	return strings.TrimSpace(ocrText), domain.MethodOCRScanned, nil
}

// extractTextLayer reads every page's text layer in page order
func (e *PDFExtractor) extractTextLayer(ctx context.Context, doc domain.PDFDocument) (string, error) {
	var pages []string
	for page := 0; page < doc.NumPages(); page++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		text, err := doc.PageText(page)
		if err != nil {
			return "", err
		}
		pages = append(pages, text)
	}
	return strings.Join(pages, "\n"), nil
}

// extractViaOCR rasterizes each page at 2x scale and runs OCR over it.
// A page that fails to rasterize fails the whole fallback path rather
// than being silently skipped.
func (e *PDFExtractor) extractViaOCR(ctx context.Context, doc domain.PDFDocument, fileName string, onProgress domain.ExtractProgressFunc) (string, error) {
	numPages := doc.NumPages()
	var pages []string

	for page := 0; page < numPages; page++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		image, err := doc.RenderPNG(page, pdfRasterScale)
		if err != nil {
			return "", apperrors.NewExtractionError(
				fmt.Sprintf("failed to rasterize page %d of %s", page+1, fileName), err)
		}

		// Interpolate per-page OCR progress into a batch-wide percentage
		// so multi-page scanned documents report smoothly.
		pageIndex := page
		pageProgress := func(percent int) {
			if onProgress != nil {
				onProgress((pageIndex*100 + percent) / numPages)
			}
		}

		text, err := e.ocr.Recognize(ctx, image, e.config.GetOCRLanguage(), pageProgress)
		if err != nil {
			return "", apperrors.NewExtractionError(
				fmt.Sprintf("OCR failed on page %d of %s", page+1, fileName), err)
		}
		pages = append(pages, text)
	}

	if onProgress != nil {
		onProgress(100)
	}
	return strings.Join(pages, "\n"), nil
}

// Supports reports whether this extractor handles the given MIME type
func (e *PDFExtractor) Supports(fileType string) bool {
	return fileType == domain.MimeTypePDF
}

var _ domain.TextExtractor = (*PDFExtractor)(nil)
