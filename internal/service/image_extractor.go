package service

import (
	"context"
	"strings"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

// ImageExtractor runs OCR over PNG/JPEG uploads
type ImageExtractor struct {
	ocr    domain.OCREngine
	config domain.Config
}

// NewImageExtractor creates a new image extractor
func NewImageExtractor(ocr domain.OCREngine, config domain.Config) *ImageExtractor {
	return &ImageExtractor{ocr: ocr, config: config}
}

// Extract submits the image buffer to the OCR engine, relaying progress
func (e *ImageExtractor) Extract(ctx context.Context, data []byte, fileName string, onProgress domain.ExtractProgressFunc) (string, domain.ExtractionMethod, error) {
	text, err := e.ocr.Recognize(ctx, data, e.config.GetOCRLanguage(), onProgress)
	if err != nil {
		return "", domain.MethodOCRImage,
			apperrors.NewExtractionError("OCR failed for image "+fileName, err)
	}
	return strings.TrimSpace(text), domain.MethodOCRImage, nil
}

// Supports reports whether this extractor handles the given MIME type
func (e *ImageExtractor) Supports(fileType string) bool {
	return fileType == domain.MimeTypePNG || fileType == domain.MimeTypeJPEG
}

var _ domain.TextExtractor = (*ImageExtractor)(nil)
