package service

import (
	"context"

	"github.com/otiai10/gosseract/v2"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

// TesseractEngine wraps the tesseract OCR backend via gosseract.
// It never retries internally; retry policy belongs to the caller.
type TesseractEngine struct {
	logger domain.Logger
}

// NewTesseractEngine creates a new OCR engine adapter
func NewTesseractEngine(logger domain.Logger) *TesseractEngine {
	return &TesseractEngine{logger: logger}
}

// Recognize runs OCR over a raster image and returns the recognized text.
// Progress is surfaced as an integer percentage around the recognizing
// phase; tesseract exposes no mid-run hook, so callers see 0 then 100.
func (e *TesseractEngine) Recognize(ctx context.Context, image []byte, language string, onProgress domain.ExtractProgressFunc) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if language == "" {
		language = "eng"
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return "", apperrors.NewExtractionError("OCR language not available: "+language, err)
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", apperrors.NewExtractionError("OCR could not read image data", err)
	}

	if onProgress != nil {
		onProgress(0)
	}

	text, err := client.Text()
	if err != nil {
		return "", apperrors.NewExtractionError("OCR recognition failed", err)
	}

	if onProgress != nil {
		onProgress(100)
	}

	e.logger.Debug("OCR recognition complete", "language", language, "chars", len(text))
	return text, nil
}

var _ domain.OCREngine = (*TesseractEngine)(nil)
