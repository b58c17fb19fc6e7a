package service

import (
	"bytes"
	"context"
	"strings"

	"code.sajari.com/docconv"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

// WordExtractor converts word-processor documents to plain text via docconv
type WordExtractor struct{}

// NewWordExtractor creates a new word-processor document extractor
func NewWordExtractor() *WordExtractor {
	return &WordExtractor{}
}

// Extract runs structural-to-plain-text conversion on the document
func (e *WordExtractor) Extract(ctx context.Context, data []byte, fileName string, onProgress domain.ExtractProgressFunc) (string, domain.ExtractionMethod, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.MethodWordDocument, err
	}

	mimeType := domain.MimeTypeDocx
	if !isZipArchive(data) {
		// Legacy binary .doc rather than the zip-based .docx container
		mimeType = domain.MimeTypeDoc
	}

	res, err := docconv.Convert(bytes.NewReader(data), mimeType, false)
	if err != nil {
		return "", domain.MethodWordDocument,
			apperrors.NewExtractionError("failed to convert word document "+fileName, err)
	}

	if onProgress != nil {
		onProgress(100)
	}
	return strings.TrimSpace(res.Body), domain.MethodWordDocument, nil
}

// Supports reports whether this extractor handles the given MIME type
func (e *WordExtractor) Supports(fileType string) bool {
	return fileType == domain.MimeTypeDocx || fileType == domain.MimeTypeDoc
}

// isZipArchive checks for the PK magic bytes of a .docx container
func isZipArchive(data []byte) bool {
	return len(data) >= 2 && data[0] == 'P' && data[1] == 'K'
}

var _ domain.TextExtractor = (*WordExtractor)(nil)
