package service

import (
	"bytes"
	"context"
	"strings"

	"resume-analyzer/internal/domain"
)

// TextFileExtractor decodes plain-text buffers verbatim
type TextFileExtractor struct{}

// NewTextFileExtractor creates a new plain text extractor
func NewTextFileExtractor() *TextFileExtractor {
	return &TextFileExtractor{}
}

// Extract decodes the buffer as UTF-8, dropping invalid byte sequences
func (e *TextFileExtractor) Extract(ctx context.Context, data []byte, fileName string, onProgress domain.ExtractProgressFunc) (string, domain.ExtractionMethod, error) {
	if err := ctx.Err(); err != nil {
		return "", domain.MethodDirectRead, err
	}

	text := strings.TrimSpace(string(bytes.ToValidUTF8(data, []byte{})))
	if onProgress != nil {
		onProgress(100)
	}
	return text, domain.MethodDirectRead, nil
}

// Supports reports whether this extractor handles the given MIME type
func (e *TextFileExtractor) Supports(fileType string) bool {
	return fileType == domain.MimeTypeText
}

var _ domain.TextExtractor = (*TextFileExtractor)(nil)
