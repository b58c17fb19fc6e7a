package domain

import (
	"fmt"
	"strings"
)

// ExtractionMethod identifies which strategy produced the text
type ExtractionMethod string

const (
	MethodDirectRead   ExtractionMethod = "direct_read"
	MethodPDFTextLayer ExtractionMethod = "pdf_text_layer"
	MethodOCRImage     ExtractionMethod = "ocr_image"
	MethodOCRScanned   ExtractionMethod = "ocr_scanned_pdf"
	MethodWordDocument ExtractionMethod = "word_document"
)

// Supported MIME types for uploaded documents
const (
	MimeTypePDF  = "application/pdf"
	MimeTypeText = "text/plain"
	MimeTypeDocx = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MimeTypeDoc  = "application/msword"
	MimeTypePNG  = "image/png"
	MimeTypeJPEG = "image/jpeg"
)

// UploadedFile represents one user-selected file for the duration of a
// pipeline run. Never persisted; discarded after result production.
type UploadedFile struct {
	Data     []byte
	FileName string
	FileType string
	FileSize int64
}

// ValidationVerdict is the per-file outcome of pre-processing checks
type ValidationVerdict struct {
	Accepted bool   `json:"accepted"`
	Reason   string `json:"reason,omitempty"`
}

// BatchValidation partitions a batch into accepted files and rejection reasons
type BatchValidation struct {
	Accepted   []UploadedFile
	Rejections []string
}

// ExtractionResult is the per-file outcome of the pipeline. Success iff
// Error is empty; a successful Text is always non-empty and trimmed.
type ExtractionResult struct {
	Text     string           `json:"text,omitempty"`
	Method   ExtractionMethod `json:"method,omitempty"`
	FileName string           `json:"file_name"`
	FileSize int64            `json:"file_size"`
	FileType string           `json:"file_type"`
	Error    string           `json:"error,omitempty"`
}

// Succeeded reports whether extraction produced usable text
func (r ExtractionResult) Succeeded() bool {
	return r.Error == ""
}

// BatchProgress is a transient progress event emitted during long
// operations and between files. Consumed by the presentation layer only.
type BatchProgress struct {
	CurrentFileIndex int    `json:"current_file_index"`
	TotalFiles       int    `json:"total_files"`
	FileName         string `json:"file_name"`
	PercentComplete  int    `json:"percent_complete"`
}

// ProgressFunc receives batch progress events
type ProgressFunc func(BatchProgress)

// ExtractProgressFunc receives a 0-100 percentage from a single extractor
type ExtractProgressFunc func(percent int)

// AggregateSeparator joins the successful texts of one batch
const AggregateSeparator = "\n\n---\n\n"

// Aggregate concatenates all successful extraction texts in input order.
// This is the only artifact handed to the inference layer.
func Aggregate(results []ExtractionResult) string {
	texts := make([]string, 0, len(results))
	for _, r := range results {
		if r.Succeeded() {
			texts = append(texts, r.Text)
		}
	}
	return strings.Join(texts, AggregateSeparator)
}

// FormatFileSize renders a byte count for rejection messages
func FormatFileSize(size int64) string {
	const mib = 1024 * 1024
	if size >= mib {
		return fmt.Sprintf("%.1f MiB", float64(size)/float64(mib))
	}
	if size >= 1024 {
		return fmt.Sprintf("%.1f KiB", float64(size)/1024)
	}
	return fmt.Sprintf("%d bytes", size)
}
