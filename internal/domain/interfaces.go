package domain

import "context"

// FileValidator checks candidate files against size and type limits
// before any processing begins
type FileValidator interface {
	Validate(file UploadedFile) ValidationVerdict
	ValidateBatch(files []UploadedFile) (BatchValidation, error)
}

// TextExtractor is the strategy interface for turning a raw buffer into
// text. The returned method tags which path produced the text, since an
// extractor may choose between strategies (PDF text layer vs OCR fallback).
type TextExtractor interface {
	Extract(ctx context.Context, data []byte, fileName string, onProgress ExtractProgressFunc) (string, ExtractionMethod, error)
	Supports(fileType string) bool
}

// OCREngine wraps an optical-character-recognition backend
type OCREngine interface {
	Recognize(ctx context.Context, image []byte, language string, onProgress ExtractProgressFunc) (string, error)
}

// PDFDocument is one opened PDF, page-addressable for text and rasterization
type PDFDocument interface {
	NumPages() int
	PageText(page int) (string, error)
	// RenderPNG rasterizes a page at the given scale factor over the
	// page's default viewport and returns PNG bytes.
	RenderPNG(page int, scale float64) ([]byte, error)
	Close() error
}

// PDFEngine opens PDF documents from memory
type PDFEngine interface {
	Open(data []byte) (PDFDocument, error)
}

// ScannedDetector decides whether a PDF needs the OCR fallback path
type ScannedDetector interface {
	LooksScanned(data []byte) bool
}

// FilePipeline sequences validation, extraction and OCR fallback for a
// batch of files
type FilePipeline interface {
	ProcessFile(ctx context.Context, file UploadedFile, onProgress ProgressFunc) ExtractionResult
	ProcessBatch(ctx context.Context, files []UploadedFile, onProgress ProgressFunc) ([]ExtractionResult, error)
}

// InferenceClient issues requests to the remote text-generation service
type InferenceClient interface {
	Invoke(ctx context.Context, prompt string) (*ResumeAnalysis, error)
}

// AnalysisService produces structured resume feedback from extracted text
type AnalysisService interface {
	Analyze(ctx context.Context, req AnalysisRequest) (*ResumeAnalysis, error)
}

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetMaxFileSize() int64
	GetMaxBatchFiles() int
	GetScannedTextThreshold() int
	GetOCRLanguage() string
	GetGeminiAPIKey() string
	GetGenModel() string
	GetLogLevel() string
}
