package service

import (
	"context"
	"errors"
	"fmt"

	"resume-analyzer/internal/domain"
)

// Shared mock implementations for service package tests.

type mockLogger struct{}

func (l *mockLogger) Info(msg string, fields ...interface{})             {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {}
func (l *mockLogger) Debug(msg string, fields ...interface{})            {}
func (l *mockLogger) Warn(msg string, fields ...interface{})             {}

type mockConfig struct {
	maxFileSize          int64
	maxBatchFiles        int
	scannedTextThreshold int
}

func newMockConfig() *mockConfig {
	return &mockConfig{
		maxFileSize:          10 * 1024 * 1024,
		maxBatchFiles:        5,
		scannedTextThreshold: 50,
	}
}

func (c *mockConfig) GetServerPort() string        { return "8080" }
func (c *mockConfig) GetMaxFileSize() int64        { return c.maxFileSize }
func (c *mockConfig) GetMaxBatchFiles() int        { return c.maxBatchFiles }
func (c *mockConfig) GetScannedTextThreshold() int { return c.scannedTextThreshold }
func (c *mockConfig) GetOCRLanguage() string       { return "eng" }
func (c *mockConfig) GetGeminiAPIKey() string      { return "test-key" }
func (c *mockConfig) GetGenModel() string          { return "gemini-1.5-flash" }
func (c *mockConfig) GetLogLevel() string          { return "error" }

// fakePDFDocument serves canned page text and rendered images
type fakePDFDocument struct {
	pages       []string
	renderErrAt int // 1-indexed page whose render fails; 0 disables
	textErrAt   int // 1-indexed page whose text read fails; 0 disables
	closed      bool
}

func (d *fakePDFDocument) NumPages() int { return len(d.pages) }

func (d *fakePDFDocument) PageText(page int) (string, error) {
	if d.textErrAt > 0 && page == d.textErrAt-1 {
		return "", errors.New("damaged page")
	}
	return d.pages[page], nil
}

func (d *fakePDFDocument) RenderPNG(page int, scale float64) ([]byte, error) {
	if d.renderErrAt > 0 && page == d.renderErrAt-1 {
		return nil, errors.New("render failed")
	}
	return []byte(fmt.Sprintf("png-page-%d@%.0fx", page, scale)), nil
}

func (d *fakePDFDocument) Close() error {
	d.closed = true
	return nil
}

// fakePDFEngine opens fakePDFDocuments from declared page content
type fakePDFEngine struct {
	doc     *fakePDFDocument
	openErr error
}

func (e *fakePDFEngine) Open(data []byte) (domain.PDFDocument, error) {
	if e.openErr != nil {
		return nil, e.openErr
	}
	return e.doc, nil
}

// fakeOCREngine returns canned text per recognized image
type fakeOCREngine struct {
	text  string
	err   error
	calls int
}

func (o *fakeOCREngine) Recognize(ctx context.Context, image []byte, language string, onProgress domain.ExtractProgressFunc) (string, error) {
	o.calls++
	if o.err != nil {
		return "", o.err
	}
	if onProgress != nil {
		onProgress(0)
		onProgress(100)
	}
	return o.text, nil
}

// fakeExtractor is a configurable extraction strategy for pipeline tests
type fakeExtractor struct {
	fileType string
	text     string
	method   domain.ExtractionMethod
	err      error
}

func (e *fakeExtractor) Extract(ctx context.Context, data []byte, fileName string, onProgress domain.ExtractProgressFunc) (string, domain.ExtractionMethod, error) {
	if e.err != nil {
		return "", e.method, e.err
	}
	if onProgress != nil {
		onProgress(50)
	}
	return e.text, e.method, nil
}

func (e *fakeExtractor) Supports(fileType string) bool {
	return fileType == e.fileType
}

// panickyExtractor simulates a crash inside a backend library
type panickyExtractor struct{ fileType string }

func (e *panickyExtractor) Extract(ctx context.Context, data []byte, fileName string, onProgress domain.ExtractProgressFunc) (string, domain.ExtractionMethod, error) {
	panic("backend blew up")
}

func (e *panickyExtractor) Supports(fileType string) bool {
	return fileType == e.fileType
}
