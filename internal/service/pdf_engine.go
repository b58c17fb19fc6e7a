package service

import (
	"bytes"
	"fmt"
	"image/png"
	"sync"

	"github.com/gen2brain/go-fitz"

	"resume-analyzer/internal/domain"
)

// pdfDefaultDPI is the resolution of a PDF page's default viewport
const pdfDefaultDPI = 72

// FitzEngine opens PDF documents through MuPDF (go-fitz)
type FitzEngine struct{}

// NewFitzEngine creates a new go-fitz backed PDF engine
func NewFitzEngine() *FitzEngine {
	return &FitzEngine{}
}

// Open parses a PDF from memory
func (e *FitzEngine) Open(data []byte) (domain.PDFDocument, error) {
	doc, err := fitz.NewFromMemory(data)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	return &fitzDocument{doc: doc}, nil
}

type fitzDocument struct {
	doc *fitz.Document
}

func (d *fitzDocument) NumPages() int {
	return d.doc.NumPage()
}

func (d *fitzDocument) PageText(page int) (string, error) {
	text, err := d.doc.Text(page)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", page+1, err)
	}
	return text, nil
}

// RenderPNG rasterizes a page at the given scale over the default viewport
func (d *fitzDocument) RenderPNG(page int, scale float64) ([]byte, error) {
	img, err := d.doc.ImageDPI(page, pdfDefaultDPI*scale)
	if err != nil {
		return nil, fmt.Errorf("failed to render page %d: %w", page+1, err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode page %d as PNG: %w", page+1, err)
	}
	return buf.Bytes(), nil
}

func (d *fitzDocument) Close() error {
	return d.doc.Close()
}

var _ domain.PDFEngine = (*FitzEngine)(nil)

var (
	sharedEngine     domain.PDFEngine
	sharedEngineOnce sync.Once
)

// SharedPDFEngine returns the process-wide PDF engine handle, created on
// first use and reused for the lifetime of the process. sync.Once keeps
// interleaved first calls from initializing twice.
func SharedPDFEngine() domain.PDFEngine {
	sharedEngineOnce.Do(func() {
		sharedEngine = NewFitzEngine()
	})
	return sharedEngine
}
