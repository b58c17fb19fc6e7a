package service

import (
	"strings"

	"resume-analyzer/internal/domain"
)

// scannedSamplePages is how many leading pages the detector inspects
const scannedSamplePages = 3

// PDFScannedDetector decides whether a PDF lacks a usable text layer.
// Optional pre-check only: the PDF extractor's two-phase logic is
// authoritative and does not require it.
type PDFScannedDetector struct {
	engine domain.PDFEngine
	config domain.Config
	logger domain.Logger
}

// NewScannedDetector creates a new scanned-document detector
func NewScannedDetector(engine domain.PDFEngine, config domain.Config, logger domain.Logger) *PDFScannedDetector {
	return &PDFScannedDetector{engine: engine, config: config, logger: logger}
}

// LooksScanned samples at most the first three pages and reports true iff
// the summed text-layer length is below the scanned-text threshold.
// Internal failures report "not scanned" so callers fall through to
// normal handling instead of crashing.
func (d *PDFScannedDetector) LooksScanned(data []byte) bool {
	doc, err := d.engine.Open(data)
	if err != nil {
		d.logger.Debug("scanned detection could not open PDF, assuming not scanned", "error", err)
		return false
	}
	defer doc.Close()

	sample := doc.NumPages()
	if sample > scannedSamplePages {
		sample = scannedSamplePages
	}

	totalChars := 0
	for page := 0; page < sample; page++ {
		text, err := doc.PageText(page)
		if err != nil {
			d.logger.Debug("scanned detection failed to read page, assuming not scanned",
				"page", page+1, "error", err)
			return false
		}
		totalChars += len(strings.TrimSpace(text))
	}

	return totalChars < d.config.GetScannedTextThreshold()
}

var _ domain.ScannedDetector = (*PDFScannedDetector)(nil)
