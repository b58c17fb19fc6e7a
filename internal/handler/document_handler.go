// Package handler provides HTTP handlers for the API.
package handler

import (
	"encoding/json"
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"

	"resume-analyzer/internal/domain"
)

// multipartMemoryLimit caps how much of a multipart body is held in memory
const multipartMemoryLimit = 64 << 20

// DocumentHandler handles document extraction HTTP requests
type DocumentHandler struct {
	pipeline domain.FilePipeline
	detector domain.ScannedDetector
	logger   domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(pipeline domain.FilePipeline, detector domain.ScannedDetector, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		pipeline: pipeline,
		detector: detector,
		logger:   logger,
	}
}

// extractResponse is the JSON body returned by the extraction endpoints
type extractResponse struct {
	Results        []domain.ExtractionResult `json:"results"`
	AggregatedText string                    `json:"aggregated_text"`
}

// Extract processes an uploaded batch and returns ordered per-file results
func (h *DocumentHandler) Extract(w http.ResponseWriter, r *http.Request) {
	files, err := readUploadedFiles(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	results, err := h.pipeline.ProcessBatch(r.Context(), files, nil)
	if err != nil {
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, extractResponse{
		Results:        results,
		AggregatedText: domain.Aggregate(results),
	})
}

// ExtractStream processes an uploaded batch and streams progress events
// over SSE, ending with a "results" event carrying the full outcome.
func (h *DocumentHandler) ExtractStream(w http.ResponseWriter, r *http.Request) {
	files, err := readUploadedFiles(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		writeError(w, http.StatusInternalServerError, "streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	onProgress := func(event domain.BatchProgress) {
		writeSSE(w, "progress", event)
		flusher.Flush()
	}

	results, err := h.pipeline.ProcessBatch(r.Context(), files, onProgress)
	if err != nil {
		writeSSE(w, "error", map[string]string{"error": err.Error()})
		flusher.Flush()
		return
	}

	writeSSE(w, "results", extractResponse{
		Results:        results,
		AggregatedText: domain.Aggregate(results),
	})
	flusher.Flush()
}

// DetectScanned reports whether a single uploaded PDF looks scanned.
// Offered so clients can short-circuit before a full extraction; the
// extraction pipeline applies its own authoritative check either way.
func (h *DocumentHandler) DetectScanned(w http.ResponseWriter, r *http.Request) {
	files, err := readUploadedFiles(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(files) != 1 {
		writeError(w, http.StatusBadRequest, "exactly one file is required")
		return
	}
	if files[0].FileType != domain.MimeTypePDF {
		writeError(w, http.StatusBadRequest, "scanned detection only applies to PDF files")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{
		"scanned": h.detector.LooksScanned(files[0].Data),
	})
}

// writeSSE emits one server-sent event with a JSON data payload
func writeSSE(w io.Writer, event string, payload interface{}) {
	data, err := json.Marshal(payload)
	if err != nil {
		return
	}
	fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data)
}

// readUploadedFiles collects the "files" multipart parts in selection order
func readUploadedFiles(r *http.Request) ([]domain.UploadedFile, error) {
	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		return nil, fmt.Errorf("invalid multipart request: %w", err)
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		return nil, fmt.Errorf("no files uploaded; use the \"files\" form field")
	}

	files := make([]domain.UploadedFile, 0, len(headers))
	for _, header := range headers {
		part, err := header.Open()
		if err != nil {
			return nil, fmt.Errorf("failed to open %s: %w", header.Filename, err)
		}
		data, err := io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", header.Filename, err)
		}

		files = append(files, domain.UploadedFile{
			Data:     data,
			FileName: header.Filename,
			FileType: declaredType(header.Header.Get("Content-Type"), header.Filename),
			FileSize: header.Size,
		})
	}
	return files, nil
}

// declaredType resolves the file's MIME type, falling back to the
// extension when the part carries no usable Content-Type
func declaredType(contentType, fileName string) string {
	if contentType != "" && contentType != "application/octet-stream" {
		mediaType, _, err := mime.ParseMediaType(contentType)
		if err == nil {
			return mediaType
		}
	}

	switch filepath.Ext(fileName) {
	case ".pdf":
		return domain.MimeTypePDF
	case ".txt":
		return domain.MimeTypeText
	case ".docx":
		return domain.MimeTypeDocx
	case ".doc":
		return domain.MimeTypeDoc
	case ".png":
		return domain.MimeTypePNG
	case ".jpg", ".jpeg":
		return domain.MimeTypeJPEG
	default:
		return contentType
	}
}
