package handler

import (
	"net/http"
	"strings"

	"resume-analyzer/internal/domain"
)

// AnalysisHandler handles resume analysis HTTP requests
type AnalysisHandler struct {
	pipeline domain.FilePipeline
	analysis domain.AnalysisService
	logger   domain.Logger
}

// NewAnalysisHandler creates a new analysis handler
func NewAnalysisHandler(pipeline domain.FilePipeline, analysis domain.AnalysisService, logger domain.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		pipeline: pipeline,
		analysis: analysis,
		logger:   logger,
	}
}

// analysisResponse pairs per-file extraction outcomes with the model's feedback
type analysisResponse struct {
	Results  []domain.ExtractionResult `json:"results"`
	Analysis *domain.ResumeAnalysis    `json:"analysis"`
}

// Analyze extracts text from the uploaded batch, aggregates it and asks
// the inference boundary for structured feedback against the job description.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	files, err := readUploadedFiles(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	jobDescription := strings.TrimSpace(r.FormValue("job_description"))

	results, err := h.pipeline.ProcessBatch(r.Context(), files, nil)
	if err != nil {
		writeAppError(w, err)
		return
	}

	aggregated := domain.Aggregate(results)
	if aggregated == "" {
		writeError(w, http.StatusUnprocessableEntity,
			"no text could be extracted from the uploaded files")
		return
	}

	analysis, err := h.analysis.Analyze(r.Context(), domain.AnalysisRequest{
		ResumeText:     aggregated,
		JobDescription: jobDescription,
	})
	if err != nil {
		h.logger.Error("analysis failed", err)
		writeAppError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, analysisResponse{
		Results:  results,
		Analysis: analysis,
	})
}
