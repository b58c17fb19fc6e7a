package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

func TestAnalyze_ReturnsAnalysisWithResults(t *testing.T) {
	pipeline := &MockPipeline{results: []domain.ExtractionResult{
		{Text: "Go developer, 5 years", Method: domain.MethodDirectRead, FileName: "cv.txt"},
	}}
	analysis := &MockAnalysisService{analysis: &domain.ResumeAnalysis{
		Score:           78,
		Recommendations: []string{"quantify achievements"},
	}}
	h := NewAnalysisHandler(pipeline, analysis, NewMockHandlerLogger())

	body, contentType := multipartBody(t,
		map[string][2]string{"cv.txt": {domain.MimeTypeText, "Go developer, 5 years"}},
		map[string]string{"job_description": "Senior Go engineer"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.Analyze(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d: %s", http.StatusOK, rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"score":78`) {
		t.Errorf("expected analysis score in response, got: %s", rr.Body.String())
	}
	if analysis.lastReq.ResumeText != "Go developer, 5 years" {
		t.Errorf("analysis should receive the aggregated text, got %q", analysis.lastReq.ResumeText)
	}
	if analysis.lastReq.JobDescription != "Senior Go engineer" {
		t.Errorf("analysis should receive the job description, got %q", analysis.lastReq.JobDescription)
	}
}

func TestAnalyze_AllFilesFailedIsUnprocessable(t *testing.T) {
	pipeline := &MockPipeline{results: []domain.ExtractionResult{
		{Error: "no text content found", FileName: "blank.pdf"},
	}}
	analysis := &MockAnalysisService{analysis: &domain.ResumeAnalysis{}}
	h := NewAnalysisHandler(pipeline, analysis, NewMockHandlerLogger())

	body, contentType := multipartBody(t,
		map[string][2]string{"blank.pdf": {domain.MimeTypePDF, "%PDF-"}}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.Analyze(rr, req)

	if rr.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected status %d, got %d", http.StatusUnprocessableEntity, rr.Code)
	}
	if analysis.lastReq.ResumeText != "" {
		t.Error("inference must not run when nothing was extracted")
	}
}

func TestAnalyze_InferenceFailureMapsToStatus(t *testing.T) {
	pipeline := &MockPipeline{results: []domain.ExtractionResult{
		{Text: "resume", Method: domain.MethodDirectRead, FileName: "cv.txt"},
	}}
	analysis := &MockAnalysisService{err: apperrors.NewNetworkError("inference service returned HTTP 503", nil)}
	h := NewAnalysisHandler(pipeline, analysis, NewMockHandlerLogger())

	body, contentType := multipartBody(t,
		map[string][2]string{"cv.txt": {domain.MimeTypeText, "resume"}}, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/analysis", body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()

	h.Analyze(rr, req)

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rr.Code)
	}
}
