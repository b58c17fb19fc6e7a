package service

import (
	"context"
	"fmt"
	"strings"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

// analysisPromptTemplate describes the task and the exact response shape
// the model must return. The response schema is embedded so the inference
// boundary can parse the reply without loose field access.
const analysisPromptTemplate = `You are an experienced technical recruiter reviewing a candidate's resume.

Analyze the resume below against the job description and respond with a single JSON object, no prose, matching exactly this schema:
{
  "score": <integer 0-100, overall fit>,
  "format_issues": [<strings: formatting and structure problems>],
  "content_issues": [<strings: weak or missing content>],
  "missing_keywords": [<strings: relevant terms from the job description absent from the resume>],
  "recommendations": [<strings: concrete improvements>],
  "internships": [{"title": <string>, "field": <string>, "reason": <string>}],
  "interview_questions": [{"question": <string>, "category": <string>, "hint": <string>}]
}

Job description:
%s

Resume:
%s`

// ResumeAnalysisService turns extracted resume text plus a job
// description into structured feedback via the inference boundary.
type ResumeAnalysisService struct {
	inference domain.InferenceClient
	logger    domain.Logger
}

// NewAnalysisService creates a new resume analysis service
func NewAnalysisService(inference domain.InferenceClient, logger domain.Logger) *ResumeAnalysisService {
	return &ResumeAnalysisService{inference: inference, logger: logger}
}

// Analyze builds the prompt and delegates to the inference client
func (s *ResumeAnalysisService) Analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.ResumeAnalysis, error) {
	resume := strings.TrimSpace(req.ResumeText)
	if resume == "" {
		return nil, apperrors.NewEmptyContentError("no resume text to analyze")
	}

	jobDescription := strings.TrimSpace(req.JobDescription)
	if jobDescription == "" {
		jobDescription = "(no job description provided; evaluate the resume on general quality)"
	}

	prompt := fmt.Sprintf(analysisPromptTemplate, jobDescription, resume)

	s.logger.Info("requesting resume analysis", "resume_chars", len(resume))
	analysis, err := s.inference.Invoke(ctx, prompt)
	if err != nil {
		return nil, err
	}

	s.logger.Info("analysis complete", "score", analysis.Score,
		"recommendations", len(analysis.Recommendations))
	return analysis, nil
}

var _ domain.AnalysisService = (*ResumeAnalysisService)(nil)
