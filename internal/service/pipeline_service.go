package service

import (
	"context"
	"fmt"
	"strings"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

// PipelineService sequences validation, extraction and OCR fallback for
// batches of uploaded files. Files are processed strictly one at a time;
// results keep the original selection order.
type PipelineService struct {
	validator  domain.FileValidator
	extractors []domain.TextExtractor
	logger     domain.Logger
}

// NewPipelineService creates a new file pipeline orchestrator
func NewPipelineService(validator domain.FileValidator, extractors []domain.TextExtractor, logger domain.Logger) *PipelineService {
	return &PipelineService{
		validator:  validator,
		extractors: extractors,
		logger:     logger,
	}
}

// ProcessFile runs one file through the matching extractor. It never
// returns an error: any failure becomes a failure-shaped result so one
// bad file cannot abort a batch.
func (s *PipelineService) ProcessFile(ctx context.Context, file domain.UploadedFile, onProgress domain.ProgressFunc) domain.ExtractionResult {
	return s.processFileAt(ctx, file, 0, 1, onProgress)
}

func (s *PipelineService) processFileAt(ctx context.Context, file domain.UploadedFile, index, total int, onProgress domain.ProgressFunc) (result domain.ExtractionResult) {
	result = domain.ExtractionResult{
		FileName: file.FileName,
		FileSize: file.FileSize,
		FileType: file.FileType,
	}

	// Extraction backends cross into C libraries; convert panics into
	// failure results so they cannot escape past this boundary.
	defer func() {
		if r := recover(); r != nil {
			s.logger.Error("extraction panicked", fmt.Errorf("%v", r), "file", file.FileName)
			result.Text = ""
			result.Method = ""
			result.Error = fmt.Sprintf("extraction failed for %s: internal error", file.FileName)
		}
	}()

	extractor := s.extractorFor(file.FileType)
	if extractor == nil {
		result.Error = fmt.Sprintf("%s has unsupported type %q", file.FileName, file.FileType)
		return result
	}

	relay := func(percent int) {
		if onProgress != nil {
			onProgress(domain.BatchProgress{
				CurrentFileIndex: index,
				TotalFiles:       total,
				FileName:         file.FileName,
				PercentComplete:  percent,
			})
		}
	}

	relay(0)
	text, method, err := extractor.Extract(ctx, file.Data, file.FileName, relay)
	if err != nil {
		s.logger.Warn("extraction failed", "file", file.FileName, "error", err)
		result.Error = err.Error()
		return result
	}

	text = strings.TrimSpace(text)
	if text == "" {
		err := apperrors.NewEmptyContentError("no text content found")
		result.Error = err.Error()
		return result
	}

	relay(100)
	result.Text = text
	result.Method = method
	return result
}

// ProcessBatch validates the batch, then runs each file in selection
// order. The only batch-level failure is a batch too large to process;
// every other problem is reported per file. Rejected files yield
// failure-shaped results carrying the rejection reason so no file is
// dropped silently.
func (s *PipelineService) ProcessBatch(ctx context.Context, files []domain.UploadedFile, onProgress domain.ProgressFunc) ([]domain.ExtractionResult, error) {
	if _, err := s.validator.ValidateBatch(files); err != nil {
		return nil, err
	}

	total := len(files)
	results := make([]domain.ExtractionResult, 0, total)
	for i, file := range files {
		if verdict := s.validator.Validate(file); !verdict.Accepted {
			results = append(results, domain.ExtractionResult{
				FileName: file.FileName,
				FileSize: file.FileSize,
				FileType: file.FileType,
				Error:    verdict.Reason,
			})
			continue
		}

		s.logger.Info("processing file", "file", file.FileName, "index", i+1, "total", total)
		results = append(results, s.processFileAt(ctx, file, i, total, onProgress))
	}

	return results, nil
}

// extractorFor picks the strategy matching the declared MIME type
func (s *PipelineService) extractorFor(fileType string) domain.TextExtractor {
	for _, e := range s.extractors {
		if e.Supports(fileType) {
			return e
		}
	}
	return nil
}

var _ domain.FilePipeline = (*PipelineService)(nil)
