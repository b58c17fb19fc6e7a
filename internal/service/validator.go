package service

import (
	"fmt"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

// allowedFileTypes is the fixed allow-list of accepted MIME types
var allowedFileTypes = map[string]bool{
	domain.MimeTypePDF:  true,
	domain.MimeTypeText: true,
	domain.MimeTypeDocx: true,
	domain.MimeTypeDoc:  true,
	domain.MimeTypePNG:  true,
	domain.MimeTypeJPEG: true,
}

// FileValidator checks uploaded files against size and type limits.
// Pure function of inputs and configuration; no side effects.
type FileValidator struct {
	config domain.Config
}

// NewFileValidator creates a new file validator
func NewFileValidator(config domain.Config) *FileValidator {
	return &FileValidator{config: config}
}

// Validate applies per-file rules in order: size limit, then type allow-list
func (v *FileValidator) Validate(file domain.UploadedFile) domain.ValidationVerdict {
	if file.FileSize > v.config.GetMaxFileSize() {
		return domain.ValidationVerdict{
			Accepted: false,
			Reason: fmt.Sprintf("%s exceeds the %s limit (file is %s)",
				file.FileName,
				domain.FormatFileSize(v.config.GetMaxFileSize()),
				domain.FormatFileSize(file.FileSize)),
		}
	}

	if !allowedFileTypes[file.FileType] {
		return domain.ValidationVerdict{
			Accepted: false,
			Reason:   fmt.Sprintf("%s has unsupported type %q", file.FileName, file.FileType),
		}
	}

	return domain.ValidationVerdict{Accepted: true}
}

// ValidateBatch partitions a batch into accepted files and rejection
// reasons. A batch over the file-count limit is rejected as a whole with
// zero accepted files; partial batches are never silently truncated.
func (v *FileValidator) ValidateBatch(files []domain.UploadedFile) (domain.BatchValidation, error) {
	maxFiles := v.config.GetMaxBatchFiles()
	if len(files) > maxFiles {
		reason := fmt.Sprintf("too many files: %d selected, maximum is %d", len(files), maxFiles)
		return domain.BatchValidation{Rejections: []string{reason}},
			apperrors.NewValidationError(reason)
	}

	result := domain.BatchValidation{}
	for _, file := range files {
		verdict := v.Validate(file)
		if verdict.Accepted {
			result.Accepted = append(result.Accepted, file)
		} else {
			result.Rejections = append(result.Rejections, verdict.Reason)
		}
	}
	return result, nil
}

var _ domain.FileValidator = (*FileValidator)(nil)
