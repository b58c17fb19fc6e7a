package service

import (
	"strings"
	"testing"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

func makeFile(name, fileType string, size int64) domain.UploadedFile {
	return domain.UploadedFile{
		FileName: name,
		FileType: fileType,
		FileSize: size,
		Data:     []byte("x"),
	}
}

func TestValidate_AcceptsAllowedTypes(t *testing.T) {
	v := NewFileValidator(newMockConfig())

	allowed := []string{
		domain.MimeTypePDF,
		domain.MimeTypeText,
		domain.MimeTypeDocx,
		domain.MimeTypeDoc,
		domain.MimeTypePNG,
		domain.MimeTypeJPEG,
	}

	for _, fileType := range allowed {
		verdict := v.Validate(makeFile("resume", fileType, 1024))
		if !verdict.Accepted {
			t.Errorf("expected type %s to be accepted, got rejection: %s", fileType, verdict.Reason)
		}
	}
}

func TestValidate_RejectsOversizeWithMeasuredSize(t *testing.T) {
	v := NewFileValidator(newMockConfig())

	verdict := v.Validate(makeFile("big.pdf", domain.MimeTypePDF, 11*1024*1024))
	if verdict.Accepted {
		t.Fatal("expected oversize file to be rejected")
	}
	if !strings.Contains(verdict.Reason, "11.0 MiB") {
		t.Errorf("rejection message should include the measured size, got: %s", verdict.Reason)
	}
	if !strings.Contains(verdict.Reason, "big.pdf") {
		t.Errorf("rejection message should name the file, got: %s", verdict.Reason)
	}
}

func TestValidate_RejectsUnsupportedTypeNamingIt(t *testing.T) {
	v := NewFileValidator(newMockConfig())

	verdict := v.Validate(makeFile("archive.zip", "application/zip", 1024))
	if verdict.Accepted {
		t.Fatal("expected unsupported type to be rejected")
	}
	if !strings.Contains(verdict.Reason, "application/zip") {
		t.Errorf("rejection message should name the offending type, got: %s", verdict.Reason)
	}
}

func TestValidateBatch_RejectsWholeBatchWhenTooLarge(t *testing.T) {
	v := NewFileValidator(newMockConfig())

	files := make([]domain.UploadedFile, 6)
	for i := range files {
		files[i] = makeFile("resume.txt", domain.MimeTypeText, 100)
	}

	batch, err := v.ValidateBatch(files)
	if err == nil {
		t.Fatal("expected a batch-level error for too many files")
	}
	if !apperrors.IsType(err, apperrors.ErrorTypeValidation) {
		t.Errorf("expected validation error, got %v", err)
	}
	if len(batch.Accepted) != 0 {
		t.Errorf("oversize batch must accept zero files, accepted %d", len(batch.Accepted))
	}
	if len(batch.Rejections) != 1 {
		t.Errorf("expected a single explanatory rejection, got %d", len(batch.Rejections))
	}
}

func TestValidateBatch_PartitionsMixedBatch(t *testing.T) {
	v := NewFileValidator(newMockConfig())

	files := []domain.UploadedFile{
		makeFile("hello.txt", domain.MimeTypeText, 11),
		makeFile("huge.pdf", domain.MimeTypePDF, 11*1024*1024),
	}

	batch, err := v.ValidateBatch(files)
	if err != nil {
		t.Fatalf("unexpected batch error: %v", err)
	}
	if len(batch.Accepted) != 1 || batch.Accepted[0].FileName != "hello.txt" {
		t.Errorf("expected only hello.txt accepted, got %+v", batch.Accepted)
	}
	if len(batch.Rejections) != 1 || !strings.Contains(batch.Rejections[0], "huge.pdf") {
		t.Errorf("expected one rejection naming huge.pdf, got %v", batch.Rejections)
	}
}
