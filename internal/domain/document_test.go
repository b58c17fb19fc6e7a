package domain

import (
	"strings"
	"testing"
)

func TestAggregate(t *testing.T) {
	tests := []struct {
		name    string
		results []ExtractionResult
		want    string
	}{
		{
			name:    "empty batch",
			results: nil,
			want:    "",
		},
		{
			name: "single success",
			results: []ExtractionResult{
				{Text: "resume body", Method: MethodDirectRead, FileName: "a.txt"},
			},
			want: "resume body",
		},
		{
			name: "failures are skipped, order preserved",
			results: []ExtractionResult{
				{Text: "first", Method: MethodDirectRead, FileName: "a.txt"},
				{Error: "no text content found", FileName: "b.pdf"},
				{Text: "third", Method: MethodPDFTextLayer, FileName: "c.pdf"},
			},
			want: "first" + AggregateSeparator + "third",
		},
		{
			name: "all failures yield empty aggregate",
			results: []ExtractionResult{
				{Error: "corrupt file", FileName: "a.pdf"},
				{Error: "ocr failed", FileName: "b.png"},
			},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Aggregate(tt.results)
			if got != tt.want {
				t.Errorf("Aggregate() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestExtractionResult_Succeeded(t *testing.T) {
	success := ExtractionResult{Text: "hello", Method: MethodDirectRead, FileName: "a.txt"}
	if !success.Succeeded() {
		t.Error("expected result with empty error to be successful")
	}

	failure := ExtractionResult{Error: "boom", FileName: "a.txt"}
	if failure.Succeeded() {
		t.Error("expected result with error to be a failure")
	}
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		size int64
		want string
	}{
		{512, "512 bytes"},
		{2048, "2.0 KiB"},
		{11 * 1024 * 1024, "11.0 MiB"},
	}

	for _, tt := range tests {
		got := FormatFileSize(tt.size)
		if got != tt.want {
			t.Errorf("FormatFileSize(%d) = %q, want %q", tt.size, got, tt.want)
		}
	}
}

func TestAggregateSeparatorIsExplicit(t *testing.T) {
	if !strings.Contains(AggregateSeparator, "---") {
		t.Errorf("separator should be a visible delimiter, got %q", AggregateSeparator)
	}
}
