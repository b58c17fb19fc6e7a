package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"resume-analyzer/internal/domain"
	apperrors "resume-analyzer/pkg/errors"
)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta"

	maxAttempts    = 3
	initialBackoff = 1000 * time.Millisecond
)

// generateRequest is the Gemini generateContent request body
type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string `json:"responseMimeType,omitempty"`
}

// generateResponse is the subset of the Gemini response we rely on. The
// model's answer is itself a JSON-encoded string nested at
// candidates[0].content.parts[0].text — two layers of JSON encoding.
type generateResponse struct {
	Candidates []struct {
		Content struct {
			Parts []struct {
				Text string `json:"text"`
			} `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

// GeminiClient calls the Gemini generateContent endpoint with retry and
// exponential backoff. Transient failures are retried; structural
// response mismatches are fatal immediately.
type GeminiClient struct {
	apiKey     string
	model      string
	baseURL    string
	httpClient *http.Client
	logger     domain.Logger
	backoff    time.Duration
}

// NewInferenceClient creates a new Gemini inference client
func NewInferenceClient(config domain.Config, logger domain.Logger) *GeminiClient {
	return &GeminiClient{
		apiKey:     config.GetGeminiAPIKey(),
		model:      config.GetGenModel(),
		baseURL:    geminiBaseURL,
		httpClient: &http.Client{Timeout: 60 * time.Second},
		logger:     logger,
		backoff:    initialBackoff,
	}
}

// Invoke sends the prompt and returns the parsed analysis. A missing API
// key fails before any network call. Up to three attempts, backoff
// starting at one second and doubling; the last error is re-raised after
// the final attempt.
func (c *GeminiClient) Invoke(ctx context.Context, prompt string) (*domain.ResumeAnalysis, error) {
	if c.apiKey == "" {
		return nil, apperrors.NewConfigurationError("GEMINI_API_KEY is not set")
	}

	body, err := json.Marshal(generateRequest{
		Contents:         []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: &generationConfig{ResponseMimeType: "application/json"},
	})
	if err != nil {
		return nil, apperrors.NewInternalError("failed to encode inference request", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)

	var lastErr error
	backoff := c.backoff
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		analysis, err := c.attempt(ctx, url, body)
		if err == nil {
			return analysis, nil
		}
		if !apperrors.IsRetryable(err) {
			return nil, err
		}
		lastErr = err

		if attempt == maxAttempts {
			break
		}

		c.logger.Warn("inference request failed, retrying",
			"attempt", attempt, "max_attempts", maxAttempts, "backoff", backoff, "error", err)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
		backoff *= 2
	}

	return nil, lastErr
}

// attempt performs one request/parse cycle
func (c *GeminiClient) attempt(ctx context.Context, url string, body []byte) (*domain.ResumeAnalysis, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, apperrors.NewInternalError("failed to build inference request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, apperrors.NewNetworkError("inference request failed", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewNetworkError("failed to read inference response", err)
	}

	if resp.StatusCode != http.StatusOK {
		if isRetryableStatus(resp.StatusCode) {
			return nil, apperrors.NewNetworkError(
				fmt.Sprintf("inference service returned HTTP %d", resp.StatusCode), nil)
		}
		return nil, apperrors.NewInternalError(
			fmt.Sprintf("inference request rejected with HTTP %d", resp.StatusCode), nil)
	}

	return parseAnalysisResponse(respBody)
}

// parseAnalysisResponse unwraps the two layers of JSON encoding: the
// transport envelope, then the JSON document embedded in the first
// candidate's text part.
func parseAnalysisResponse(body []byte) (*domain.ResumeAnalysis, error) {
	var outer generateResponse
	if err := json.Unmarshal(body, &outer); err != nil {
		return nil, apperrors.NewResponseShapeError("inference response is not valid JSON", err)
	}

	if len(outer.Candidates) == 0 || len(outer.Candidates[0].Content.Parts) == 0 {
		return nil, apperrors.NewResponseShapeError("inference response contains no candidates", nil)
	}

	inner := stripMarkdownFences(outer.Candidates[0].Content.Parts[0].Text)
	if strings.TrimSpace(inner) == "" {
		return nil, apperrors.NewResponseShapeError("inference response text is empty", nil)
	}

	var analysis domain.ResumeAnalysis
	if err := json.Unmarshal([]byte(inner), &analysis); err != nil {
		return nil, apperrors.NewResponseShapeError("embedded analysis JSON does not match schema", err)
	}
	return &analysis, nil
}

// stripMarkdownFences removes ```json fences models sometimes wrap
// around JSON output
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

// isRetryableStatus reports whether an HTTP status is worth another attempt
func isRetryableStatus(statusCode int) bool {
	switch statusCode {
	case http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

var _ domain.InferenceClient = (*GeminiClient)(nil)
