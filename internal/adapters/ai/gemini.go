// Package ai implements the outbound adapter for the Gemini generateContent
// API. Prompts go out with a JSON response schema attached; decoded domain
// values come back. Upstream failures are classified into stable assist
// error codes here so nothing above this package inspects raw API errors.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/taskmind/taskmind/internal/domain/assist"
	"github.com/taskmind/taskmind/internal/platform/httpclient"
	"github.com/taskmind/taskmind/internal/ports"
)

// maxErrorBodySize limits how much of an error response body we read.
const maxErrorBodySize = 1 << 20 // 1 MB

// Compile-time interface check.
var _ ports.Generator = (*GeminiClient)(nil)

// GeminiClient is the outbound adapter for the Gemini generateContent API.
// It implements [ports.Generator].
//
// The underlying [httpclient.Client] provides circuit breaking, rate
// limiting, retry with exponential backoff, and OpenTelemetry tracing for
// every outbound call; it also makes the adapter a [ports.HealthChecker]
// through its breaker state.
type GeminiClient struct {
	client *httpclient.Client
	model  string
	apiKey string
	logger *slog.Logger
}

// NewGeminiClient creates a GeminiClient. The client's BaseURL should point
// at the API root (e.g. "https://generativelanguage.googleapis.com"); model
// names the generateContent model (e.g. "gemini-2.0-flash-exp"). An empty
// apiKey is tolerated at construction and reported per call as
// SERVICE_UNAVAILABLE.
func NewGeminiClient(client *httpclient.Client, model, apiKey string, logger *slog.Logger) *GeminiClient {
	return &GeminiClient{
		client: client,
		model:  model,
		apiKey: apiKey,
		logger: logger,
	}
}

// ParseTodo sends the parse prompt constrained by the draft schema and
// decodes the model's draft.
func (c *GeminiClient) ParseTodo(ctx context.Context, prompt string) (assist.Draft, error) {
	var draft assist.Draft
	if err := c.generate(ctx, prompt, draftSchema, assist.CodeParseError, &draft); err != nil {
		return assist.Draft{}, err
	}
	return draft, nil
}

// AnalyzeTodos sends the analysis prompt constrained by the analysis schema
// and decodes the model's narrative.
func (c *GeminiClient) AnalyzeTodos(ctx context.Context, prompt string) (assist.Analysis, error) {
	var analysis assist.Analysis
	if err := c.generate(ctx, prompt, analysisSchema, assist.CodeAnalysisError, &analysis); err != nil {
		return assist.Analysis{}, err
	}
	return analysis, nil
}

// HealthChecker returns the underlying instrumented client, whose breaker
// state doubles as the adapter's health signal.
func (c *GeminiClient) HealthChecker() ports.HealthChecker {
	return c.client
}

// generate runs one generateContent call and decodes the JSON candidate
// text into out. Every failure path comes back as a classified
// *assist.Error carrying the given fallback code.
func (c *GeminiClient) generate(ctx context.Context, prompt string, s *schema, fallback assist.Code, out any) error {
	if c.apiKey == "" {
		c.logger.ErrorContext(ctx, "generate called without an API key configured")
		return assist.NewError(assist.CodeServiceUnavailable,
			"AI 서비스 설정이 올바르지 않습니다. 관리자에게 문의하세요.")
	}

	text, err := c.callGenerateContent(ctx, prompt, s)
	if err != nil {
		c.logger.ErrorContext(ctx, "generateContent call failed",
			slog.String("model", c.model),
			slog.Any("error", err),
		)
		return Classify(fallback, err)
	}

	if err := json.Unmarshal([]byte(text), out); err != nil {
		c.logger.ErrorContext(ctx, "model returned undecodable JSON",
			slog.String("model", c.model),
			slog.Any("error", err),
		)
		return Classify(fallback, fmt.Errorf("response schema validation: %w", err))
	}

	return nil
}

func (c *GeminiClient) callGenerateContent(ctx context.Context, prompt string, s *schema) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   s,
		},
	})
	if err != nil {
		return "", fmt.Errorf("marshaling generateContent body: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", c.client.BaseURL(), c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("creating generateContent request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.client.Do(ctx, req)
	if err != nil {
		if resp != nil {
			defer c.closeBody(ctx, resp)
			return "", apiError(resp)
		}
		return "", err
	}
	defer c.closeBody(ctx, resp)

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	var decoded generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("decoding generateContent response: %w", err)
	}

	text := decoded.text()
	if text == "" {
		return "", fmt.Errorf("response schema validation: no candidate text")
	}
	return text, nil
}

func (c *GeminiClient) closeBody(ctx context.Context, resp *http.Response) {
	if err := resp.Body.Close(); err != nil {
		c.logger.WarnContext(ctx, "failed to close response body",
			slog.String("error", err.Error()),
		)
	}
}

// apiError turns a non-200 response into an error whose message carries the
// status code and upstream error text, which is what Classify keys on.
func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBodySize))

	var e struct {
		Error struct {
			Message string `json:"message"`
			Status  string `json:"status"`
		} `json:"error"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Error.Message != "" {
		return fmt.Errorf("generateContent status %d (%s): %s",
			resp.StatusCode, e.Error.Status, e.Error.Message)
	}
	return fmt.Errorf("generateContent status %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
}

// Wire types for the generateContent call.

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string  `json:"responseMimeType"`
	ResponseSchema   *schema `json:"responseSchema,omitempty"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// text returns the first candidate's first part, which is where the
// schema-constrained JSON document lives.
func (r *generateResponse) text() string {
	if len(r.Candidates) == 0 || len(r.Candidates[0].Content.Parts) == 0 {
		return ""
	}
	return r.Candidates[0].Content.Parts[0].Text
}
