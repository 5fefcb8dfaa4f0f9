// Package ai is the adapter for the external text-generation collaborator.
// It is request/response only: no streaming, no retries, no state. Callers
// must treat every error as recoverable and fall back to a local message.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// geminiAPIBase is a var to allow test overrides via httptest.
var geminiAPIBase = "https://generativelanguage.googleapis.com/v1beta"

// SetGeminiAPIBase overrides the Gemini endpoint base URL. Tests only.
func SetGeminiAPIBase(u string) { geminiAPIBase = u }

const DefaultModel = "gemini-2.5-flash"

// sharedHTTPClient covers slow model responses; generation can take a while.
var sharedHTTPClient = &http.Client{
	Timeout: 2 * time.Minute,
}

// Client calls the Gemini generateContent API.
type Client struct {
	model  string
	apiKey string // unexported; never serialized
}

// NewClient builds a client for the given model. The API key is read from
// the GEMINI_API_KEY environment variable at construction time; the
// application never manages or rotates it.
func NewClient(model string) (*Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}
	if model == "" {
		model = DefaultModel
	}
	return &Client{model: model, apiKey: apiKey}, nil
}

// GenerationConfig is forwarded verbatim to the model.
type GenerationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
	TopK        int     `json:"topK"`
}

// defaultGenerationConfig matches the sampling parameters the application
// has always used for recommendations.
var defaultGenerationConfig = GenerationConfig{Temperature: 0.5, TopP: 0.95, TopK: 64}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiContent struct {
	Role  string       `json:"role,omitempty"`
	Parts []geminiPart `json:"parts"`
}

type geminiRequest struct {
	Contents          []geminiContent   `json:"contents"`
	SystemInstruction *geminiContent    `json:"systemInstruction,omitempty"`
	GenerationConfig  *GenerationConfig `json:"generationConfig,omitempty"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Status  string `json:"status"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one prompt, with an optional system instruction, and
// returns the concatenated text of the first candidate.
func (c *Client) Generate(ctx context.Context, systemInstruction, prompt string, cfg *GenerationConfig) (string, error) {
	if cfg == nil {
		cfg = &defaultGenerationConfig
	}

	body := geminiRequest{
		Contents:         []geminiContent{{Role: "user", Parts: []geminiPart{{Text: prompt}}}},
		GenerationConfig: cfg,
	}
	if systemInstruction != "" {
		body.SystemInstruction = &geminiContent{Parts: []geminiPart{{Text: systemInstruction}}}
	}

	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", geminiAPIBase, c.model)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := sharedHTTPClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("HTTP request failed: %w", err)
	}
	defer resp.Body.Close()

	const maxBodyBytes = 10 * 1024 * 1024
	respBytes, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("reading response body: %w", err)
	}

	var gr geminiResponse
	if err := json.Unmarshal(respBytes, &gr); err != nil {
		return "", fmt.Errorf("parsing response JSON (HTTP %d, body: %s): %w",
			resp.StatusCode, truncate(string(respBytes), 200), err)
	}

	if resp.StatusCode != http.StatusOK {
		if gr.Error != nil {
			return "", fmt.Errorf("gemini: %s: %s", gr.Error.Status, gr.Error.Message)
		}
		return "", fmt.Errorf("gemini: HTTP %d: %s", resp.StatusCode, truncate(string(respBytes), 200))
	}

	var text string
	for _, cand := range gr.Candidates {
		for _, part := range cand.Content.Parts {
			text += part.Text
		}
		break
	}
	if text == "" {
		return "", fmt.Errorf("gemini: no text content in response (%d candidates)", len(gr.Candidates))
	}
	return text, nil
}

// truncate limits a string to maxLen runes, appending "..." if truncated.
func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen]) + "..."
}
