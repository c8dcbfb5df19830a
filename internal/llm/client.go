// Package llm implements the Anthropic Messages API client used as the
// generation backend. Hand-rolled request/response structs over net/http
// — no SDK dependency.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

const (
	defaultBaseURL   = "https://api.anthropic.com/v1"
	defaultModel     = "claude-sonnet-4-5"
	defaultMaxTokens = 4000
	apiVersion       = "2023-06-01"
)

// Config configures the client. Zero values fall back to production
// defaults; APIKey is required.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// Client talks to the Anthropic Messages API. Safe for concurrent use —
// all fields are read-only after construction.
type Client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	model      string
	maxTokens  int
}

// New creates a client, applying defaults for unset fields.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrNoAPIKey
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.MaxTokens == 0 {
		cfg.MaxTokens = defaultMaxTokens
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = 5 * time.Minute
	}
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
	}, nil
}

// Model returns the configured model identifier.
func (c *Client) Model() string { return c.model }

// ─── Messages API wire format ───────────────────────────────────────────────

type messagesRequest struct {
	Model     string        `json:"model"`
	MaxTokens int           `json:"max_tokens"`
	System    []systemBlock `json:"system,omitempty"`
	Messages  []chatMessage `json:"messages"`
}

// systemBlock carries the shared system prompt. CacheControl marks it
// ephemeral-cacheable so the API reuses it across the batch instead of
// re-processing it on every call.
type systemBlock struct {
	Type         string        `json:"type"`
	Text         string        `json:"text"`
	CacheControl *cacheControl `json:"cache_control,omitempty"`
}

type cacheControl struct {
	Type string `json:"type"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	ID      string `json:"id"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// Generate sends one prompt to the Messages API and returns the
// generated text plus the billed output token count.
func (c *Client) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.Generation, error) {
	body := messagesRequest{
		Model:     c.model,
		MaxTokens: c.maxTokens,
		Messages:  []chatMessage{{Role: "user", Content: req.Prompt}},
	}
	if req.System != "" {
		body.System = []systemBlock{{
			Type:         "text",
			Text:         req.System,
			CacheControl: &cacheControl{Type: "ephemeral"},
		}}
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/messages", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-api-key", c.apiKey)
	httpReq.Header.Set("anthropic-version", apiVersion)

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("messages request: %w", err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if httpResp.StatusCode != http.StatusOK {
		return nil, parseAPIError(httpResp.StatusCode, raw)
	}

	var resp messagesResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}
	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("empty content in response %s", resp.ID)
	}

	return &domain.Generation{
		Text:         resp.Content[0].Text,
		OutputTokens: resp.Usage.OutputTokens,
	}, nil
}

func parseAPIError(status int, raw []byte) error {
	var envelope errorResponse
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Error.Message != "" {
		return fmt.Errorf("api error %d (%s): %s", status, envelope.Error.Type, envelope.Error.Message)
	}
	return fmt.Errorf("api error %d: %s", status, bytes.TrimSpace(raw))
}
