package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/aaxis-ai/reportrunner/internal/domain"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	if !errors.Is(err, domain.ErrNoAPIKey) {
		t.Errorf("New without key: err = %v, want ErrNoAPIKey", err)
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New(Config{APIKey: "sk-test"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if c.Model() != "claude-sonnet-4-5" {
		t.Errorf("Model = %q, want claude-sonnet-4-5", c.Model())
	}
	if c.maxTokens != 4000 {
		t.Errorf("maxTokens = %d, want 4000", c.maxTokens)
	}
}

func TestGenerate(t *testing.T) {
	var gotReq messagesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/messages" {
			t.Errorf("path = %q, want /messages", r.URL.Path)
		}
		if got := r.Header.Get("x-api-key"); got != "sk-test" {
			t.Errorf("x-api-key = %q", got)
		}
		if got := r.Header.Get("anthropic-version"); got != "2023-06-01" {
			t.Errorf("anthropic-version = %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":          "msg_1",
			"content":     []map[string]string{{"type": "text", "text": "generated block"}},
			"stop_reason": "end_turn",
			"usage":       map[string]int{"input_tokens": 1200, "output_tokens": 850},
		})
	}))
	defer srv.Close()

	c, err := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	gen, err := c.Generate(context.Background(), domain.GenerateRequest{
		Prompt: "generate the block",
		System: "shared instructions",
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if gen.Text != "generated block" {
		t.Errorf("Text = %q", gen.Text)
	}
	if gen.OutputTokens != 850 {
		t.Errorf("OutputTokens = %d, want 850", gen.OutputTokens)
	}

	if gotReq.Model != "claude-sonnet-4-5" {
		t.Errorf("request model = %q", gotReq.Model)
	}
	if gotReq.MaxTokens != 4000 {
		t.Errorf("request max_tokens = %d", gotReq.MaxTokens)
	}
	if len(gotReq.Messages) != 1 || gotReq.Messages[0].Role != "user" {
		t.Errorf("messages = %+v", gotReq.Messages)
	}
	if len(gotReq.System) != 1 {
		t.Fatalf("system blocks = %d, want 1", len(gotReq.System))
	}
	if gotReq.System[0].Text != "shared instructions" {
		t.Errorf("system text = %q", gotReq.System[0].Text)
	}
	if gotReq.System[0].CacheControl == nil || gotReq.System[0].CacheControl.Type != "ephemeral" {
		t.Errorf("cache_control = %+v, want ephemeral", gotReq.System[0].CacheControl)
	}
}

func TestGenerateOmitsEmptySystem(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]interface{}
		json.NewDecoder(r.Body).Decode(&req)
		if _, ok := req["system"]; ok {
			t.Error("request should omit system when empty")
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"content": []map[string]string{{"type": "text", "text": "ok"}},
			"usage":   map[string]int{"output_tokens": 1},
		})
	}))
	defer srv.Close()

	c, _ := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	if _, err := c.Generate(context.Background(), domain.GenerateRequest{Prompt: "p"}); err != nil {
		t.Fatalf("Generate: %v", err)
	}
}

func TestGenerateAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": map[string]string{"type": "rate_limit_error", "message": "too many requests"},
		})
	}))
	defer srv.Close()

	c, _ := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	_, err := c.Generate(context.Background(), domain.GenerateRequest{Prompt: "p"})
	if err == nil {
		t.Fatal("Generate should fail on 429")
	}
	if !strings.Contains(err.Error(), "rate_limit_error") || !strings.Contains(err.Error(), "too many requests") {
		t.Errorf("error = %v, want rate limit envelope", err)
	}
}

func TestGenerateEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"id":      "msg_2",
			"content": []map[string]string{},
			"usage":   map[string]int{"output_tokens": 0},
		})
	}))
	defer srv.Close()

	c, _ := New(Config{APIKey: "sk-test", BaseURL: srv.URL})
	if _, err := c.Generate(context.Background(), domain.GenerateRequest{Prompt: "p"}); err == nil {
		t.Fatal("Generate should fail on empty content")
	}
}
