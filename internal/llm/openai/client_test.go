package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"resumefit-backend/internal/llm"
)

func newTestClient(url string) *Client {
	return &Client{
		apiKey:     "test-key",
		model:      "test-model",
		apiURL:     url,
		httpClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestNewClientValidation(t *testing.T) {
	if _, err := NewClient("", "model", 0); err == nil {
		t.Fatalf("expected error for empty api key")
	}
	if _, err := NewClient("key", "", 0); err == nil {
		t.Fatalf("expected error for empty model")
	}
	c, err := NewClient("key", "model", 0)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if c.httpClient.Timeout != DefaultTimeout {
		t.Fatalf("expected default timeout, got %v", c.httpClient.Timeout)
	}
}

func TestScore(t *testing.T) {
	var gotAuth string
	var gotReq chatRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotReq); err != nil {
			t.Errorf("decode request: %v", err)
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": `{"overallScore": 70}`}},
			},
			"usage": map[string]int{"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	raw, err := c.Score(context.Background(), llm.ScoreInput{
		ResumeText:     "resume body",
		JobDescription: "job body",
	})
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if string(raw) != `{"overallScore": 70}` {
		t.Fatalf("unexpected content: %s", raw)
	}

	if gotAuth != "Bearer test-key" {
		t.Fatalf("unexpected auth header: %q", gotAuth)
	}
	if gotReq.Model != "test-model" {
		t.Fatalf("unexpected model: %q", gotReq.Model)
	}
	if gotReq.Temperature == nil || *gotReq.Temperature != 0 {
		t.Fatalf("expected temperature pinned to zero")
	}
	if len(gotReq.Messages) != 1 || !strings.Contains(gotReq.Messages[0].Content, "resume body") {
		t.Fatalf("expected prompt to carry the resume text")
	}
}

func TestScoreAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "quota exceeded", "type": "insufficient_quota"},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.Score(context.Background(), llm.ScoreInput{}); err == nil {
		t.Fatalf("expected error from API error payload")
	} else if !strings.Contains(err.Error(), "quota exceeded") {
		t.Fatalf("expected error message surfaced, got %v", err)
	}
}

func TestScoreMissingChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.Score(context.Background(), llm.ScoreInput{}); err == nil {
		t.Fatalf("expected error for missing choices")
	}
}

func TestScoreEmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "   "}},
			},
		})
	}))
	defer srv.Close()

	c := newTestClient(srv.URL)
	if _, err := c.Score(context.Background(), llm.ScoreInput{}); err == nil {
		t.Fatalf("expected error for empty content")
	}
}

func TestBuildPrompt(t *testing.T) {
	prompt := buildPrompt("RESUME BODY", "JOB BODY")
	if !strings.Contains(prompt, "RESUME BODY") || !strings.Contains(prompt, "JOB BODY") {
		t.Fatalf("prompt missing inputs")
	}
	if !strings.Contains(prompt, `"overallScore"`) {
		t.Fatalf("prompt missing response format")
	}
}
