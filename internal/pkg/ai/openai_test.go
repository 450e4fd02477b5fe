package ai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"coursepulse/internal/pkg/apperrors"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
	MaxTokens   int     `json:"max_tokens"`
	Temperature float32 `json:"temperature"`
}

func completionServer(t *testing.T, handler func(w http.ResponseWriter, req chatRequest)) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decoding request: %v", err)
		}
		handler(w, req)
	}))
}

func TestComplete_SendsConfiguredParameters(t *testing.T) {
	var got chatRequest
	srv := completionServer(t, func(w http.ResponseWriter, req chatRequest) {
		got = req
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"  the answer  "}}]}`))
	})
	defer srv.Close()

	client := NewOpenAIClient(Config{
		APIKey:      "test-key",
		BaseURL:     srv.URL + "/v1",
		Model:       "gpt-4o-mini",
		MaxTokens:   2048,
		Temperature: 0.2,
	})

	answer, err := client.Complete(context.Background(), "the prompt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if answer != "the answer" {
		t.Fatalf("expected trimmed answer, got %q", answer)
	}

	if got.Model != "gpt-4o-mini" || got.MaxTokens != 2048 {
		t.Fatalf("request does not carry configured parameters: %+v", got)
	}
	if got.Temperature < 0.19 || got.Temperature > 0.21 {
		t.Fatalf("unexpected temperature: %v", got.Temperature)
	}
	if len(got.Messages) != 1 || got.Messages[0].Role != "user" || got.Messages[0].Content != "the prompt" {
		t.Fatalf("prompt must be sent as one user message: %+v", got.Messages)
	}
}

func TestComplete_ServerErrorIsCompletionFailure(t *testing.T) {
	srv := completionServer(t, func(w http.ResponseWriter, req chatRequest) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"boom"}}`))
	})
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini", MaxTokens: 64})

	_, err := client.Complete(context.Background(), "the prompt")
	if !errors.Is(err, apperrors.ErrCompletionFailed) {
		t.Fatalf("expected ErrCompletionFailed, got %v", err)
	}
}

func TestComplete_EmptyChoicesIsCompletionFailure(t *testing.T) {
	srv := completionServer(t, func(w http.ResponseWriter, req chatRequest) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[]}`))
	})
	defer srv.Close()

	client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini", MaxTokens: 64})

	_, err := client.Complete(context.Background(), "the prompt")
	if !errors.Is(err, apperrors.ErrCompletionFailed) {
		t.Fatalf("expected ErrCompletionFailed, got %v", err)
	}
}

func TestComplete_CallerDeadlineIsRespected(t *testing.T) {
	block := make(chan struct{})
	srv := completionServer(t, func(w http.ResponseWriter, req chatRequest) {
		<-block
	})
	defer func() { close(block); srv.Close() }()

	client := NewOpenAIClient(Config{APIKey: "test-key", BaseURL: srv.URL + "/v1", Model: "gpt-4o-mini", MaxTokens: 64})

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Complete(ctx, "the prompt")
	if !errors.Is(err, apperrors.ErrCompletionFailed) {
		t.Fatalf("expected ErrCompletionFailed on deadline, got %v", err)
	}
}
