package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"

	"coursepulse/internal/pkg/apperrors"
)

// defaultTimeout bounds a completion call when the caller set no deadline.
const defaultTimeout = 60 * time.Second

// Completer issues one blocking completion request for an assembled prompt.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Config holds the three completion knobs plus credentials.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int
	Temperature float32
}

// OpenAIClient calls the hosted chat-completion endpoint with a fixed
// model, token ceiling, and near-deterministic temperature.
type OpenAIClient struct {
	client      *openai.Client
	model       string
	maxTokens   int
	temperature float32
}

// NewOpenAIClient creates a completion client from config
func NewOpenAIClient(cfg Config) *OpenAIClient {
	clientConfig := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientConfig.BaseURL = cfg.BaseURL
	}

	return &OpenAIClient{
		client:      openai.NewClientWithConfig(clientConfig),
		model:       cfg.Model,
		maxTokens:   cfg.MaxTokens,
		temperature: cfg.Temperature,
	}
}

// Complete sends the prompt as a single user-role message and returns the
// trimmed text of the first choice. Any provider-side failure comes back
// wrapped in apperrors.ErrCompletionFailed so callers can decide whether
// to surface or absorb it.
func (c *OpenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	if _, hasDeadline := ctx.Deadline(); !hasDeadline {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, defaultTimeout)
		defer cancel()
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: c.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		MaxTokens:   c.maxTokens,
		Temperature: c.temperature,
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrCompletionFailed, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: empty choice list", apperrors.ErrCompletionFailed)
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
