package openai

import (
	"context"
	"fmt"
	"strings"
	"time"

	openai "github.com/sashabaranov/go-openai"
	"github.com/user/idea-validator/internal/repository"
)

// GeneratorImpl implements GenerationRepository on top of an
// OpenAI-compatible chat-completions endpoint.
type GeneratorImpl struct {
	client  *openai.Client
	model   string
	timeout time.Duration
}

// NewGenerator creates a generator client. baseURL may be empty to use
// the provider default, which allows pointing at any compatible server.
func NewGenerator(apiKey, baseURL, model string, timeout time.Duration) *GeneratorImpl {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &GeneratorImpl{
		client:  openai.NewClientWithConfig(cfg),
		model:   model,
		timeout: timeout,
	}
}

// Generate sends a single-turn completion request and returns the raw
// model text. Any provider failure or empty response is reported as
// ErrUpstreamGeneration.
func (g *GeneratorImpl) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: g.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %v", repository.ErrUpstreamGeneration, err)
	}

	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: provider returned no choices", repository.ErrUpstreamGeneration)
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	if content == "" {
		return "", fmt.Errorf("%w: provider returned empty content", repository.ErrUpstreamGeneration)
	}

	return content, nil
}
