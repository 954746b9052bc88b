// Package llm provides a pluggable interface to text-completion providers.
package llm

import (
	"context"
	"errors"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"consciousday/internal/config"
)

// Completer produces a text completion for a rendered prompt. Implementations
// make exactly one provider call per invocation and perform no retries.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// OpenAI calls an OpenAI-compatible chat-completion endpoint.
type OpenAI struct {
	client      openai.Client
	model       string
	temperature float64
}

// NewOpenAI builds a completer from the loaded config. BaseURL, when set,
// points the client at an alternate OpenAI-compatible endpoint.
func NewOpenAI(cfg config.Config) *OpenAI {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &OpenAI{
		client:      openai.NewClient(opts...),
		model:       cfg.Model,
		temperature: cfg.Temperature,
	}
}

// Complete sends the prompt as a single user message and returns the model's
// text reply.
func (o *OpenAI) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := o.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model:       openai.ChatModel(o.model),
		Temperature: openai.Float(o.temperature),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("empty completion response")
	}
	return resp.Choices[0].Message.Content, nil
}
