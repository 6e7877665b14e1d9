// Package openai adapts the chat-completion API as the diary
// transformation service.
package openai

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	gopenai "github.com/sashabaranov/go-openai"

	"github.com/mirrornote/backend/internal/config"
)

// Client issues chat-completion calls for diary transformation.
type Client struct {
	api   *gopenai.Client
	model string
	log   *slog.Logger
}

// NewClient creates a Client from configuration. BaseURL is overridable for
// testing and proxies.
func NewClient(cfg config.OpenAIConfig, logger *slog.Logger) *Client {
	clientCfg := gopenai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = cfg.BaseURL
	}
	clientCfg.HTTPClient = &http.Client{Timeout: cfg.Timeout}

	return &Client{
		api:   gopenai.NewClientWithConfig(clientCfg),
		model: cfg.Model,
		log:   logger.With("adapter", "openai"),
	}
}

// Complete sends one chat-completion request and returns the reply text.
// A 200 response without usable choices returns an empty reply with a nil
// error; only transport/API failures return an error.
func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	c.log.DebugContext(ctx, "chat completion request",
		slog.String("model", c.model),
		slog.Int("prompt_chars", len([]rune(prompt))),
	)

	resp, err := c.api.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: c.model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		c.log.ErrorContext(ctx, "chat completion failed", slog.String("error", err.Error()))
		return "", fmt.Errorf("openai: chat completion: %w", err)
	}

	if len(resp.Choices) == 0 {
		c.log.WarnContext(ctx, "chat completion returned no choices")
		return "", nil
	}

	return resp.Choices[0].Message.Content, nil
}
