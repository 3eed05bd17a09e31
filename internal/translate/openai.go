// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	openai "github.com/sashabaranov/go-openai"
)

// defaultOpenAIBaseURL targets the OpenAI-compatible surface of a local
// Ollama instance.
const defaultOpenAIBaseURL = "http://localhost:11434/v1"

// OpenAIBackend translates through an OpenAI-compatible chat completions
// API. It covers hosted services as well as Ollama's compatibility layer.
type OpenAIBackend struct {
	client *openai.Client
	model  string
}

// NewOpenAIBackend builds a backend for the given base URL. The API key
// may be empty for local endpoints that skip authentication.
func NewOpenAIBackend(baseURL, apiKey, model string, httpClient *http.Client) *OpenAIBackend {
	config := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		config.BaseURL = baseURL
	} else {
		config.BaseURL = defaultOpenAIBaseURL
	}
	if httpClient != nil {
		config.HTTPClient = httpClient
	}
	return &OpenAIBackend{
		client: openai.NewClientWithConfig(config),
		model:  model,
	}
}

// Name returns the backend identifier.
func (b *OpenAIBackend) Name() string { return "openai" }

// Translate sends the abstract through the chat completions API and
// returns the cleaned Japanese translation.
func (b *OpenAIBackend) Translate(ctx context.Context, text string) (string, error) {
	prompt, err := renderPrompt(text)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	start := time.Now()
	resp, err := b.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: b.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
	})
	if err != nil {
		var apiErr *openai.APIError
		var reqErr *openai.RequestError
		if errors.As(err, &apiErr) || errors.As(err, &reqErr) {
			return "", &Error{Kind: KindStatus, Backend: b.Name(), Err: err}
		}
		return "", &Error{Kind: KindConnectivity, Backend: b.Name(), Err: err}
	}

	slog.Default().Debug("openai translation finished",
		"model", b.model,
		"duration", time.Since(start),
	)

	if len(resp.Choices) == 0 {
		return "", &Error{Kind: KindParse, Backend: b.Name(), Err: fmt.Errorf("chat completion response has no choices")}
	}

	content := resp.Choices[0].Message.Content
	if content == "" {
		return noTranslation, nil
	}
	return cleanTranslation(content), nil
}
