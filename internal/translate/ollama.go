// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package translate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

// defaultOllamaEndpoint is the generate API of a local Ollama instance.
const defaultOllamaEndpoint = "http://localhost:11434/api/generate"

// OllamaBackend translates through the native Ollama generate API.
type OllamaBackend struct {
	Endpoint string
	Model    string
	Client   *http.Client
}

// generateRequest is the request body for the Ollama generate API.
// Stream is always false: the full translation arrives in one response.
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse is the response body from the Ollama generate API.
type generateResponse struct {
	Response string `json:"response"`
	Done     bool   `json:"done"`
}

// Name returns the backend identifier.
func (b *OllamaBackend) Name() string { return "ollama" }

// Translate sends the abstract to the Ollama generate endpoint and
// returns the cleaned Japanese translation.
func (b *OllamaBackend) Translate(ctx context.Context, text string) (string, error) {
	prompt, err := renderPrompt(text)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}

	reqBody := generateRequest{
		Model:  b.Model,
		Prompt: prompt,
		Stream: false,
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("marshaling request: %w", err)
	}

	endpoint := b.Endpoint
	if endpoint == "" {
		endpoint = defaultOllamaEndpoint
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(bodyBytes))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{Kind: KindConnectivity, Backend: b.Name(), Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", &Error{Kind: KindStatus, Backend: b.Name(), Err: fmt.Errorf("ollama API returned %d: %s", resp.StatusCode, string(body))}
	}

	var gResp generateResponse
	if err := json.NewDecoder(resp.Body).Decode(&gResp); err != nil {
		return "", &Error{Kind: KindParse, Backend: b.Name(), Err: fmt.Errorf("decoding ollama response: %w", err)}
	}

	slog.Default().Debug("ollama translation finished",
		"model", b.Model,
		"duration", time.Since(start),
	)

	if gResp.Response == "" {
		return noTranslation, nil
	}
	return cleanTranslation(gResp.Response), nil
}
