package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/sleepystudio/terminai/internal/domain"
	"github.com/sleepystudio/terminai/internal/ports"
)

// Client implements the CompletionClient port over the two fixed
// chat-completion endpoints. One request per call, bearer auth, no retries.
type Client struct {
	httpClient *http.Client
	endpoints  map[domain.Provider]string
}

// NewClient builds a client with a bounded request timeout.
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{Timeout: domain.DefaultRequestTimeout},
		endpoints:  defaultEndpoints(),
	}
}

func defaultEndpoints() map[domain.Provider]string {
	return map[domain.Provider]string{
		domain.ProviderXAI:        "https://api.x.ai/v1/chat/completions",
		domain.ProviderOpenRouter: "https://openrouter.ai/api/v1/chat/completions",
	}
}

// Complete implements ports.CompletionClient. The system message is inserted
// before the user message unconditionally; the remote model's behavior depends
// on that order.
func (c *Client) Complete(ctx context.Context, cfg domain.Config, systemPrompt, userPrompt string) (string, error) {
	endpoint, ok := c.endpoints[cfg.Provider]
	if !ok {
		return "", fmt.Errorf("%w: %q", domain.ErrProviderUnsupported, cfg.Provider)
	}

	payload := chatCompletionRequest{
		Model: cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: userPrompt},
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Authorization", "Bearer "+cfg.APIKey)
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("%s: %w", cfg.Provider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &domain.APIError{
			Provider:   cfg.Provider,
			StatusCode: resp.StatusCode,
			Status:     resp.Status,
		}
	}

	var decoded chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return "", fmt.Errorf("%s: decode response: %w", cfg.Provider, err)
	}
	if len(decoded.Choices) == 0 {
		return "", fmt.Errorf("%s: response carried no completion choices", cfg.Provider)
	}
	return decoded.FirstMessage(), nil
}

var _ ports.CompletionClient = (*Client)(nil)
