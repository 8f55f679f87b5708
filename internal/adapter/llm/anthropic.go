package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL   = "https://api.anthropic.com"
	anthropicVersion = "2023-06-01"
)

// ErrMissingAPIKey is returned when no credential was supplied
var ErrMissingAPIKey = errors.New("anthropic api key is not configured")

// Generator sends a single prompt to a text-generation service
type Generator interface {
	Generate(ctx context.Context, prompt string, maxTokens int) (string, error)
	Version() string
}

type messageParam struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesRequest struct {
	Model     string         `json:"model"`
	MaxTokens int            `json:"max_tokens"`
	Messages  []messageParam `json:"messages"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type messagesResponse struct {
	Content    []contentBlock `json:"content"`
	StopReason string         `json:"stop_reason"`
}

type errorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

// AnthropicClient calls the Anthropic Messages API
type AnthropicClient struct {
	BaseURL string
	APIKey  string
	Model   string
	Client  *http.Client
}

// NewAnthropicClient constructs a client. An empty baseURL uses the public endpoint.
func NewAnthropicClient(baseURL, apiKey, model string, timeout time.Duration) *AnthropicClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &AnthropicClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		Model:   model,
		Client: &http.Client{
			Timeout: timeout,
		},
	}
}

// Generate sends prompt as a single user message and returns the first text block
func (c *AnthropicClient) Generate(ctx context.Context, prompt string, maxTokens int) (string, error) {
	if c.APIKey == "" {
		return "", ErrMissingAPIKey
	}

	payload, err := json.Marshal(messagesRequest{
		Model:     c.Model,
		MaxTokens: maxTokens,
		Messages:  []messageParam{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal messages request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/messages", c.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create messages request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.APIKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := c.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call messages endpoint: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		var apiErr errorResponse
		if err := json.Unmarshal(body, &apiErr); err == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("messages endpoint returned %d (%s): %s", resp.StatusCode, apiErr.Error.Type, apiErr.Error.Message)
		}
		return "", fmt.Errorf("messages endpoint returned %d: %s", resp.StatusCode, string(body))
	}

	var msg messagesResponse
	if err := json.NewDecoder(resp.Body).Decode(&msg); err != nil {
		return "", fmt.Errorf("failed to decode messages response: %w", err)
	}

	for _, block := range msg.Content {
		if block.Type == "text" {
			return strings.TrimSpace(block.Text), nil
		}
	}
	return "", errors.New("messages response has no text content")
}

// Version returns the configured model name
func (c *AnthropicClient) Version() string {
	return c.Model
}

var _ Generator = (*AnthropicClient)(nil)
