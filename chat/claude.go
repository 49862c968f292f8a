package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/sony/gobreaker"

	"github.com/DCal661/league-of-misfits/model"
)

const AnthropicURL = "https://api.anthropic.com"

const systemPrompt = "You are a fantasy football league's chat assistant. " +
	"Keep replies short, a little cocky, and about the league."

// Claude replies using the Anthropic messages endpoint. A circuit
// breaker keeps a flapping upstream from hanging every chat request.
type Claude struct {
	url        string
	apiKey     string
	model      string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker
}

func NewClaude(apiKey string) (*Claude, error) {
	if apiKey == "" {
		return nil, errors.New("an API key must be provided")
	}
	return newClaude(AnthropicURL, apiKey), nil
}

func NewClaudeForTest(url string) *Claude {
	return newClaude(url, "test-key")
}

func newClaude(url, apiKey string) *Claude {
	return &Claude{
		url:    url,
		apiKey: apiKey,
		model:  "claude-3-5-haiku-latest",
		httpClient: &http.Client{
			Timeout: 1 * time.Minute,
		},
		breaker: gobreaker.NewCircuitBreaker(gobreaker.Settings{
			Name:    "anthropic",
			Timeout: 30 * time.Second,
			ReadyToTrip: func(counts gobreaker.Counts) bool {
				return counts.ConsecutiveFailures > 3
			},
		}),
	}
}

type claudeRequest struct {
	Model     string              `json:"model"`
	MaxTokens int                 `json:"max_tokens"`
	System    string              `json:"system,omitempty"`
	Messages  []model.ChatMessage `json:"messages"`
}

type claudeResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}

func (c *Claude) Reply(ctx context.Context, messages []model.ChatMessage) (string, error) {
	if len(messages) == 0 {
		return "", errors.New("no messages in conversation")
	}

	reply, err := c.breaker.Execute(func() (any, error) {
		return c.sendMessages(ctx, messages)
	})
	if err != nil {
		return "", fmt.Errorf("error getting chat completion: %w", err)
	}
	return reply.(string), nil
}

func (c *Claude) sendMessages(ctx context.Context, messages []model.ChatMessage) (string, error) {
	body, err := json.Marshal(claudeRequest{
		Model:     c.model,
		MaxTokens: 512,
		System:    systemPrompt,
		Messages:  messages,
	})
	if err != nil {
		return "", fmt.Errorf("error marshaling chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, fmt.Sprintf("%s/v1/messages", c.url), bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("error creating chat http request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error sending chat http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code from anthropic: %d", resp.StatusCode)
	}

	var parsed claudeResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("error parsing chat response: %w", err)
	}

	for _, block := range parsed.Content {
		if block.Type == "text" && block.Text != "" {
			return block.Text, nil
		}
	}
	return "", errors.New("chat response contained no text")
}
