// Package llm provides the Anthropic Messages API adapter.
// Clean Architecture: Adapter implementing ports.CompletionService.
package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/entities"
	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/ports"
)

const anthropicVersion = "2023-06-01"

// AnthropicAdapter implements ports.CompletionService against the Messages API.
type AnthropicAdapter struct {
	apiKey     string
	baseURL    string
	model      string
	maxTokens  int
	maxRetries int
	client     *http.Client
}

// Config holds the Anthropic client settings.
type Config struct {
	APIKey    string
	BaseURL   string
	Model     string
	MaxTokens int
	Timeout   time.Duration
}

// NewAnthropicAdapter creates an adapter, applying defaults for zero fields.
func NewAnthropicAdapter(cfg Config) *AnthropicAdapter {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com/v1"
	}
	if cfg.Model == "" {
		cfg.Model = "claude-sonnet-4-20250514"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 4096
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 120 * time.Second
	}
	return &AnthropicAdapter{
		apiKey:     cfg.APIKey,
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		model:      cfg.Model,
		maxTokens:  cfg.MaxTokens,
		maxRetries: 3,
		client:     &http.Client{Timeout: cfg.Timeout},
	}
}

// Model returns the model name the adapter sends.
func (a *AnthropicAdapter) Model() string {
	return a.model
}

// messagesRequest is the Messages API request body.
type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

// message is one conversation turn on the wire.
type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// messagesResponse is the Messages API response body.
type messagesResponse struct {
	ID      string `json:"id"`
	Type    string `json:"type"`
	Role    string `json:"role"`
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
	Usage      struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Complete sends the system prompt and conversation turns, returning the reply.
// Rate-limited and transient failures are retried with exponential backoff.
func (a *AnthropicAdapter) Complete(ctx context.Context, systemPrompt string, turns []ports.ChatTurn) (*ports.Completion, error) {
	if a.apiKey == "" {
		return nil, fmt.Errorf("anthropic: API key not configured")
	}

	msgs := make([]message, 0, len(turns))
	for _, t := range turns {
		role := t.Role
		if role != "assistant" {
			role = "user"
		}
		msgs = append(msgs, message{Role: role, Content: t.Content})
	}

	body, err := json.Marshal(messagesRequest{
		Model:     a.model,
		MaxTokens: a.maxTokens,
		System:    systemPrompt,
		Messages:  msgs,
	})
	if err != nil {
		return nil, fmt.Errorf("marshaling request: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= a.maxRetries; attempt++ {
		if attempt > 0 {
			if err := sleepCtx(ctx, time.Duration(1<<uint(attempt-1))*time.Second); err != nil {
				return nil, err
			}
		}

		completion, retryable, err := a.doRequest(ctx, body)
		if err == nil {
			return completion, nil
		}
		if !retryable {
			return nil, err
		}
		lastErr = err
	}
	return nil, fmt.Errorf("anthropic: max retries exceeded: %w", lastErr)
}

// doRequest performs one API call. The bool reports whether a retry may help.
func (a *AnthropicAdapter) doRequest(ctx context.Context, body []byte) (*ports.Completion, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, a.baseURL+"/messages", bytes.NewReader(body))
	if err != nil {
		return nil, false, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", a.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := a.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, fmt.Errorf("calling Anthropic: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, true, fmt.Errorf("reading response: %w", err)
	}

	switch {
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return nil, true, fmt.Errorf("anthropic returned status %d", resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, false, fmt.Errorf("anthropic returned status %d: %s", resp.StatusCode, string(respBody))
	}

	var mr messagesResponse
	if err := json.Unmarshal(respBody, &mr); err != nil {
		return nil, false, fmt.Errorf("decoding response: %w", err)
	}
	if mr.Error != nil {
		return nil, false, fmt.Errorf("anthropic API error: %s", mr.Error.Message)
	}
	if len(mr.Content) == 0 {
		return nil, false, fmt.Errorf("anthropic: empty completion")
	}

	var text strings.Builder
	for _, block := range mr.Content {
		if block.Type == "text" {
			text.WriteString(block.Text)
		}
	}

	return &ports.Completion{
		Text: strings.TrimSpace(text.String()),
		Usage: entities.TokenUsage{
			InputTokens:  mr.Usage.InputTokens,
			OutputTokens: mr.Usage.OutputTokens,
		},
	}, false, nil
}

// sleepCtx waits for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
