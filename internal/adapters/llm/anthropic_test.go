package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pakawat-Dev/IEC-62304-Auditor-Agent/internal/domain/ports"
)

func respondWith(t *testing.T, w http.ResponseWriter, text string) {
	t.Helper()
	resp := map[string]any{
		"id":      "msg_test",
		"type":    "message",
		"role":    "assistant",
		"content": []map[string]string{{"type": "text", "text": text}},
		"usage":   map[string]int{"input_tokens": 12, "output_tokens": 7},
	}
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(resp))
}

func newTestAdapter(url string) *AnthropicAdapter {
	return NewAnthropicAdapter(Config{
		APIKey:  "test-key",
		BaseURL: url,
		Model:   "claude-test",
		Timeout: 5 * time.Second,
	})
}

func TestAnthropicAdapter_Complete(t *testing.T) {
	var gotReq messagesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		assert.Equal(t, anthropicVersion, r.Header.Get("anthropic-version"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		respondWith(t, w, "  Safety Class B  ")
	}))
	defer srv.Close()

	adapter := newTestAdapter(srv.URL)
	completion, err := adapter.Complete(context.Background(), "you are an auditor", []ports.ChatTurn{
		{Role: "user", Content: "audit this"},
		{Role: "assistant", Content: "prior reply"},
	})
	require.NoError(t, err)

	assert.Equal(t, "Safety Class B", completion.Text)
	assert.Equal(t, 12, completion.Usage.InputTokens)
	assert.Equal(t, 7, completion.Usage.OutputTokens)

	assert.Equal(t, "claude-test", gotReq.Model)
	assert.Equal(t, "you are an auditor", gotReq.System)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
	assert.Equal(t, "assistant", gotReq.Messages[1].Role)
}

func TestAnthropicAdapter_UnknownRolesBecomeUser(t *testing.T) {
	var gotReq messagesRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		respondWith(t, w, "ok")
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).Complete(context.Background(), "", []ports.ChatTurn{
		{Role: "system", Content: "odd role"},
	})
	require.NoError(t, err)
	assert.Equal(t, "user", gotReq.Messages[0].Role)
}

func TestAnthropicAdapter_RetriesRateLimit(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		respondWith(t, w, "recovered")
	}))
	defer srv.Close()

	completion, err := newTestAdapter(srv.URL).Complete(context.Background(), "", []ports.ChatTurn{
		{Role: "user", Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "recovered", completion.Text)
	assert.Equal(t, 2, calls)
}

func TestAnthropicAdapter_ClientErrorDoesNotRetry(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).Complete(context.Background(), "", []ports.ChatTurn{
		{Role: "user", Content: "hi"},
	})
	assert.ErrorContains(t, err, "status 400")
	assert.Equal(t, 1, calls)
}

func TestAnthropicAdapter_EmptyContent(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"msg","content":[],"usage":{"input_tokens":1,"output_tokens":0}}`))
	}))
	defer srv.Close()

	_, err := newTestAdapter(srv.URL).Complete(context.Background(), "", []ports.ChatTurn{
		{Role: "user", Content: "hi"},
	})
	assert.ErrorContains(t, err, "empty completion")
}

func TestAnthropicAdapter_MissingAPIKey(t *testing.T) {
	adapter := NewAnthropicAdapter(Config{})
	_, err := adapter.Complete(context.Background(), "", nil)
	assert.ErrorContains(t, err, "API key not configured")
}

func TestAnthropicAdapter_Defaults(t *testing.T) {
	adapter := NewAnthropicAdapter(Config{APIKey: "k"})
	assert.Equal(t, "claude-sonnet-4-20250514", adapter.Model())
	assert.Equal(t, "https://api.anthropic.com/v1", adapter.baseURL)
	assert.Equal(t, 4096, adapter.maxTokens)
}
