package summary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qepting91/usaidwat/internal/domain"
)

func newFakeAnthropic(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := anthropic.NewClient(
		anthropicopt.WithAPIKey("test-key"),
		anthropicopt.WithBaseURL(srv.URL),
		anthropicopt.WithMaxRetries(0),
	)
	return &AnthropicProvider{client: client, maxTokens: 64}
}

func TestAnthropicCompleteReturnsText(t *testing.T) {
	provider := newFakeAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "claude-3-5-haiku-latest", req["model"])

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":    "msg_01",
			"type":  "message",
			"role":  "assistant",
			"model": "claude-3-5-haiku-latest",
			"content": []map[string]any{
				{"type": "text", "text": "calm and curious"},
			},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 1, "output_tokens": 1},
		})
	})

	out, err := provider.Complete(context.Background(), "claude-3-5-haiku-latest", "prompt text")
	require.NoError(t, err)
	assert.Equal(t, "calm and curious", out)
}

func TestAnthropicCompleteServerError(t *testing.T) {
	provider := newFakeAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "api_error", "message": "boom"},
		})
	})

	_, err := provider.Complete(context.Background(), "claude-3-5-haiku-latest", "prompt")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindProvider))
}

func TestAnthropicCompleteRequestTooLarge(t *testing.T) {
	provider := newFakeAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusRequestEntityTooLarge)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"type":  "error",
			"error": map[string]any{"type": "request_too_large", "message": "request exceeds the maximum allowed size"},
		})
	})

	_, err := provider.Complete(context.Background(), "claude-3-5-haiku-latest", "prompt")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindPayloadTooLarge))
}

func TestAnthropicCompleteEmptyContent(t *testing.T) {
	provider := newFakeAnthropic(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":          "msg_01",
			"type":        "message",
			"role":        "assistant",
			"model":       "claude-3-5-haiku-latest",
			"content":     []any{},
			"stop_reason": "end_turn",
			"usage":       map[string]any{"input_tokens": 1, "output_tokens": 1},
		})
	})

	_, err := provider.Complete(context.Background(), "claude-3-5-haiku-latest", "prompt")
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindProvider))
}
