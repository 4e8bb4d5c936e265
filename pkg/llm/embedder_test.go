package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/casemine/casemine/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func embedderFor(t *testing.T, handler http.HandlerFunc, dim int) *HTTPEmbedder {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	t.Setenv("TEST_EMBED_KEY", "sk-test")
	return NewHTTPEmbedder(&config.EmbeddingConfig{
		BaseURL:   srv.URL,
		APIKeyEnv: "TEST_EMBED_KEY",
		Model:     "test-model",
		Dimension: dim,
		Timeout:   5 * time.Second,
	})
}

func TestHTTPEmbedderEmbed(t *testing.T) {
	var gotAuth, gotPath string
	e := embedderFor(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path

		var req embedRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "test-model", req.Model)
		require.Len(t, req.Input, 1)

		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float32{0.1, 0.2, 0.3}, "index": 0}},
		})
	}, 3)

	vec, err := e.Embed(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []float32{0.1, 0.2, 0.3}, vec)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "/embeddings", gotPath)
	assert.Equal(t, 3, e.Dimension())
}

func TestHTTPEmbedderDimensionMismatch(t *testing.T) {
	e := embedderFor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float32{0.1, 0.2}, "index": 0}},
		})
	}, 3)

	_, err := e.Embed(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "dimension mismatch")
}

func TestHTTPEmbedderAPIError(t *testing.T) {
	e := embedderFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "bad key", "type": "invalid_request_error"},
		})
	}, 3)

	_, err := e.Embed(context.Background(), "hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad key")
}

func TestHTTPEmbedderEmptyData(t *testing.T) {
	e := embedderFor(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"data": []any{}})
	}, 3)

	_, err := e.Embed(context.Background(), "hello")
	require.Error(t, err)
}

func TestHTTPEmbedderUnreachable(t *testing.T) {
	e := NewHTTPEmbedder(&config.EmbeddingConfig{
		BaseURL:   "http://127.0.0.1:1",
		APIKeyEnv: "TEST_EMBED_KEY",
		Model:     "m",
		Dimension: 3,
		Timeout:   time.Second,
	})

	_, err := e.Embed(context.Background(), "hello")
	assert.ErrorIs(t, err, ErrUnavailable)
}
