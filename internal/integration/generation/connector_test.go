package generation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"docqa-backend/internal/config"
	"docqa-backend/internal/entity"
)

func newTestConnector(t *testing.T, handler http.HandlerFunc) *Connector {
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := config.GenerationConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           5 * time.Second,
			KeepAlive:             5 * time.Second,
			IdleConnTimeout:       5 * time.Second,
			ResponseHeaderTimeout: 5 * time.Second,
			Url:                   srv.URL,
		},
		GenerateEndpoint: "/api/generate",
	}

	return NewConnector(cfg, zap.NewNop())
}

func testProfile() entity.ModelProfile {
	return entity.ModelProfile{ID: "qwen7", Model: "qwen2.5:7b"}
}

func TestGenerateReturnsCompletion(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/generate", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": "The answer.", "done": true}`))
	})

	out, err := c.Generate(context.Background(), testProfile(), "prompt")
	require.NoError(t, err)
	assert.Equal(t, "The answer.", out)
}

func TestGenerateEmptyCompletionIsNotAnError(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response": "", "done": true}`))
	})

	// A model declining to answer is an expected condition; the caller maps
	// the empty completion to the fallback answer.
	out, err := c.Generate(context.Background(), testProfile(), "prompt")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestGenerateServerErrorWrapsGenerationFailed(t *testing.T) {
	c := newTestConnector(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusInternalServerError)
	})

	_, err := c.Generate(context.Background(), testProfile(), "prompt")
	assert.ErrorIs(t, err, entity.ErrGenerationFailed)
}
