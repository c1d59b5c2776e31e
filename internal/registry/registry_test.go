package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docqa-backend/internal/entity"
)

func TestResolveKnownProfiles(t *testing.T) {
	r := Default()

	qwen7, err := r.Resolve("qwen7")
	require.NoError(t, err)
	assert.Equal(t, "qwen2.5:7b", qwen7.Model)
	assert.Equal(t, 0.0, qwen7.Temperature)
	assert.Equal(t, 0.8, qwen7.TopP)
	assert.Equal(t, 2048, qwen7.NumCtx)
	assert.Equal(t, 128, qwen7.NumPredict)
	assert.True(t, qwen7.SupportsAttribution)

	llama, err := r.Resolve("llama")
	require.NoError(t, err)
	assert.Equal(t, "llama3", llama.Model)
	assert.Equal(t, 0.85, llama.TopP)
	assert.Equal(t, 4096, llama.NumCtx)
	assert.Equal(t, 256, llama.NumPredict)

	qwen1, err := r.Resolve("qwen1")
	require.NoError(t, err)
	assert.Equal(t, "qwen2.5:1.5b", qwen1.Model)
	assert.Equal(t, 1024, qwen1.NumCtx)
	assert.False(t, qwen1.SupportsAttribution)

	gemma2, err := r.Resolve("gemma2")
	require.NoError(t, err)
	assert.Equal(t, "gemma2:2b", gemma2.Model)
	assert.Equal(t, 0.1, gemma2.Temperature)
	assert.Equal(t, 0.95, gemma2.TopP)
	assert.Equal(t, 512, gemma2.NumPredict)
}

func TestResolveUnknownModel(t *testing.T) {
	r := Default()
	_, err := r.Resolve("gpt4")
	assert.ErrorIs(t, err, entity.ErrUnsupportedModel)
}

func TestSystemPromptNamesFallback(t *testing.T) {
	r := Default()
	for _, id := range r.IDs() {
		profile, err := r.Resolve(id)
		require.NoError(t, err)
		assert.Contains(t, profile.SystemPrompt, FallbackAnswer, id)
	}
}

func TestIDsStable(t *testing.T) {
	r := Default()
	assert.Equal(t, []string{"gemma2", "llama", "qwen1", "qwen7"}, r.IDs())
}
