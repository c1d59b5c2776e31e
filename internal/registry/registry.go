// Package registry maps model identifiers to their invocation profiles.
//
// The registry is an explicit value built at process start and passed into the
// answer pipeline; nothing resolves models through package state. Profile
// parameters are a behavioral contract per model and are reproduced exactly.
package registry

import (
	"fmt"
	"sort"

	"docqa-backend/internal/entity"
)

// FallbackAnswer is the canonical answer returned whenever the context is
// insufficient or the model's output cannot be trusted.
const FallbackAnswer = "Information not found in the documents"

const systemPrompt = "You answer questions strictly from the context the user provides. " +
	"Never use outside knowledge. If the context does not contain the answer, " +
	"reply with exactly: " + FallbackAnswer

// Registry resolves model identifiers to invocation profiles.
type Registry struct {
	profiles map[string]entity.ModelProfile
}

// Default is the fixed model catalog. qwen1 is too small to emit reliable
// structured output, so it does not participate in segment attribution.
func Default() *Registry {
	return New([]entity.ModelProfile{
		{
			ID:                  "qwen7",
			Model:               "qwen2.5:7b",
			Temperature:         0,
			TopP:                0.8,
			NumCtx:              2048,
			NumPredict:          128,
			SystemPrompt:        systemPrompt,
			SupportsAttribution: true,
		},
		{
			ID:                  "llama",
			Model:               "llama3",
			Temperature:         0,
			TopP:                0.85,
			NumCtx:              4096,
			NumPredict:          256,
			SystemPrompt:        systemPrompt,
			SupportsAttribution: true,
		},
		{
			ID:                  "qwen1",
			Model:               "qwen2.5:1.5b",
			Temperature:         0,
			TopP:                0.9,
			NumCtx:              1024,
			NumPredict:          128,
			SystemPrompt:        systemPrompt,
			SupportsAttribution: false,
		},
		{
			ID:                  "gemma2",
			Model:               "gemma2:2b",
			Temperature:         0.1,
			TopP:                0.95,
			NumCtx:              4096,
			NumPredict:          512,
			SystemPrompt:        systemPrompt,
			SupportsAttribution: true,
		},
	})
}

func New(profiles []entity.ModelProfile) *Registry {
	m := make(map[string]entity.ModelProfile, len(profiles))
	for _, p := range profiles {
		m[p.ID] = p
	}
	return &Registry{profiles: m}
}

// Resolve returns the profile for id. Unknown identifiers are fatal to the
// question; no fallback model is substituted.
func (r *Registry) Resolve(id string) (entity.ModelProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return entity.ModelProfile{}, fmt.Errorf("%w: %q", entity.ErrUnsupportedModel, id)
	}
	return profile, nil
}

// IDs returns the known model identifiers in stable order.
func (r *Registry) IDs() []string {
	ids := make([]string, 0, len(r.profiles))
	for id := range r.profiles {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
