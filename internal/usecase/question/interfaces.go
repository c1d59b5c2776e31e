package question

import (
	"context"

	"docqa-backend/internal/entity"
)

type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}

type Generator interface {
	Generate(ctx context.Context, profile entity.ModelProfile, prompt string) (string, error)
}
