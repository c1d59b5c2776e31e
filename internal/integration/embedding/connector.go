package embedding

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/config"
	"docqa-backend/internal/entity"
	"docqa-backend/internal/integration/common"
	pkghttp "docqa-backend/pkg/http"
)

type Connector struct {
	config    config.EmbeddingConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.EmbeddingConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Embed turns text into a raw (unnormalized) vector via the embedding service.
func (c *Connector) Embed(ctx context.Context, text string) ([]float64, error) {
	ctxzap.Debug(ctx, "embedding text", zap.Int("text_length", len(text)))

	req := &entity.EmbedRequest{
		Model:  c.config.Model,
		Prompt: text,
	}

	var resp entity.EmbedResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.EmbedEndpoint, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrEmbeddingUnavailable, err)
	}

	if len(resp.Embedding) != c.config.Dimension {
		return nil, fmt.Errorf("%w: expected %d dimensions, got %d",
			entity.ErrEmbeddingUnavailable, c.config.Dimension, len(resp.Embedding))
	}

	return resp.Embedding, nil
}
