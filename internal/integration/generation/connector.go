package generation

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
	config    config.GenerationConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.GenerationConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Generate runs a single non-streaming completion with the profile's
// sampling parameters.
func (c *Connector) Generate(ctx context.Context, profile entity.ModelProfile, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating answer",
		zap.String("model", profile.Model),
		zap.Int("prompt_length", len(prompt)),
	)

	req := &entity.GenerateRequest{
		Model:  profile.Model,
		Prompt: prompt,
		System: profile.SystemPrompt,
		Stream: false,
		Options: entity.GenerateOptions{
			Temperature: profile.Temperature,
			TopP:        profile.TopP,
			NumCtx:      profile.NumCtx,
			NumPredict:  profile.NumPredict,
		},
	}

	var resp entity.GenerateResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, req, &resp)
	if err != nil {
		return "", fmt.Errorf("%w: %v", entity.ErrGenerationFailed, err)
	}

	// An empty completion is the model declining to answer, not a transport
	// failure; the caller maps it to the fallback answer.
	if resp.Response == "" {
		ctxzap.Warn(ctx, "empty model response", zap.String("model", profile.Model))
		return "", nil
	}

	ctxzap.Info(ctx, "answer generated",
		zap.String("model", profile.Model),
		zap.Int("response_length", len(resp.Response)),
	)

	return resp.Response, nil
}
