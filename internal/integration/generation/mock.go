package generation

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/entity"
)

// MockConnector returns a canned structured answer so the pipeline can run
// without a live model.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, profile entity.ModelProfile, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating answer", zap.String("model", profile.Model))

	return `{"answer": "This is a mock answer produced without a model.", "segment_ids": []}`, nil
}
