package stats

import (
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"

	"docqa-backend/internal/pkg/logger"
	"docqa-backend/internal/pkg/response"
)

type Handler struct {
	usecase StatsUsecase
}

func NewHandler(usecase StatsUsecase) *Handler {
	return &Handler{usecase: usecase}
}

// ListModelStats handles GET /api/v1/stats
func (h *Handler) ListModelStats(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListModelStats")

	stats, err := h.usecase.ListModelStats(ctx)
	if err != nil {
		ctxzap.Error(ctx, "list model stats", zap.Error(err))
		response.DomainError(w, err)
		return
	}

	response.Success(w, stats)
}
