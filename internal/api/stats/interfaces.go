package stats

import (
	"context"

	"docqa-backend/internal/entity"
)

type StatsUsecase interface {
	ListModelStats(ctx context.Context) ([]*entity.ModelStats, error)
}
