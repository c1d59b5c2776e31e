package stats

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"docqa-backend/internal/entity"
	"docqa-backend/internal/registry"
	"docqa-backend/internal/repository"
)

// StatsUsecase reports per-model usage counters
type StatsUsecase struct {
	statsRepo repository.StatsRepository
	registry  *registry.Registry
	logger    *zap.Logger
}

// NewUsecase creates a new stats use case
func NewUsecase(statsRepo repository.StatsRepository, registry *registry.Registry, logger *zap.Logger) *StatsUsecase {
	return &StatsUsecase{
		statsRepo: statsRepo,
		registry:  registry,
		logger:    logger,
	}
}

// ListModelStats returns usage counts for every known model, including those
// never used, so the catalog is always visible in one call.
func (uc *StatsUsecase) ListModelStats(ctx context.Context) ([]*entity.ModelStats, error) {
	stats, err := uc.statsRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list model stats: %w", err)
	}

	used := make(map[string]bool, len(stats))
	for _, s := range stats {
		used[s.ModelName] = true
	}

	for _, id := range uc.registry.IDs() {
		if !used[id] {
			stats = append(stats, &entity.ModelStats{ModelName: id, Usage: 0})
		}
	}

	return stats, nil
}
