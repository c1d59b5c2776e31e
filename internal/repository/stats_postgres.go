package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"docqa-backend/internal/entity"
)

// StatsRepository defines the interface for model usage accounting
type StatsRepository interface {
	Increment(ctx context.Context, modelName string) error
	List(ctx context.Context) ([]*entity.ModelStats, error)
}

var _ StatsRepository = &StatsPostgres{}

// StatsPostgres implements StatsRepository using PostgreSQL
type StatsPostgres struct {
	db *pgxpool.Pool
}

func NewStatsPostgres(db *pgxpool.Pool) *StatsPostgres {
	return &StatsPostgres{db: db}
}

func (r *StatsPostgres) Increment(ctx context.Context, modelName string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO model_stats (model_name, usage)
		VALUES ($1, 1)
		ON CONFLICT (model_name) DO UPDATE SET usage = model_stats.usage + 1`,
		modelName,
	)
	if err != nil {
		return fmt.Errorf("increment model usage: %w", err)
	}
	return nil
}

func (r *StatsPostgres) List(ctx context.Context) ([]*entity.ModelStats, error) {
	rows, err := r.db.Query(ctx, `
		SELECT model_name, usage
		FROM model_stats
		ORDER BY usage DESC, model_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("list model stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*entity.ModelStats, 0)
	for rows.Next() {
		var s entity.ModelStats
		if err := rows.Scan(&s.ModelName, &s.Usage); err != nil {
			return nil, fmt.Errorf("scan model stats: %w", err)
		}
		stats = append(stats, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate model stats: %w", err)
	}

	return stats, nil
}
