package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"imagestorebot/internal/models"
)

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) Counts(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	err := r.db.GetContext(ctx, &stats, `
			SELECT
				COALESCE(SUM(CASE WHEN reviewed = 0 THEN 1 ELSE 0 END), 0) AS pending,
				COALESCE(SUM(CASE WHEN reviewed = 1 THEN 1 ELSE 0 END), 0) AS approved
			FROM photos
		`)

	if err != nil {
		return models.Stats{}, fmt.Errorf("error counting photos: %w", err)
	}

	return stats, nil
}
