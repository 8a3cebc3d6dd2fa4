package service

import (
	"context"

	"imagestorebot/internal/models"
	"imagestorebot/internal/repository"
)

type StatsService interface {
	Counts(ctx context.Context) (models.Stats, error)
}

type statsService struct {
	statsRepo repository.StatsRepository
}

func NewStatsService(statsRepo repository.StatsRepository) StatsService {
	return &statsService{statsRepo: statsRepo}
}

func (s *statsService) Counts(ctx context.Context) (models.Stats, error) {
	stats, err := s.statsRepo.Counts(ctx)
	if err != nil {
		return models.Stats{}, err
	}

	return stats, nil
}
