package service

import (
	"go.uber.org/zap"

	"imagestorebot/internal/repository"
	"imagestorebot/internal/storage"
)

type Service struct {
	Photo  PhotoService
	Review ReviewService
	Stats  StatsService
}

func NewService(rep *repository.Repository, storage storage.Storage, files FileSource, log *zap.Logger) *Service {
	return &Service{
		Photo:  NewPhotoService(rep.Photo, log),
		Review: NewReviewService(rep.Photo, storage, files, log),
		Stats:  NewStatsService(rep.Stats),
	}
}
