package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"imagestorebot/internal/models"
	"imagestorebot/internal/repository"
)

type PhotoService interface {
	Submit(ctx context.Context, ownerID int64, fileReference string) (int64, error)
	Tag(ctx context.Context, ownerID int64, tag string) error
	Get(ctx context.Context, ownerID int64, tag string) (*models.Photo, error)
}

type photoService struct {
	photoRepo repository.PhotoRepository
	locks     *ownerLocks
	log       *zap.Logger
}

func NewPhotoService(photoRepo repository.PhotoRepository, log *zap.Logger) PhotoService {
	return &photoService{
		photoRepo: photoRepo,
		locks:     newOwnerLocks(),
		log:       log,
	}
}

func (s *photoService) Submit(ctx context.Context, ownerID int64, fileReference string) (int64, error) {
	id, err := s.photoRepo.Create(ctx, ownerID, fileReference)
	if err != nil {
		return 0, err
	}

	photosSubmittedTotal.Inc()
	s.log.Info("photo submitted",
		zap.Int64("photo_id", id),
		zap.Int64("owner_id", ownerID),
	)

	return id, nil
}

// Tag serializes tag requests per owner so concurrent uploads and tags from
// the same user cannot tag the wrong photo.
func (s *photoService) Tag(ctx context.Context, ownerID int64, tag string) error {
	unlock := s.locks.Lock(ownerID)
	defer unlock()

	if err := s.photoRepo.TagLatest(ctx, ownerID, tag); err != nil {
		return err
	}

	photosTaggedTotal.Inc()
	return nil
}

// Get returns repository.ErrPhotoNotFound when nothing approved matches.
func (s *photoService) Get(ctx context.Context, ownerID int64, tag string) (*models.Photo, error) {
	photo, err := s.photoRepo.GetApprovedByTag(ctx, ownerID, tag)
	if err != nil {
		if errors.Is(err, repository.ErrPhotoNotFound) {
			photoLookupsTotal.WithLabelValues("not_found").Inc()
		}
		return nil, err
	}

	photoLookupsTotal.WithLabelValues("found").Inc()
	return photo, nil
}
