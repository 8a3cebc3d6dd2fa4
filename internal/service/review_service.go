package service

import (
	"context"
	"io"
	"time"

	"go.uber.org/zap"

	"imagestorebot/internal/models"
	"imagestorebot/internal/repository"
	"imagestorebot/internal/storage"
)

const archiveTimeout = 30 * time.Second

// FileSource reads photo bytes back from the messaging platform.
type FileSource interface {
	OpenFile(ctx context.Context, fileReference string) (io.ReadCloser, int64, error)
}

type ReviewService interface {
	Pending(ctx context.Context) ([]models.Photo, error)
	Approve(ctx context.Context, fileReference string) error
	Reject(ctx context.Context, fileReference string) error
}

type reviewService struct {
	photoRepo repository.PhotoRepository
	storage   storage.Storage
	files     FileSource
	log       *zap.Logger
}

// NewReviewService archives approved photos when both storage and files are set.
func NewReviewService(photoRepo repository.PhotoRepository, storage storage.Storage, files FileSource, log *zap.Logger) ReviewService {
	return &reviewService{
		photoRepo: photoRepo,
		storage:   storage,
		files:     files,
		log:       log,
	}
}

func (s *reviewService) Pending(ctx context.Context) ([]models.Photo, error) {
	return s.photoRepo.ListPending(ctx)
}

func (s *reviewService) Approve(ctx context.Context, fileReference string) error {
	if err := s.photoRepo.Approve(ctx, fileReference); err != nil {
		return err
	}

	reviewDecisionsTotal.WithLabelValues("approved").Inc()
	s.log.Info("photo approved", zap.String("file_reference", fileReference))

	s.archive(ctx, fileReference)
	return nil
}

func (s *reviewService) Reject(ctx context.Context, fileReference string) error {
	if err := s.photoRepo.Reject(ctx, fileReference); err != nil {
		return err
	}

	reviewDecisionsTotal.WithLabelValues("rejected").Inc()
	s.log.Info("photo rejected", zap.String("file_reference", fileReference))

	return nil
}

// archive copies an approved photo to object storage. Failures are logged
// and never undo the approval.
func (s *reviewService) archive(ctx context.Context, fileReference string) {
	if s.storage == nil || s.files == nil {
		return
	}

	ctx, cancel := context.WithTimeout(ctx, archiveTimeout)
	defer cancel()

	file, size, err := s.files.OpenFile(ctx, fileReference)
	if err != nil {
		archiveFailuresTotal.Inc()
		s.log.Warn("could not download approved photo", zap.String("file_reference", fileReference), zap.Error(err))
		return
	}
	defer file.Close()

	name, err := s.storage.ArchivePhoto(ctx, fileReference, file, size)
	if err != nil {
		archiveFailuresTotal.Inc()
		s.log.Warn("could not archive approved photo", zap.String("file_reference", fileReference), zap.Error(err))
		return
	}

	s.log.Debug("approved photo archived", zap.String("file_reference", fileReference), zap.String("object", name))
}
