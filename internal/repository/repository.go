package repository

import (
	"context"
	"errors"

	"github.com/jmoiron/sqlx"

	"imagestorebot/internal/models"
)

// ErrPhotoNotFound is returned when no approved photo matches a lookup.
var ErrPhotoNotFound = errors.New("photo not found")

// PhotoRepository is the photo ledger. Updates and deletes that match nothing
// succeed silently; only storage failures are returned.
type PhotoRepository interface {
	Create(ctx context.Context, ownerID int64, fileReference string) (int64, error)
	TagLatest(ctx context.Context, ownerID int64, tag string) error
	GetApprovedByTag(ctx context.Context, ownerID int64, tag string) (*models.Photo, error)
	ListPending(ctx context.Context) ([]models.Photo, error)
	Approve(ctx context.Context, fileReference string) error
	Reject(ctx context.Context, fileReference string) error
}

type StatsRepository interface {
	Counts(ctx context.Context) (models.Stats, error)
}

type Repository struct {
	Photo PhotoRepository
	Stats StatsRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Photo: NewPhotoRepository(db),
		Stats: NewStatsRepository(db),
	}
}
