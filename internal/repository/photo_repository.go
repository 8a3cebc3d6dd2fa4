package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"imagestorebot/internal/models"
)

type PhotoRepositoryImpl struct {
	DB *sqlx.DB
}

func NewPhotoRepository(db *sqlx.DB) *PhotoRepositoryImpl {
	return &PhotoRepositoryImpl{DB: db}
}

func (r *PhotoRepositoryImpl) Create(ctx context.Context, ownerID int64, fileReference string) (int64, error) {
	query := r.DB.Rebind(`
		INSERT INTO photos (owner_id, file_reference, tag, reviewed)
		VALUES (?, ?, NULL, 0)
		RETURNING id
	`)

	var id int64
	err := r.DB.GetContext(ctx, &id, query, ownerID, fileReference)
	if err != nil {
		return 0, fmt.Errorf("error creating photo: %w", err)
	}

	return id, nil
}

// TagLatest tags the owner's newest untagged photo. Having no untagged photo is not an error.
func (r *PhotoRepositoryImpl) TagLatest(ctx context.Context, ownerID int64, tag string) error {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting tag transaction: %w", err)
	}
	defer tx.Rollback()

	var photoID int64
	err = tx.GetContext(ctx, &photoID, tx.Rebind(`
		SELECT id FROM photos
		WHERE owner_id = ? AND tag IS NULL
		ORDER BY id DESC
		LIMIT 1
	`), ownerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil
		}
		return fmt.Errorf("error finding untagged photo: %w", err)
	}

	_, err = tx.ExecContext(ctx, tx.Rebind(`UPDATE photos SET tag = ? WHERE id = ?`), tag, photoID)
	if err != nil {
		return fmt.Errorf("error tagging photo: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("error committing tag: %w", err)
	}

	return nil
}

// GetApprovedByTag returns the oldest approved photo with an exact tag match.
func (r *PhotoRepositoryImpl) GetApprovedByTag(ctx context.Context, ownerID int64, tag string) (*models.Photo, error) {
	query := r.DB.Rebind(`
		SELECT id, owner_id, file_reference, tag, reviewed FROM photos
		WHERE owner_id = ? AND tag = ? AND reviewed = 1
		ORDER BY id
		LIMIT 1
	`)

	var photo models.Photo
	err := r.DB.GetContext(ctx, &photo, query, ownerID, tag)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrPhotoNotFound
		}
		return nil, fmt.Errorf("error getting photo by tag: %w", err)
	}

	return &photo, nil
}

func (r *PhotoRepositoryImpl) ListPending(ctx context.Context) ([]models.Photo, error) {
	query := `SELECT id, owner_id, file_reference, tag, reviewed FROM photos WHERE reviewed = 0 ORDER BY id`

	var photos []models.Photo
	err := r.DB.SelectContext(ctx, &photos, query)
	if err != nil {
		return nil, fmt.Errorf("error listing pending photos: %w", err)
	}

	return photos, nil
}

// Approve marks every photo with the file reference as approved.
func (r *PhotoRepositoryImpl) Approve(ctx context.Context, fileReference string) error {
	query := r.DB.Rebind(`UPDATE photos SET reviewed = 1 WHERE file_reference = ?`)

	_, err := r.DB.ExecContext(ctx, query, fileReference)
	if err != nil {
		return fmt.Errorf("error approving photo: %w", err)
	}

	return nil
}

// Reject deletes every photo with the file reference.
func (r *PhotoRepositoryImpl) Reject(ctx context.Context, fileReference string) error {
	query := r.DB.Rebind(`DELETE FROM photos WHERE file_reference = ?`)

	_, err := r.DB.ExecContext(ctx, query, fileReference)
	if err != nil {
		return fmt.Errorf("error rejecting photo: %w", err)
	}

	return nil
}
