package repository

import (
	"context"
	"time"

	"github.com/business-directory-api/internal/database"
	"github.com/business-directory-api/internal/models"
)

// galleryRepo is the concrete implementation of GalleryRepository
type galleryRepo struct {
	db *database.DB
}

// NewGalleryRepo creates a new gallery repository
func NewGalleryRepo(db *database.DB) GalleryRepository {
	return &galleryRepo{db: db}
}

// Create inserts a new gallery item
func (r *galleryRepo) Create(ctx context.Context, item *models.GalleryItem) error {
	query := `
		INSERT INTO profile_gallery (id, profile_id, image_url, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query,
		item.ID, item.ProfileID, item.ImageURL, time.Now(),
	)
	return err
}

// CountByProfile returns the number of gallery items linked to a profile
func (r *galleryRepo) CountByProfile(ctx context.Context, profileID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM profile_gallery WHERE profile_id = $1", profileID,
	).Scan(&count)
	return count, err
}

// Count returns the total number of gallery items
func (r *galleryRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profile_gallery").Scan(&count)
	return count, err
}
