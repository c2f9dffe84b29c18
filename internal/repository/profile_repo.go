package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/business-directory-api/internal/database"
	"github.com/business-directory-api/internal/models"
)

// profileRepo is the concrete implementation of ProfileRepository
type profileRepo struct {
	db *database.DB
}

// NewProfileRepo creates a new profile repository
func NewProfileRepo(db *database.DB) ProfileRepository {
	return &profileRepo{db: db}
}

// Create inserts a new profile. The slug column carries a unique
// constraint, so a duplicate business name surfaces here as an error.
func (r *profileRepo) Create(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (id, slug, display_name, category, address, location,
			website_url, phone_number, email, facebook, rating, tier, account_id,
			created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	now := time.Now()
	var accountID interface{}
	if profile.AccountID != "" {
		accountID = profile.AccountID
	}
	_, err := r.db.ExecContext(ctx, query,
		profile.ID, profile.Slug, profile.DisplayName, profile.Category,
		profile.Address, profile.Location, profile.WebsiteURL, profile.PhoneNumber,
		profile.Email, profile.Facebook, profile.Rating, profile.Tier, accountID,
		now, now,
	)
	return err
}

// GetByID retrieves a profile by ID
func (r *profileRepo) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	query := `
		SELECT id, slug, display_name, category, address, location, website_url,
			phone_number, email, facebook, rating, tier, COALESCE(account_id::text, ''),
			created_at, updated_at
		FROM profiles WHERE id = $1
	`
	var profile models.Profile
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&profile.ID, &profile.Slug, &profile.DisplayName, &profile.Category,
		&profile.Address, &profile.Location, &profile.WebsiteURL, &profile.PhoneNumber,
		&profile.Email, &profile.Facebook, &profile.Rating, &profile.Tier,
		&profile.AccountID, &profile.CreatedAt, &profile.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &profile, nil
}

// SlugExists checks if a profile with the given slug exists
func (r *profileRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM profiles WHERE slug = $1)", slug).Scan(&exists)
	return exists, err
}

// Count returns the total number of profiles
func (r *profileRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM profiles").Scan(&count)
	return count, err
}

// StreamAll streams all profiles for export (memory efficient)
func (r *profileRepo) StreamAll(ctx context.Context, callback func(*models.Profile) error) error {
	query := `
		SELECT id, slug, display_name, category, address, location, website_url,
			phone_number, email, facebook, rating, tier, COALESCE(account_id::text, ''),
			created_at, updated_at
		FROM profiles ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var profile models.Profile
		err := rows.Scan(
			&profile.ID, &profile.Slug, &profile.DisplayName, &profile.Category,
			&profile.Address, &profile.Location, &profile.WebsiteURL, &profile.PhoneNumber,
			&profile.Email, &profile.Facebook, &profile.Rating, &profile.Tier,
			&profile.AccountID, &profile.CreatedAt, &profile.UpdatedAt,
		)
		if err != nil {
			return err
		}

		if err := callback(&profile); err != nil {
			return err
		}
	}

	return rows.Err()
}
