package repository

import (
	"context"

	"github.com/business-directory-api/internal/database"
	"github.com/business-directory-api/internal/models"
)

// ProfileRepository defines the interface for business profile data operations
type ProfileRepository interface {
	Create(ctx context.Context, profile *models.Profile) error
	GetByID(ctx context.Context, id string) (*models.Profile, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Profile) error) error
}

// ProductRepository defines the interface for product data operations
type ProductRepository interface {
	BatchInsert(ctx context.Context, products []*models.Product) (int, error)
	CountByProfile(ctx context.Context, profileID string) (int, error)
	Count(ctx context.Context) (int, error)
	StreamAll(ctx context.Context, callback func(*models.Product) error) error
}

// GalleryRepository defines the interface for gallery data operations
type GalleryRepository interface {
	Create(ctx context.Context, item *models.GalleryItem) error
	CountByProfile(ctx context.Context, profileID string) (int, error)
	Count(ctx context.Context) (int, error)
}

// RunRepository defines the interface for import run audit records
type RunRepository interface {
	Create(ctx context.Context, run *models.ImportRun) error
	GetByID(ctx context.Context, id string) (*models.ImportRun, error)
	AddErrors(ctx context.Context, runID string, errors []models.RowError) error
	GetErrors(ctx context.Context, runID string, limit int) ([]models.RowError, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Profile ProfileRepository
	Product ProductRepository
	Gallery GalleryRepository
	Run     RunRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Profile: NewProfileRepo(db),
		Product: NewProductRepo(db),
		Gallery: NewGalleryRepo(db),
		Run:     NewRunRepo(db),
	}
}
