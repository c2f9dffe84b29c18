package service

import (
	"context"
	"net/http"

	"github.com/business-directory-api/internal/config"
	"github.com/business-directory-api/internal/identity"
	"github.com/business-directory-api/internal/models"
	"github.com/business-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

// ImportService defines the two-phase bulk onboarding operations.
// Preview is read-only; Confirm performs the writes.
type ImportService interface {
	Preview(ctx context.Context, batch *models.ImportBatch) (*models.PreviewResult, error)
	Confirm(ctx context.Context, batch *models.ImportBatch, tier models.Tier) (*models.ImportResult, error)
	DefaultProducts(category string) []models.ProductTemplate
	SetRandSeed(seed int64)
}

// ExportService defines the interface for directory export operations
type ExportService interface {
	StreamProfiles(ctx context.Context, w http.ResponseWriter, format string) error
	StreamProducts(ctx context.Context, w http.ResponseWriter, format string) error
	GetCount(ctx context.Context, resource string) (int, error)
}

// RunService defines the interface for import run lookups
type RunService interface {
	GetRun(ctx context.Context, id string) (*models.ImportRun, error)
	GetRunErrors(ctx context.Context, id string) ([]models.RowError, error)
}

// Services holds all service interfaces
type Services struct {
	Import ImportService
	Export ExportService
	Run    RunService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, ident identity.Provider, cfg *config.Config, log zerolog.Logger) *Services {
	return &Services{
		Import: newImportService(repos, ident, cfg, log),
		Export: newExportService(repos, log),
		Run:    newRunService(repos.Run, log),
	}
}
