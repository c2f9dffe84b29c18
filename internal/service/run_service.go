package service

import (
	"context"

	"github.com/business-directory-api/internal/models"
	"github.com/business-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

// runService is the concrete implementation of RunService
type runService struct {
	runRepo repository.RunRepository
	log     zerolog.Logger
}

// newRunService creates a new RunService
func newRunService(runRepo repository.RunRepository, log zerolog.Logger) *runService {
	return &runService{
		runRepo: runRepo,
		log:     log.With().Str("service", "run").Logger(),
	}
}

// GetRun retrieves an import run by ID
func (s *runService) GetRun(ctx context.Context, id string) (*models.ImportRun, error) {
	return s.runRepo.GetByID(ctx, id)
}

// GetRunErrors retrieves all row errors for an import run
func (s *runService) GetRunErrors(ctx context.Context, id string) ([]models.RowError, error) {
	return s.runRepo.GetErrors(ctx, id, 0)
}
