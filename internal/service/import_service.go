package service

import (
	"context"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/business-directory-api/internal/catalog"
	"github.com/business-directory-api/internal/config"
	"github.com/business-directory-api/internal/identity"
	"github.com/business-directory-api/internal/models"
	"github.com/business-directory-api/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// importService is the concrete implementation of ImportService
type importService struct {
	repos *repository.Repositories
	ident identity.Provider
	cfg   *config.Config
	log   zerolog.Logger

	// rng drives the per-profile gallery image pick. Seedable so tests
	// can assert distribution properties instead of a specific image.
	mu  sync.Mutex
	rng *rand.Rand
}

// newImportService creates a new ImportService
func newImportService(repos *repository.Repositories, ident identity.Provider, cfg *config.Config, log zerolog.Logger) *importService {
	return &importService{
		repos: repos,
		ident: ident,
		cfg:   cfg,
		log:   log.With().Str("service", "import").Logger(),
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRandSeed reseeds the gallery image picker
func (s *importService) SetRandSeed(seed int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rng = rand.New(rand.NewSource(seed))
}

func (s *importService) pickIndex(n int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(n)
}

// checkPreconditions rejects a manual-mode batch with the wrong image
// counts. The UI guards this too; the server re-validates regardless.
func checkPreconditions(batch *models.ImportBatch) error {
	if !models.ValidUploadModes[batch.Mode] {
		return fmt.Errorf("uploadMode must be one of: auto, manual")
	}
	if batch.Mode != models.UploadModeManual {
		return nil
	}
	if len(batch.ProductImages) != models.ManualProductImageCount {
		return fmt.Errorf("manual mode requires exactly %d product images, got %d",
			models.ManualProductImageCount, len(batch.ProductImages))
	}
	if len(batch.GalleryImages) < models.MinGalleryImages || len(batch.GalleryImages) > models.MaxGalleryImages {
		return fmt.Errorf("manual mode requires between %d and %d gallery images, got %d",
			models.MinGalleryImages, models.MaxGalleryImages, len(batch.GalleryImages))
	}
	return nil
}

// Preview computes the expected outcome of a batch without writing
// anything. Safe to call repeatedly for the same batch.
func (s *importService) Preview(ctx context.Context, batch *models.ImportBatch) (*models.PreviewResult, error) {
	if len(batch.Rows) == 0 {
		return nil, fmt.Errorf("batch has no valid rows")
	}
	if err := checkPreconditions(batch); err != nil {
		return nil, err
	}

	synth := catalog.NewSynthesizer(batch.Mode, batch.ProductImages)

	// One product set per distinct category, in order of first appearance,
	// each counting how many rows share it.
	var sets []models.CategoryProductSet
	index := make(map[string]int)
	for _, row := range batch.Rows {
		if i, ok := index[row.BusinessCategory]; ok {
			sets[i].Count++
			continue
		}
		index[row.BusinessCategory] = len(sets)
		sets = append(sets, models.CategoryProductSet{
			Category: row.BusinessCategory,
			Count:    1,
			Products: synth.Synthesize(row.BusinessCategory),
		})
	}

	preview := &models.PreviewResult{
		TotalCount:       len(batch.Rows),
		ExpectedProducts: len(batch.Rows) * catalog.TemplateProductCount,
		CategoryProducts: sets,
		Profiles:         batch.Rows,
		Warnings:         batch.Warnings,
	}

	s.log.Info().
		Int("rows", preview.TotalCount).
		Int("categories", len(sets)).
		Str("mode", string(batch.Mode)).
		Msg("Preview computed")

	return preview, nil
}

// Confirm executes the batch row by row. Each row runs auth, profile,
// products, gallery in order; a profile failure skips the rest of that
// row, anything else degrades to a row error and the batch continues.
func (s *importService) Confirm(ctx context.Context, batch *models.ImportBatch, tier models.Tier) (*models.ImportResult, error) {
	if len(batch.Rows) == 0 {
		return nil, fmt.Errorf("batch has no valid rows")
	}
	if !models.ValidTiers[tier] {
		return nil, fmt.Errorf("tier must be one of: free, premium, business")
	}
	if err := checkPreconditions(batch); err != nil {
		return nil, err
	}

	startTime := time.Now()
	synth := catalog.NewSynthesizer(batch.Mode, batch.ProductImages)
	productLimit := models.Clamp(catalog.TemplateProductCount, tier, models.ResourceProducts)

	result := &models.ImportResult{
		DefaultPassword: s.cfg.Auth.DefaultPassword,
	}

	for i := range batch.Rows {
		row := &batch.Rows[i]
		profile := models.ProfileFromRow(row, tier)

		// Auth failure does not block the profile; the business record
		// is still useful without a login.
		accountID, err := s.ident.CreateAccount(ctx, profile.Email, s.cfg.Auth.DefaultPassword)
		if err != nil {
			result.AuthFailed++
			result.Errors = append(result.Errors, models.RowError{
				Row: row.Line, Step: "auth", Reason: err.Error(),
			})
		} else {
			result.AuthCreated++
			profile.AccountID = accountID
		}

		// The profile is a hard prerequisite for its products and gallery
		profile.ID = uuid.New().String()
		if err := s.repos.Profile.Create(ctx, profile); err != nil {
			result.Errors = append(result.Errors, models.RowError{
				Row: row.Line, Step: "profile", Reason: err.Error(),
			})
			continue
		}
		result.ProfilesCreated++

		// Tier gating trims the synthesized set silently; the rows cut
		// off are expected, not errors.
		templates := synth.Synthesize(row.BusinessCategory)
		products := make([]*models.Product, 0, productLimit)
		for pos, tmpl := range templates[:productLimit] {
			products = append(products, &models.Product{
				ID:          uuid.New().String(),
				ProfileID:   profile.ID,
				Name:        tmpl.Name,
				Description: tmpl.Description,
				Details:     tmpl.Details,
				Price:       tmpl.Price,
				ImageURL:    tmpl.ImageURL,
				Position:    pos,
			})
		}
		inserted, err := s.repos.Product.BatchInsert(ctx, products)
		if err != nil {
			result.Errors = append(result.Errors, models.RowError{
				Row: row.Line, Step: "products", Reason: err.Error(),
			})
		} else {
			result.ProductsCreated += inserted
		}

		if created, err := s.createGallery(ctx, batch, profile.ID, tier); err != nil {
			result.Errors = append(result.Errors, models.RowError{
				Row: row.Line, Step: "gallery", Reason: err.Error(),
			})
		} else {
			result.GalleryCreated += created
		}
	}

	duration := time.Since(startTime)
	s.recordRun(ctx, batch, tier, result, len(batch.Rows), duration)

	s.log.Info().
		Int("rows", len(batch.Rows)).
		Int("profiles_created", result.ProfilesCreated).
		Int("products_created", result.ProductsCreated).
		Int("gallery_created", result.GalleryCreated).
		Int("auth_created", result.AuthCreated).
		Int("auth_failed", result.AuthFailed).
		Int("errors", len(result.Errors)).
		Int64("duration_ms", duration.Milliseconds()).
		Msg("Import confirmed")

	return result, nil
}

// createGallery gives the new profile one image drawn at random from
// the manual-mode pool. Auto mode has no user images, so nothing is
// created and that is not an error.
func (s *importService) createGallery(ctx context.Context, batch *models.ImportBatch, profileID string, tier models.Tier) (int, error) {
	if batch.Mode != models.UploadModeManual || len(batch.GalleryImages) == 0 {
		return 0, nil
	}
	if models.Clamp(1, tier, models.ResourceGallery) < 1 {
		return 0, nil
	}

	img := batch.GalleryImages[s.pickIndex(len(batch.GalleryImages))]
	item := &models.GalleryItem{
		ID:        uuid.New().String(),
		ProfileID: profileID,
		ImageURL:  img,
	}
	if err := s.repos.Gallery.Create(ctx, item); err != nil {
		return 0, err
	}
	return 1, nil
}

// recordRun persists the audit record for a confirmed batch. Failures
// here are logged, never surfaced: the import itself already happened.
func (s *importService) recordRun(ctx context.Context, batch *models.ImportBatch, tier models.Tier, result *models.ImportResult, totalRows int, duration time.Duration) {
	run := &models.ImportRun{
		ID:              uuid.New().String(),
		Mode:            batch.Mode,
		Tier:            tier,
		TotalRows:       totalRows,
		ProfilesCreated: result.ProfilesCreated,
		ProductsCreated: result.ProductsCreated,
		GalleryCreated:  result.GalleryCreated,
		AuthCreated:     result.AuthCreated,
		AuthFailed:      result.AuthFailed,
		ErrorCount:      len(result.Errors),
		DurationMs:      duration.Milliseconds(),
		CreatedAt:       time.Now(),
	}

	if err := s.repos.Run.Create(ctx, run); err != nil {
		s.log.Error().Err(err).Msg("Failed to record import run")
		return
	}
	if err := s.repos.Run.AddErrors(ctx, run.ID, result.Errors); err != nil {
		s.log.Error().Err(err).Str("run_id", run.ID).Msg("Failed to record run errors")
	}

	result.RunID = run.ID
}

// DefaultProducts returns the catalog template for a category, falling
// back to the generic placeholder set for unrecognized categories.
func (s *importService) DefaultProducts(category string) []models.ProductTemplate {
	products, _ := catalog.Lookup(category)
	return products
}
