package service

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/business-directory-api/internal/models"
	"github.com/business-directory-api/internal/repository"
	"github.com/rs/zerolog"
)

// exportService is the concrete implementation of ExportService
type exportService struct {
	repos *repository.Repositories
	log   zerolog.Logger
}

// newExportService creates a new ExportService
func newExportService(repos *repository.Repositories, log zerolog.Logger) *exportService {
	return &exportService{
		repos: repos,
		log:   log.With().Str("service", "export").Logger(),
	}
}

// StreamProfiles streams the business directory in the specified format
func (s *exportService) StreamProfiles(ctx context.Context, w http.ResponseWriter, format string) error {
	s.log.Info().Str("format", format).Msg("Starting profiles export")

	switch format {
	case "ndjson":
		return s.streamProfilesNDJSON(ctx, w)
	case "csv":
		return s.streamProfilesCSV(ctx, w)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// StreamProducts streams all products in the specified format
func (s *exportService) StreamProducts(ctx context.Context, w http.ResponseWriter, format string) error {
	s.log.Info().Str("format", format).Msg("Starting products export")

	switch format {
	case "ndjson":
		return s.streamProductsNDJSON(ctx, w)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func (s *exportService) streamProfilesNDJSON(ctx context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", "attachment; filename=profiles.ndjson")

	flusher, _ := w.(http.Flusher)
	count := 0

	err := s.repos.Profile.StreamAll(ctx, func(profile *models.Profile) error {
		data, err := json.Marshal(profile)
		if err != nil {
			return err
		}
		w.Write(data)
		w.Write([]byte("\n"))
		count++

		// Flush every 100 records for streaming
		if count%100 == 0 && flusher != nil {
			flusher.Flush()
		}
		return nil
	})

	s.log.Info().Int("count", count).Msg("Profiles export completed")
	return err
}

// streamProfilesCSV writes profiles in the same column order the bulk
// upload format uses, so an export can round-trip as a new import.
func (s *exportService) streamProfilesCSV(ctx context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=profiles.csv")

	writer := csv.NewWriter(w)
	defer writer.Flush()

	// Write header
	writer.Write([]string{
		"business_category", "display_name", "address", "business_location",
		"website_url", "phone_number", "email", "facebook",
	})

	return s.repos.Profile.StreamAll(ctx, func(profile *models.Profile) error {
		return writer.Write([]string{
			profile.Category,
			profile.DisplayName,
			profile.Address,
			profile.Location,
			profile.WebsiteURL,
			profile.PhoneNumber,
			profile.Email,
			profile.Facebook,
		})
	})
}

func (s *exportService) streamProductsNDJSON(ctx context.Context, w http.ResponseWriter) error {
	w.Header().Set("Content-Type", "application/x-ndjson")
	w.Header().Set("Content-Disposition", "attachment; filename=products.ndjson")

	flusher, _ := w.(http.Flusher)
	count := 0

	err := s.repos.Product.StreamAll(ctx, func(product *models.Product) error {
		data, err := json.Marshal(product)
		if err != nil {
			return err
		}
		w.Write(data)
		w.Write([]byte("\n"))
		count++

		if count%100 == 0 && flusher != nil {
			flusher.Flush()
		}
		return nil
	})

	s.log.Info().Int("count", count).Msg("Products export completed")
	return err
}

// GetCount returns count for a resource
func (s *exportService) GetCount(ctx context.Context, resource string) (int, error) {
	switch resource {
	case "profiles":
		return s.repos.Profile.Count(ctx)
	case "products":
		return s.repos.Product.Count(ctx)
	case "gallery":
		return s.repos.Gallery.Count(ctx)
	default:
		return 0, fmt.Errorf("unknown resource: %s", resource)
	}
}
