package mocks

import (
	"context"
	"fmt"

	"github.com/business-directory-api/internal/models"
	"github.com/business-directory-api/internal/repository"
)

// MockProfileRepository is a mock implementation of ProfileRepository
type MockProfileRepository struct {
	Profiles    map[string]*models.Profile
	SlugToID    map[string]string
	CreateError error
	// FailSlugs makes Create fail for specific slugs, so tests can
	// break an individual row inside a batch
	FailSlugs   map[string]bool
	CreateCalls int
}

var _ repository.ProfileRepository = (*MockProfileRepository)(nil)

func NewMockProfileRepository() *MockProfileRepository {
	return &MockProfileRepository{
		Profiles:  make(map[string]*models.Profile),
		SlugToID:  make(map[string]string),
		FailSlugs: make(map[string]bool),
	}
}

func (m *MockProfileRepository) Create(ctx context.Context, profile *models.Profile) error {
	m.CreateCalls++
	if m.CreateError != nil {
		return m.CreateError
	}
	if m.FailSlugs[profile.Slug] {
		return fmt.Errorf("insert failed for slug %s", profile.Slug)
	}
	if _, exists := m.SlugToID[profile.Slug]; exists {
		return fmt.Errorf("duplicate key value violates unique constraint \"profiles_slug_key\"")
	}
	m.Profiles[profile.ID] = profile
	m.SlugToID[profile.Slug] = profile.ID
	return nil
}

func (m *MockProfileRepository) GetByID(ctx context.Context, id string) (*models.Profile, error) {
	return m.Profiles[id], nil
}

func (m *MockProfileRepository) SlugExists(ctx context.Context, slug string) (bool, error) {
	_, exists := m.SlugToID[slug]
	return exists, nil
}

func (m *MockProfileRepository) Count(ctx context.Context) (int, error) {
	return len(m.Profiles), nil
}

func (m *MockProfileRepository) StreamAll(ctx context.Context, callback func(*models.Profile) error) error {
	for _, p := range m.Profiles {
		if err := callback(p); err != nil {
			return err
		}
	}
	return nil
}

// MockProductRepository is a mock implementation of ProductRepository
type MockProductRepository struct {
	Products    []*models.Product
	ByProfile   map[string][]*models.Product
	InsertError error
}

var _ repository.ProductRepository = (*MockProductRepository)(nil)

func NewMockProductRepository() *MockProductRepository {
	return &MockProductRepository{
		ByProfile: make(map[string][]*models.Product),
	}
}

func (m *MockProductRepository) BatchInsert(ctx context.Context, products []*models.Product) (int, error) {
	if m.InsertError != nil {
		return 0, m.InsertError
	}
	for _, p := range products {
		m.Products = append(m.Products, p)
		m.ByProfile[p.ProfileID] = append(m.ByProfile[p.ProfileID], p)
	}
	return len(products), nil
}

func (m *MockProductRepository) CountByProfile(ctx context.Context, profileID string) (int, error) {
	return len(m.ByProfile[profileID]), nil
}

func (m *MockProductRepository) Count(ctx context.Context) (int, error) {
	return len(m.Products), nil
}

func (m *MockProductRepository) StreamAll(ctx context.Context, callback func(*models.Product) error) error {
	for _, p := range m.Products {
		if err := callback(p); err != nil {
			return err
		}
	}
	return nil
}

// MockGalleryRepository is a mock implementation of GalleryRepository
type MockGalleryRepository struct {
	Items       []*models.GalleryItem
	ByProfile   map[string][]*models.GalleryItem
	CreateError error
}

var _ repository.GalleryRepository = (*MockGalleryRepository)(nil)

func NewMockGalleryRepository() *MockGalleryRepository {
	return &MockGalleryRepository{
		ByProfile: make(map[string][]*models.GalleryItem),
	}
}

func (m *MockGalleryRepository) Create(ctx context.Context, item *models.GalleryItem) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	m.Items = append(m.Items, item)
	m.ByProfile[item.ProfileID] = append(m.ByProfile[item.ProfileID], item)
	return nil
}

func (m *MockGalleryRepository) CountByProfile(ctx context.Context, profileID string) (int, error) {
	return len(m.ByProfile[profileID]), nil
}

func (m *MockGalleryRepository) Count(ctx context.Context) (int, error) {
	return len(m.Items), nil
}

// MockRunRepository is a mock implementation of RunRepository
type MockRunRepository struct {
	Runs      map[string]*models.ImportRun
	RunErrors map[string][]models.RowError
}

var _ repository.RunRepository = (*MockRunRepository)(nil)

func NewMockRunRepository() *MockRunRepository {
	return &MockRunRepository{
		Runs:      make(map[string]*models.ImportRun),
		RunErrors: make(map[string][]models.RowError),
	}
}

func (m *MockRunRepository) Create(ctx context.Context, run *models.ImportRun) error {
	m.Runs[run.ID] = run
	return nil
}

func (m *MockRunRepository) GetByID(ctx context.Context, id string) (*models.ImportRun, error) {
	return m.Runs[id], nil
}

func (m *MockRunRepository) AddErrors(ctx context.Context, runID string, rowErrors []models.RowError) error {
	m.RunErrors[runID] = append(m.RunErrors[runID], rowErrors...)
	return nil
}

func (m *MockRunRepository) GetErrors(ctx context.Context, runID string, limit int) ([]models.RowError, error) {
	rowErrors := m.RunErrors[runID]
	if limit > 0 && len(rowErrors) > limit {
		return rowErrors[:limit], nil
	}
	return rowErrors, nil
}

// NewMockRepositories bundles fresh mocks into a Repositories struct
func NewMockRepositories() (*repository.Repositories, *MockProfileRepository, *MockProductRepository, *MockGalleryRepository, *MockRunRepository) {
	profiles := NewMockProfileRepository()
	products := NewMockProductRepository()
	gallery := NewMockGalleryRepository()
	runs := NewMockRunRepository()

	return &repository.Repositories{
		Profile: profiles,
		Product: products,
		Gallery: gallery,
		Run:     runs,
	}, profiles, products, gallery, runs
}
