package mocks

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"

	"github.com/business-directory-api/internal/identity"
	"github.com/business-directory-api/internal/models"
	"github.com/business-directory-api/internal/service"
	"github.com/business-directory-api/internal/storage"
)

// MockImportService is a mock implementation of ImportService
type MockImportService struct {
	PreviewFunc  func(ctx context.Context, batch *models.ImportBatch) (*models.PreviewResult, error)
	ConfirmFunc  func(ctx context.Context, batch *models.ImportBatch, tier models.Tier) (*models.ImportResult, error)
	Previewed    []*models.ImportBatch
	Confirmed    []*models.ImportBatch
	LastTier     models.Tier
	LastRandSeed int64
}

var _ service.ImportService = (*MockImportService)(nil)

func NewMockImportService() *MockImportService {
	return &MockImportService{}
}

func (m *MockImportService) Preview(ctx context.Context, batch *models.ImportBatch) (*models.PreviewResult, error) {
	m.Previewed = append(m.Previewed, batch)
	if m.PreviewFunc != nil {
		return m.PreviewFunc(ctx, batch)
	}
	return &models.PreviewResult{
		TotalCount:       len(batch.Rows),
		ExpectedProducts: len(batch.Rows) * 10,
		Profiles:         batch.Rows,
		Warnings:         batch.Warnings,
	}, nil
}

func (m *MockImportService) Confirm(ctx context.Context, batch *models.ImportBatch, tier models.Tier) (*models.ImportResult, error) {
	m.Confirmed = append(m.Confirmed, batch)
	m.LastTier = tier
	if m.ConfirmFunc != nil {
		return m.ConfirmFunc(ctx, batch, tier)
	}
	return &models.ImportResult{
		ProfilesCreated: len(batch.Rows),
		ProductsCreated: len(batch.Rows) * 10,
		DefaultPassword: "123456",
	}, nil
}

func (m *MockImportService) DefaultProducts(category string) []models.ProductTemplate {
	products := make([]models.ProductTemplate, 10)
	for i := range products {
		products[i] = models.ProductTemplate{
			Name:  fmt.Sprintf("Product %d", i+1),
			Price: float64((i + 1) * 50),
		}
	}
	return products
}

func (m *MockImportService) SetRandSeed(seed int64) {
	m.LastRandSeed = seed
}

// MockExportService is a mock implementation of ExportService
type MockExportService struct {
	Counts       map[string]int
	ProfilesBody string
	ProductsBody string
	StreamError  error
}

var _ service.ExportService = (*MockExportService)(nil)

func NewMockExportService() *MockExportService {
	return &MockExportService{
		Counts: make(map[string]int),
	}
}

func (m *MockExportService) StreamProfiles(ctx context.Context, w http.ResponseWriter, format string) error {
	if m.StreamError != nil {
		return m.StreamError
	}
	w.Write([]byte(m.ProfilesBody))
	return nil
}

func (m *MockExportService) StreamProducts(ctx context.Context, w http.ResponseWriter, format string) error {
	if m.StreamError != nil {
		return m.StreamError
	}
	w.Write([]byte(m.ProductsBody))
	return nil
}

func (m *MockExportService) GetCount(ctx context.Context, resource string) (int, error) {
	return m.Counts[resource], nil
}

// MockRunService is a mock implementation of RunService
type MockRunService struct {
	Runs      map[string]*models.ImportRun
	RunErrors map[string][]models.RowError
}

var _ service.RunService = (*MockRunService)(nil)

func NewMockRunService() *MockRunService {
	return &MockRunService{
		Runs:      make(map[string]*models.ImportRun),
		RunErrors: make(map[string][]models.RowError),
	}
}

func (m *MockRunService) GetRun(ctx context.Context, id string) (*models.ImportRun, error) {
	return m.Runs[id], nil
}

func (m *MockRunService) GetRunErrors(ctx context.Context, id string) ([]models.RowError, error) {
	return m.RunErrors[id], nil
}

// MockIdentityProvider is a mock implementation of identity.Provider
type MockIdentityProvider struct {
	mu         sync.Mutex
	Accounts   map[string]string // email -> account id
	FailEmails map[string]bool
	nextID     int
}

var _ identity.Provider = (*MockIdentityProvider)(nil)

func NewMockIdentityProvider() *MockIdentityProvider {
	return &MockIdentityProvider{
		Accounts:   make(map[string]string),
		FailEmails: make(map[string]bool),
	}
}

func (m *MockIdentityProvider) CreateAccount(ctx context.Context, email, password string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.FailEmails[email] {
		return "", fmt.Errorf("account creation rejected for %s", email)
	}
	if _, exists := m.Accounts[email]; exists {
		return "", fmt.Errorf("email %s is already registered", email)
	}
	m.nextID++
	id := fmt.Sprintf("account-%d", m.nextID)
	m.Accounts[email] = id
	return id, nil
}

// MockBlobStore is a mock implementation of storage.BlobStore
type MockBlobStore struct {
	Saved     []string
	SaveError error
}

var _ storage.BlobStore = (*MockBlobStore)(nil)

func NewMockBlobStore() *MockBlobStore {
	return &MockBlobStore{}
}

func (m *MockBlobStore) Save(ctx context.Context, name string, r io.Reader) (string, error) {
	if m.SaveError != nil {
		return "", m.SaveError
	}
	io.Copy(io.Discard, r)
	m.Saved = append(m.Saved, name)
	return "https://blobs.test/" + name, nil
}
