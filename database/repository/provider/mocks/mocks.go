package mocks

import (
	"context"
	"time"

	providerRepo "needmeet/database/repository/provider"
	"needmeet/models"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
)

// MockProviderRepository is a testify mock for ProviderRepository.
type MockProviderRepository struct {
	mock.Mock
}

var _ providerRepo.ProviderRepository = (*MockProviderRepository)(nil)

func (m *MockProviderRepository) Create(ctx context.Context, provider *models.Provider) error {
	args := m.Called(ctx, provider)
	return args.Error(0)
}

func (m *MockProviderRepository) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetAll(ctx context.Context) ([]models.Provider, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Provider), args.Error(1)
}

func (m *MockProviderRepository) GetByServiceType(ctx context.Context, service string) ([]models.Provider, error) {
	args := m.Called(ctx, service)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Provider), args.Error(1)
}

func (m *MockProviderRepository) Exists(ctx context.Context, id string) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockProviderRepository) UpdateWithDocument(ctx context.Context, id string, updateDoc bson.M) error {
	args := m.Called(ctx, id, updateDoc)
	return args.Error(0)
}

func (m *MockProviderRepository) SetReviews(ctx context.Context, id string, reviews []models.Review, rating float64, updatedAt time.Time) error {
	args := m.Called(ctx, id, reviews, rating, updatedAt)
	return args.Error(0)
}

func (m *MockProviderRepository) AddReporter(ctx context.Context, id, userID string) ([]string, error) {
	args := m.Called(ctx, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProviderRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
