package providerRepo

import (
	"context"
	"errors"
	"time"

	"needmeet/models"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrProviderNotFound is returned when a provider id resolves to no document.
var ErrProviderNotFound = errors.New("provider not found")

// ProviderRepository defines methods for provider data access.
type ProviderRepository interface {
	// Create inserts a new provider record.
	Create(ctx context.Context, provider *models.Provider) error
	// GetByID retrieves a provider by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	// GetAll retrieves all providers.
	GetAll(ctx context.Context) ([]models.Provider, error)
	// GetByServiceType returns providers that offer a specific service.
	GetByServiceType(ctx context.Context, service string) ([]models.Provider, error)
	// Exists reports whether a provider with the given ID exists.
	Exists(ctx context.Context, id string) (bool, error)
	// UpdateWithDocument patches a provider document with the specified update fields.
	UpdateWithDocument(ctx context.Context, id string, updateDoc bson.M) error
	// SetReviews persists the review collection and the derived rating in one write.
	SetReviews(ctx context.Context, id string, reviews []models.Review, rating float64, updatedAt time.Time) error
	// AddReporter inserts userID into reportedBy if absent and returns the updated set.
	AddReporter(ctx context.Context, id, userID string) ([]string, error)
	// Count returns the total number of providers.
	Count(ctx context.Context) (int64, error)
}
