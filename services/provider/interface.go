package provider

import (
	"context"

	providerRepo "needmeet/database/repository/provider"
	"needmeet/models"
)

// CreateProviderInput is the payload for explicit provider creation.
type CreateProviderInput struct {
	Name       string            `json:"name" binding:"required"`
	Email      string            `json:"email,omitempty"`
	Phone      string            `json:"phone,omitempty"`
	Address    string            `json:"address,omitempty"`
	Services   []string          `json:"services" binding:"required"`
	Location   string            `json:"location" binding:"required"`
	Experience int               `json:"experience"`
	PriceRange models.PriceRange `json:"priceRange,omitempty"`
}

// ProviderService owns provider profile management and lookups.
type ProviderService interface {
	GetAll(ctx context.Context) ([]models.Provider, error)
	GetByID(ctx context.Context, id string) (*models.Provider, error)
	GetByServiceType(ctx context.Context, serviceType string) ([]models.Provider, error)
	CreateProvider(ctx context.Context, input CreateProviderInput) (*models.Provider, error)
	UpdateProvider(ctx context.Context, id string, update models.Provider) (*models.Provider, error)
}

// DefaultProviderService is the production implementation.
type DefaultProviderService struct {
	Repo providerRepo.ProviderRepository
}
