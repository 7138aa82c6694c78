package provider

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerRepo "needmeet/database/repository/provider"
	"needmeet/models"
	"needmeet/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// GetAll returns all providers.
func (s *DefaultProviderService) GetAll(ctx context.Context) ([]models.Provider, error) {
	providers, err := s.Repo.GetAll(ctx)
	if err != nil {
		return nil, utils.DependencyError("failed to fetch providers", err)
	}
	return providers, nil
}

// GetByID returns the provider with the given id.
func (s *DefaultProviderService) GetByID(ctx context.Context, id string) (*models.Provider, error) {
	if id == "" {
		return nil, utils.InvalidArgumentError("provider ID is required")
	}
	p, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("provider %s not found", id))
		}
		return nil, utils.DependencyError("failed to fetch provider", err)
	}
	return p, nil
}

// GetByServiceType returns providers offering the given service, matched
// case-insensitively.
func (s *DefaultProviderService) GetByServiceType(ctx context.Context, serviceType string) ([]models.Provider, error) {
	if serviceType == "" {
		return nil, utils.InvalidArgumentError("service type is required")
	}
	providers, err := s.Repo.GetByServiceType(ctx, serviceType)
	if err != nil {
		return nil, utils.DependencyError("failed to fetch providers by service type", err)
	}
	return providers, nil
}

// CreateProvider inserts a new provider record with an empty review set.
func (s *DefaultProviderService) CreateProvider(ctx context.Context, input CreateProviderInput) (*models.Provider, error) {
	if input.Name == "" || len(input.Services) == 0 || input.Location == "" {
		return nil, utils.InvalidArgumentError("name, services, and location are required")
	}

	now := time.Now()
	p := &models.Provider{
		ID:         uuid.New().String(),
		Name:       input.Name,
		Email:      input.Email,
		Phone:      input.Phone,
		Address:    input.Address,
		Services:   input.Services,
		Location:   input.Location,
		Experience: input.Experience,
		PriceRange: input.PriceRange,
		Reviews:    []models.Review{},
		ReportedBy: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.Repo.Create(ctx, p); err != nil {
		return nil, utils.DependencyError("failed to create provider", err)
	}

	utils.GetLogger().Info("Provider created", zap.String("providerID", p.ID))
	return p, nil
}

// UpdateProvider updates non-empty profile fields using a partial update.
// Rating, reviews and reportedBy are owned by the rating service and cannot
// be written through this path.
func (s *DefaultProviderService) UpdateProvider(ctx context.Context, id string, update models.Provider) (*models.Provider, error) {
	if id == "" {
		return nil, utils.InvalidArgumentError("provider ID is required")
	}

	updateFields := bson.M{
		"updatedAt": time.Now(),
	}
	if update.Name != "" {
		updateFields["name"] = update.Name
	}
	if update.Phone != "" {
		updateFields["phone"] = update.Phone
	}
	if update.Address != "" {
		updateFields["address"] = update.Address
	}
	if len(update.Services) > 0 {
		updateFields["services"] = update.Services
	}
	if update.Location != "" {
		updateFields["location"] = update.Location
	}
	if update.Experience > 0 {
		updateFields["experience"] = update.Experience
	}
	if update.PriceRange.Min > 0 || update.PriceRange.Max > 0 {
		updateFields["priceRange"] = update.PriceRange
	}
	if update.ProfilePicture != "" {
		updateFields["profilePicture"] = update.ProfilePicture
	}
	if len(updateFields) == 1 {
		return nil, utils.InvalidArgumentError("no updatable fields provided")
	}

	if err := s.Repo.UpdateWithDocument(ctx, id, updateFields); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("provider %s not found", id))
		}
		return nil, utils.DependencyError("failed to update provider", err)
	}

	updated, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, utils.DependencyError("failed to fetch updated provider", err)
	}
	return updated, nil
}
