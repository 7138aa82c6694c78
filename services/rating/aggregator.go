package rating

import (
	"context"
	"errors"
	"fmt"
	"time"

	providerRepo "needmeet/database/repository/provider"
	"needmeet/events"
	"needmeet/models"
	"needmeet/utils"

	"go.uber.org/zap"
)

// SubmitRating upserts a review keyed by userId and recomputes the provider's
// aggregate rating as the plain arithmetic mean of all current reviews.
// Repeat submissions from the same user replace the existing entry in place.
func (s *DefaultRatingService) SubmitRating(ctx context.Context, input SubmitRatingInput) (*RatingSummary, error) {
	if input.ProviderID == "" || input.UserID == "" {
		return nil, utils.InvalidArgumentError("providerId and userId are required")
	}
	if input.Rating < 1 || input.Rating > 5 {
		return nil, utils.InvalidArgumentError("rating must be a number between 1 and 5")
	}

	provider, err := s.Providers.GetByID(ctx, input.ProviderID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("provider %s not found", input.ProviderID))
		}
		return nil, utils.DependencyError("failed to fetch provider", err)
	}

	now := time.Now()
	reviews := upsertReview(provider.Reviews, models.Review{
		UserID:  input.UserID,
		Rating:  input.Rating,
		Comment: input.Comment,
		Date:    now,
	})
	mean := meanRating(reviews)

	if err := s.Providers.SetReviews(ctx, input.ProviderID, reviews, mean, now); err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("provider %s not found", input.ProviderID))
		}
		return nil, utils.DependencyError("failed to save rating", err)
	}

	utils.GetLogger().Info("Rating submitted",
		zap.String("providerID", input.ProviderID),
		zap.String("userID", input.UserID),
		zap.Float64("rating", input.Rating))

	s.publish(ctx, events.Event{
		EventType:  events.TypeRatingSubmitted,
		EntityID:   input.ProviderID,
		UserID:     input.UserID,
		ProviderID: input.ProviderID,
		Detail:     fmt.Sprintf("%.1f", input.Rating),
	})

	return &RatingSummary{Rating: mean, TotalReviews: len(reviews)}, nil
}

// GetProviderReviews returns the provider's current review collection.
func (s *DefaultRatingService) GetProviderReviews(ctx context.Context, providerID string) ([]models.Review, error) {
	if providerID == "" {
		return nil, utils.InvalidArgumentError("provider ID is required")
	}
	provider, err := s.Providers.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("provider %s not found", providerID))
		}
		return nil, utils.DependencyError("failed to fetch provider", err)
	}
	if provider.Reviews == nil {
		return []models.Review{}, nil
	}
	return provider.Reviews, nil
}

// ReportProvider records userID in the provider's reportedBy set. Repeat
// reports from the same user leave the set unchanged.
func (s *DefaultRatingService) ReportProvider(ctx context.Context, providerID, userID string) ([]string, error) {
	if providerID == "" || userID == "" {
		return nil, utils.InvalidArgumentError("providerId and userId are required")
	}

	reportedBy, err := s.Providers.AddReporter(ctx, providerID, userID)
	if err != nil {
		if errors.Is(err, providerRepo.ErrProviderNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("provider %s not found", providerID))
		}
		return nil, utils.DependencyError("failed to report provider", err)
	}

	utils.GetLogger().Info("Provider reported",
		zap.String("providerID", providerID),
		zap.String("userID", userID))

	return reportedBy, nil
}

// upsertReview replaces the entry carrying the same userId in place, or
// appends when the user has not reviewed before.
func upsertReview(reviews []models.Review, review models.Review) []models.Review {
	for i := range reviews {
		if reviews[i].UserID == review.UserID {
			reviews[i].Rating = review.Rating
			if review.Comment != "" {
				reviews[i].Comment = review.Comment
			}
			reviews[i].Date = review.Date
			return reviews
		}
	}
	return append(reviews, review)
}

// meanRating computes the arithmetic mean of the review ratings, 0 for an
// empty collection.
func meanRating(reviews []models.Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}
