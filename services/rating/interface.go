package rating

import (
	"context"

	providerRepo "needmeet/database/repository/provider"
	"needmeet/events"
	"needmeet/models"
	"needmeet/utils"

	"go.uber.org/zap"
)

// SubmitRatingInput is the validated request payload for a rating submission.
type SubmitRatingInput struct {
	ProviderID string  `json:"providerId" binding:"required"`
	UserID     string  `json:"userId" binding:"required"`
	Rating     float64 `json:"rating" binding:"required"`
	Comment    string  `json:"comment,omitempty"`
}

// RatingSummary is returned after a successful submission.
type RatingSummary struct {
	Rating       float64 `json:"rating"`
	TotalReviews int     `json:"totalReviews"`
}

// RatingService owns review submission against providers and the derived
// aggregate score, plus provider reporting.
type RatingService interface {
	SubmitRating(ctx context.Context, input SubmitRatingInput) (*RatingSummary, error)
	GetProviderReviews(ctx context.Context, providerID string) ([]models.Review, error)
	ReportProvider(ctx context.Context, providerID, userID string) ([]string, error)
}

// DefaultRatingService is the production implementation.
// The submit path is a read-modify-write against a single provider document;
// concurrent submissions for the same provider are bounded only by the
// store's per-document write semantics.
type DefaultRatingService struct {
	Providers providerRepo.ProviderRepository
	Events    events.Publisher
}

// publish emits a domain event when a publisher is configured. Failures are
// logged and never surfaced to the caller.
func (s *DefaultRatingService) publish(ctx context.Context, event events.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, event); err != nil {
		utils.GetLogger().Warn("Failed to publish rating event",
			zap.String("eventType", event.EventType),
			zap.String("entityID", event.EntityID),
			zap.Error(err))
	}
}
