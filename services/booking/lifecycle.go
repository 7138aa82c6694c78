package booking

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "needmeet/database/repository/booking"
	"needmeet/events"
	"needmeet/models"
	"needmeet/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CreateBooking validates and persists a new booking with status Pending.
// A principal may only create bookings for itself, and the provider must
// exist before the insert.
func (s *DefaultBookingService) CreateBooking(ctx context.Context, requesterID string, input CreateBookingInput) (*models.Booking, error) {
	logger := utils.GetLogger()

	if input.UserID == "" || input.ProviderID == "" || input.ServiceType == "" || input.Date.IsZero() {
		return nil, utils.InvalidArgumentError("userId, providerId, serviceType, and date are required")
	}
	if requesterID != input.UserID {
		return nil, utils.ForbiddenError("you can only create bookings for yourself")
	}

	exists, err := s.Providers.Exists(ctx, input.ProviderID)
	if err != nil {
		return nil, utils.DependencyError("failed to verify provider", err)
	}
	if !exists {
		return nil, utils.NotFoundError(fmt.Sprintf("provider %s not found", input.ProviderID))
	}

	now := s.now()
	if input.Date.Before(now) {
		return nil, utils.InvalidArgumentError("booking date must not be in the past")
	}

	booking := &models.Booking{
		ID:            uuid.New().String(),
		UserID:        input.UserID,
		ProviderID:    input.ProviderID,
		ServiceType:   input.ServiceType,
		Date:          input.Date,
		Status:        models.BookingStatusPending,
		Location:      input.Location,
		ShareLocation: input.ShareLocation,
		PaymentStatus: models.PaymentStatusPending,
		PaymentMethod: models.PaymentMethodOnline,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.Repo.Create(ctx, booking); err != nil {
		return nil, utils.DependencyError("failed to create booking", err)
	}

	logger.Info("Booking created",
		zap.String("bookingID", booking.ID),
		zap.String("userID", booking.UserID),
		zap.String("providerID", booking.ProviderID))

	if s.Reminders != nil {
		if err := s.Reminders.ScheduleBookingReminder(ctx, booking); err != nil {
			logger.Warn("Failed to schedule booking reminder", zap.String("bookingID", booking.ID), zap.Error(err))
		}
	}
	s.publish(ctx, events.Event{
		EventType:  events.TypeBookingCreated,
		EntityID:   booking.ID,
		UserID:     booking.UserID,
		ProviderID: booking.ProviderID,
		Detail:     booking.ServiceType,
	})

	return booking, nil
}

// TransitionStatus persists a new status for an existing booking. Any member
// of the status enum is an allowed target; only the booking's user or
// provider may request the change.
func (s *DefaultBookingService) TransitionStatus(ctx context.Context, requesterID, bookingID, newStatus string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, utils.InvalidArgumentError("booking ID is required")
	}
	if !models.ValidBookingStatus(newStatus) {
		return nil, utils.InvalidArgumentError(fmt.Sprintf("invalid booking status %q", newStatus))
	}

	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("booking %s not found", bookingID))
		}
		return nil, utils.DependencyError("failed to fetch booking", err)
	}
	if requesterID != booking.UserID && requesterID != booking.ProviderID {
		return nil, utils.ForbiddenError("you are not authorized to update this booking")
	}

	updated, err := s.Repo.UpdateStatus(ctx, bookingID, newStatus, s.now())
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("booking %s not found", bookingID))
		}
		return nil, utils.DependencyError("failed to update booking status", err)
	}

	utils.GetLogger().Info("Booking status updated",
		zap.String("bookingID", bookingID),
		zap.String("status", newStatus),
		zap.String("requesterID", requesterID))

	s.publish(ctx, events.Event{
		EventType:  events.TypeBookingStatusChanged,
		EntityID:   updated.ID,
		UserID:     updated.UserID,
		ProviderID: updated.ProviderID,
		Detail:     newStatus,
	})

	return updated, nil
}

// CancelBooking removes the booking record entirely and returns the deleted
// snapshot. Authorization matches TransitionStatus.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, requesterID, bookingID string) (*models.Booking, error) {
	if bookingID == "" {
		return nil, utils.InvalidArgumentError("booking ID is required")
	}

	booking, err := s.Repo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("booking %s not found", bookingID))
		}
		return nil, utils.DependencyError("failed to fetch booking", err)
	}
	if requesterID != booking.UserID && requesterID != booking.ProviderID {
		return nil, utils.ForbiddenError("you are not authorized to cancel this booking")
	}

	if err := s.Repo.Delete(ctx, bookingID); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			return nil, utils.NotFoundError(fmt.Sprintf("booking %s not found", bookingID))
		}
		return nil, utils.DependencyError("failed to delete booking", err)
	}

	utils.GetLogger().Info("Booking cancelled",
		zap.String("bookingID", bookingID),
		zap.String("requesterID", requesterID))

	s.publish(ctx, events.Event{
		EventType:  events.TypeBookingCancelled,
		EntityID:   booking.ID,
		UserID:     booking.UserID,
		ProviderID: booking.ProviderID,
	})

	return booking, nil
}

// publish emits a domain event when a publisher is configured. Failures are
// logged and never surfaced to the caller.
func (s *DefaultBookingService) publish(ctx context.Context, event events.Event) {
	if s.Events == nil {
		return
	}
	if err := s.Events.Publish(ctx, event); err != nil {
		utils.GetLogger().Warn("Failed to publish booking event",
			zap.String("eventType", event.EventType),
			zap.String("entityID", event.EntityID),
			zap.Error(err))
	}
}
