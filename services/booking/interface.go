package booking

import (
	"context"
	"time"

	bookingRepo "needmeet/database/repository/booking"
	providerRepo "needmeet/database/repository/provider"
	"needmeet/events"
	"needmeet/models"
)

// CreateBookingInput is the validated request payload for a new booking.
type CreateBookingInput struct {
	UserID        string    `json:"userId" binding:"required"`
	ProviderID    string    `json:"providerId" binding:"required"`
	ServiceType   string    `json:"serviceType" binding:"required"`
	Date          time.Time `json:"date" binding:"required"`
	Location      string    `json:"location,omitempty"`
	ShareLocation bool      `json:"shareLocation,omitempty"`
}

// ReminderScheduler enqueues a reminder ahead of a booking's scheduled date.
type ReminderScheduler interface {
	ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error
}

// BookingService owns creation, status transitions, cancellation and listing
// of bookings.
type BookingService interface {
	CreateBooking(ctx context.Context, requesterID string, input CreateBookingInput) (*models.Booking, error)
	TransitionStatus(ctx context.Context, requesterID, bookingID, newStatus string) (*models.Booking, error)
	CancelBooking(ctx context.Context, requesterID, bookingID string) (*models.Booking, error)
	ListBookings(ctx context.Context, filter bookingRepo.BookingFilter, page, pageSize int) (*models.BookingPage, error)
}

// DefaultBookingService is the production implementation.
// Events and Reminders are optional; when set, failures there are logged and
// never fail the booking operation itself.
type DefaultBookingService struct {
	Repo      bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
	Events    events.Publisher
	Reminders ReminderScheduler
	// PageSize is the default page size for listings; 0 falls back to 10.
	PageSize int
	// Now reports the current time; nil falls back to time.Now.
	Now func() time.Time
}

func (s *DefaultBookingService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultBookingService) defaultPageSize() int {
	if s.PageSize > 0 {
		return s.PageSize
	}
	return 10
}
