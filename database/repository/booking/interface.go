package bookingRepo

import (
	"context"
	"errors"
	"time"

	"needmeet/models"
)

// ErrBookingNotFound is returned when a booking id resolves to no document.
var ErrBookingNotFound = errors.New("booking not found")

// BookingFilter restricts a booking listing. Zero-value fields are ignored;
// set fields are combined conjunctively.
type BookingFilter struct {
	Status     string
	UserID     string
	ProviderID string
}

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// Create inserts a new booking record.
	Create(ctx context.Context, booking *models.Booking) error
	// GetByID retrieves a booking by its unique ID.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// UpdateStatus persists a new status and updatedAt, returning the updated record.
	UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (*models.Booking, error)
	// Delete removes a booking record entirely.
	Delete(ctx context.Context, id string) error
	// List returns bookings matching filter, sorted by date descending.
	List(ctx context.Context, filter BookingFilter, skip, limit int64) ([]models.Booking, error)
	// Count returns the number of bookings matching filter.
	Count(ctx context.Context, filter BookingFilter) (int64, error)
}
