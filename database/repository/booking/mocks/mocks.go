package mocks

import (
	"context"
	"time"

	bookingRepo "needmeet/database/repository/booking"
	"needmeet/models"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepository is a testify mock for BookingRepository.
type MockBookingRepository struct {
	mock.Mock
}

var _ bookingRepo.BookingRepository = (*MockBookingRepository)(nil)

func (m *MockBookingRepository) Create(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, id, status string, updatedAt time.Time) (*models.Booking, error) {
	args := m.Called(ctx, id, status, updatedAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) List(ctx context.Context, filter bookingRepo.BookingFilter, skip, limit int64) ([]models.Booking, error) {
	args := m.Called(ctx, filter, skip, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Booking), args.Error(1)
}

func (m *MockBookingRepository) Count(ctx context.Context, filter bookingRepo.BookingFilter) (int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(int64), args.Error(1)
}
