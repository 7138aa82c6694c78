package booking

import (
	"context"

	bookingRepo "needmeet/database/repository/booking"
	"needmeet/models"
	"needmeet/utils"
)

// ListBookings returns a page of bookings matching the filter, sorted by
// date descending. Non-positive page or pageSize fall back to 1 and the
// configured default respectively.
func (s *DefaultBookingService) ListBookings(ctx context.Context, filter bookingRepo.BookingFilter, page, pageSize int) (*models.BookingPage, error) {
	if filter.Status != "" && !models.ValidBookingStatus(filter.Status) {
		return nil, utils.InvalidArgumentError("invalid booking status filter")
	}
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = s.defaultPageSize()
	}

	totalCount, err := s.Repo.Count(ctx, filter)
	if err != nil {
		return nil, utils.DependencyError("failed to count bookings", err)
	}

	skip := int64(page-1) * int64(pageSize)
	items, err := s.Repo.List(ctx, filter, skip, int64(pageSize))
	if err != nil {
		return nil, utils.DependencyError("failed to list bookings", err)
	}
	if items == nil {
		items = []models.Booking{}
	}

	totalPages := int((totalCount + int64(pageSize) - 1) / int64(pageSize))
	return &models.BookingPage{
		Items:       items,
		TotalCount:  totalCount,
		CurrentPage: page,
		TotalPages:  totalPages,
	}, nil
}
