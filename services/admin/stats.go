package admin

import (
	"context"

	bookingRepo "needmeet/database/repository/booking"
	"needmeet/utils"
)

// Dashboard returns platform-wide totals for bookings, providers and users.
func (s *DefaultAdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	totalBookings, err := s.Bookings.Count(ctx, bookingRepo.BookingFilter{})
	if err != nil {
		return nil, utils.DependencyError("failed to count bookings", err)
	}
	totalProviders, err := s.Providers.Count(ctx)
	if err != nil {
		return nil, utils.DependencyError("failed to count providers", err)
	}
	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return nil, utils.DependencyError("failed to count users", err)
	}

	return &DashboardStats{
		TotalBookings:  totalBookings,
		TotalProviders: totalProviders,
		TotalUsers:     totalUsers,
	}, nil
}
