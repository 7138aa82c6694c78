package admin

import (
	"context"

	bookingRepo "needmeet/database/repository/booking"
	providerRepo "needmeet/database/repository/provider"
	userRepo "needmeet/database/repository/user"
)

// DashboardStats summarizes platform activity for the admin dashboard.
type DashboardStats struct {
	TotalBookings  int64 `json:"totalBookings"`
	TotalProviders int64 `json:"totalProviders"`
	TotalUsers     int64 `json:"totalUsers"`
}

// AdminService owns administrative reporting.
type AdminService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

// DefaultAdminService is the production implementation.
type DefaultAdminService struct {
	Bookings  bookingRepo.BookingRepository
	Providers providerRepo.ProviderRepository
	Users     userRepo.UserRepository
}
