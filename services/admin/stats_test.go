package admin

import (
	"context"
	"errors"
	"testing"

	bookingRepo "needmeet/database/repository/booking"
	bookingMocks "needmeet/database/repository/booking/mocks"
	providerMocks "needmeet/database/repository/provider/mocks"
	userMocks "needmeet/database/repository/user/mocks"
	"needmeet/utils"

	"github.com/stretchr/testify/assert"
)

func TestDashboard_Counts(t *testing.T) {
	bookings := new(bookingMocks.MockBookingRepository)
	providers := new(providerMocks.MockProviderRepository)
	users := new(userMocks.MockUserRepository)
	service := &DefaultAdminService{Bookings: bookings, Providers: providers, Users: users}

	ctx := context.Background()
	bookings.On("Count", ctx, bookingRepo.BookingFilter{}).Return(int64(42), nil)
	providers.On("Count", ctx).Return(int64(7), nil)
	users.On("Count", ctx).Return(int64(120), nil)

	stats, err := service.Dashboard(ctx)

	assert.NoError(t, err)
	assert.Equal(t, int64(42), stats.TotalBookings)
	assert.Equal(t, int64(7), stats.TotalProviders)
	assert.Equal(t, int64(120), stats.TotalUsers)
}

func TestDashboard_CountFailure(t *testing.T) {
	bookings := new(bookingMocks.MockBookingRepository)
	service := &DefaultAdminService{Bookings: bookings}

	ctx := context.Background()
	bookings.On("Count", ctx, bookingRepo.BookingFilter{}).Return(int64(0), errors.New("db down"))

	stats, err := service.Dashboard(ctx)

	assert.Error(t, err)
	assert.Nil(t, stats)
	assert.Equal(t, utils.KindDependencyFailure, utils.KindOf(err))
}
