package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	bookingRepo "needmeet/database/repository/booking"
	bookingMocks "needmeet/database/repository/booking/mocks"
	providerMocks "needmeet/database/repository/provider/mocks"
	"needmeet/events"
	eventMocks "needmeet/events/mocks"
	"needmeet/models"
	"needmeet/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockReminderScheduler struct {
	mock.Mock
}

func (m *mockReminderScheduler) ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func fixedNow() time.Time {
	return time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
}

func newBookingService(repo *bookingMocks.MockBookingRepository, providers *providerMocks.MockProviderRepository) *DefaultBookingService {
	return &DefaultBookingService{
		Repo:      repo,
		Providers: providers,
		Now:       fixedNow,
	}
}

func TestCreateBooking_Success(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	providers := new(providerMocks.MockProviderRepository)
	service := newBookingService(repo, providers)

	ctx := context.Background()
	input := CreateBookingInput{
		UserID:      "user-1",
		ProviderID:  "provider-1",
		ServiceType: "plumbing",
		Date:        fixedNow().Add(24 * time.Hour),
	}

	providers.On("Exists", ctx, "provider-1").Return(true, nil)
	repo.On("Create", ctx, mock.AnythingOfType("*models.Booking")).Return(nil)

	booking, err := service.CreateBooking(ctx, "user-1", input)

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, models.BookingStatusPending, booking.Status)
	assert.Equal(t, models.PaymentStatusPending, booking.PaymentStatus)
	assert.Equal(t, booking.CreatedAt, booking.UpdatedAt)
	repo.AssertExpectations(t)
}

func TestCreateBooking_MissingFields(t *testing.T) {
	service := newBookingService(new(bookingMocks.MockBookingRepository), new(providerMocks.MockProviderRepository))

	booking, err := service.CreateBooking(context.Background(), "user-1", CreateBookingInput{UserID: "user-1"})

	assert.Error(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
}

func TestCreateBooking_ForAnotherUser(t *testing.T) {
	service := newBookingService(new(bookingMocks.MockBookingRepository), new(providerMocks.MockProviderRepository))

	input := CreateBookingInput{
		UserID:      "user-2",
		ProviderID:  "provider-1",
		ServiceType: "cleaning",
		Date:        fixedNow().Add(time.Hour),
	}
	booking, err := service.CreateBooking(context.Background(), "user-1", input)

	assert.Error(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
}

func TestCreateBooking_UnknownProvider(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	providers := new(providerMocks.MockProviderRepository)
	service := newBookingService(repo, providers)

	ctx := context.Background()
	providers.On("Exists", ctx, "ghost").Return(false, nil)

	input := CreateBookingInput{
		UserID:      "user-1",
		ProviderID:  "ghost",
		ServiceType: "plumbing",
		Date:        fixedNow().Add(time.Hour),
	}
	booking, err := service.CreateBooking(ctx, "user-1", input)

	assert.Error(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_PastDate(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	providers := new(providerMocks.MockProviderRepository)
	service := newBookingService(repo, providers)

	ctx := context.Background()
	providers.On("Exists", ctx, "provider-1").Return(true, nil)

	input := CreateBookingInput{
		UserID:      "user-1",
		ProviderID:  "provider-1",
		ServiceType: "plumbing",
		Date:        fixedNow().Add(-time.Minute),
	}
	booking, err := service.CreateBooking(ctx, "user-1", input)

	assert.Error(t, err)
	assert.Nil(t, booking)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateBooking_DateExactlyNowAccepted(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	providers := new(providerMocks.MockProviderRepository)
	service := newBookingService(repo, providers)

	ctx := context.Background()
	providers.On("Exists", ctx, "provider-1").Return(true, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)

	input := CreateBookingInput{
		UserID:      "user-1",
		ProviderID:  "provider-1",
		ServiceType: "plumbing",
		Date:        fixedNow(),
	}
	booking, err := service.CreateBooking(ctx, "user-1", input)

	assert.NoError(t, err)
	assert.NotNil(t, booking)
}

func TestCreateBooking_ReminderFailureIgnored(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	providers := new(providerMocks.MockProviderRepository)
	scheduler := new(mockReminderScheduler)
	service := newBookingService(repo, providers)
	service.Reminders = scheduler

	ctx := context.Background()
	providers.On("Exists", ctx, "provider-1").Return(true, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	scheduler.On("ScheduleBookingReminder", ctx, mock.Anything).Return(errors.New("queue down"))

	input := CreateBookingInput{
		UserID:      "user-1",
		ProviderID:  "provider-1",
		ServiceType: "plumbing",
		Date:        fixedNow().Add(time.Hour),
	}
	booking, err := service.CreateBooking(ctx, "user-1", input)

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	scheduler.AssertExpectations(t)
}

func TestCreateBooking_PublishFailureIgnored(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	providers := new(providerMocks.MockProviderRepository)
	publisher := new(eventMocks.MockPublisher)
	service := newBookingService(repo, providers)
	service.Events = publisher

	ctx := context.Background()
	providers.On("Exists", ctx, "provider-1").Return(true, nil)
	repo.On("Create", ctx, mock.Anything).Return(nil)
	publisher.On("Publish", ctx, mock.Anything).Return(errors.New("kafka error"))

	input := CreateBookingInput{
		UserID:      "user-1",
		ProviderID:  "provider-1",
		ServiceType: "plumbing",
		Date:        fixedNow().Add(time.Hour),
	}
	booking, err := service.CreateBooking(ctx, "user-1", input)

	assert.NoError(t, err)
	assert.NotNil(t, booking)
	assert.Len(t, publisher.Published, 1)
	assert.Equal(t, events.TypeBookingCreated, publisher.Published[0].EventType)
}

func TestTransitionStatus_ByProvider(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))

	ctx := context.Background()
	existing := &models.Booking{ID: "b-1", UserID: "user-1", ProviderID: "provider-1", Status: models.BookingStatusPending}
	updated := &models.Booking{ID: "b-1", UserID: "user-1", ProviderID: "provider-1", Status: models.BookingStatusConfirmed}

	repo.On("GetByID", ctx, "b-1").Return(existing, nil)
	repo.On("UpdateStatus", ctx, "b-1", models.BookingStatusConfirmed, fixedNow()).Return(updated, nil)

	result, err := service.TransitionStatus(ctx, "provider-1", "b-1", models.BookingStatusConfirmed)

	assert.NoError(t, err)
	assert.Equal(t, models.BookingStatusConfirmed, result.Status)
	repo.AssertExpectations(t)
}

func TestTransitionStatus_InvalidStatus(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))

	result, err := service.TransitionStatus(context.Background(), "user-1", "b-1", "Teleported")

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestTransitionStatus_BookingNotFound(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))

	ctx := context.Background()
	repo.On("GetByID", ctx, "missing").Return(nil, bookingRepo.ErrBookingNotFound)

	result, err := service.TransitionStatus(ctx, "user-1", "missing", models.BookingStatusConfirmed)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, utils.KindNotFound, utils.KindOf(err))
}

func TestTransitionStatus_StrangerForbidden(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))

	ctx := context.Background()
	existing := &models.Booking{ID: "b-1", UserID: "user-1", ProviderID: "provider-1"}
	repo.On("GetByID", ctx, "b-1").Return(existing, nil)

	result, err := service.TransitionStatus(ctx, "intruder", "b-1", models.BookingStatusCompleted)

	assert.Error(t, err)
	assert.Nil(t, result)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelBooking_DeletesRecord(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	publisher := new(eventMocks.MockPublisher)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))
	service.Events = publisher

	ctx := context.Background()
	existing := &models.Booking{ID: "b-1", UserID: "user-1", ProviderID: "provider-1", Status: models.BookingStatusPending}
	repo.On("GetByID", ctx, "b-1").Return(existing, nil)
	repo.On("Delete", ctx, "b-1").Return(nil)
	publisher.On("Publish", ctx, mock.Anything).Return(nil)

	deleted, err := service.CancelBooking(ctx, "user-1", "b-1")

	assert.NoError(t, err)
	assert.Equal(t, "b-1", deleted.ID)
	repo.AssertExpectations(t)
	assert.Len(t, publisher.Published, 1)
	assert.Equal(t, events.TypeBookingCancelled, publisher.Published[0].EventType)
}

func TestCancelBooking_StrangerForbidden(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))

	ctx := context.Background()
	existing := &models.Booking{ID: "b-1", UserID: "user-1", ProviderID: "provider-1"}
	repo.On("GetByID", ctx, "b-1").Return(existing, nil)

	deleted, err := service.CancelBooking(ctx, "intruder", "b-1")

	assert.Error(t, err)
	assert.Nil(t, deleted)
	assert.Equal(t, utils.KindForbidden, utils.KindOf(err))
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestListBookings_SecondPage(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))

	ctx := context.Background()
	filter := bookingRepo.BookingFilter{UserID: "user-1"}
	secondPage := make([]models.Booking, 5)
	for i := range secondPage {
		secondPage[i] = models.Booking{ID: string(rune('a' + i)), UserID: "user-1"}
	}

	repo.On("Count", ctx, filter).Return(int64(15), nil)
	repo.On("List", ctx, filter, int64(10), int64(10)).Return(secondPage, nil)

	page, err := service.ListBookings(ctx, filter, 2, 10)

	assert.NoError(t, err)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, int64(15), page.TotalCount)
	assert.Equal(t, 2, page.CurrentPage)
	assert.Equal(t, 2, page.TotalPages)
	repo.AssertExpectations(t)
}

func TestListBookings_InvalidStatusFilter(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))

	page, err := service.ListBookings(context.Background(), bookingRepo.BookingFilter{Status: "Vanished"}, 1, 10)

	assert.Error(t, err)
	assert.Nil(t, page)
	assert.Equal(t, utils.KindInvalidArgument, utils.KindOf(err))
	repo.AssertNotCalled(t, "Count", mock.Anything, mock.Anything)
}

func TestListBookings_DefaultsApplied(t *testing.T) {
	repo := new(bookingMocks.MockBookingRepository)
	service := newBookingService(repo, new(providerMocks.MockProviderRepository))
	service.PageSize = 25

	ctx := context.Background()
	filter := bookingRepo.BookingFilter{}
	repo.On("Count", ctx, filter).Return(int64(0), nil)
	repo.On("List", ctx, filter, int64(0), int64(25)).Return(nil, nil)

	page, err := service.ListBookings(ctx, filter, 0, 0)

	assert.NoError(t, err)
	assert.Equal(t, 1, page.CurrentPage)
	assert.NotNil(t, page.Items)
	assert.Len(t, page.Items, 0)
	assert.Equal(t, 0, page.TotalPages)
	repo.AssertExpectations(t)
}
