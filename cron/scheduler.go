package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"needmeet/models"

	"github.com/hibiken/asynq"
)

// ReminderPayload is the task body for a booking reminder.
type ReminderPayload struct {
	BookingID   string    `json:"bookingId"`
	UserID      string    `json:"userId"`
	ProviderID  string    `json:"providerId"`
	ServiceType string    `json:"serviceType"`
	Date        time.Time `json:"date"`
}

// AsynqReminderScheduler enqueues booking reminders ahead of the scheduled
// service date.
type AsynqReminderScheduler struct {
	client *asynq.Client
	lead   time.Duration
}

// NewReminderScheduler creates a scheduler enqueuing reminders lead time
// before each booking's date.
func NewReminderScheduler(redisOpt asynq.RedisClientOpt, lead time.Duration) *AsynqReminderScheduler {
	return &AsynqReminderScheduler{
		client: asynq.NewClient(redisOpt),
		lead:   lead,
	}
}

// ScheduleBookingReminder enqueues a reminder task for the booking. Bookings
// closer than the lead time fire immediately.
func (s *AsynqReminderScheduler) ScheduleBookingReminder(ctx context.Context, booking *models.Booking) error {
	payload, err := json.Marshal(ReminderPayload{
		BookingID:   booking.ID,
		UserID:      booking.UserID,
		ProviderID:  booking.ProviderID,
		ServiceType: booking.ServiceType,
		Date:        booking.Date,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	processAt := booking.Date.Add(-s.lead)
	if processAt.Before(time.Now()) {
		processAt = time.Now()
	}

	task := asynq.NewTask(TypeBookingReminder, payload)
	if _, err := s.client.EnqueueContext(ctx, task, asynq.ProcessAt(processAt)); err != nil {
		return fmt.Errorf("failed to enqueue booking reminder: %w", err)
	}
	return nil
}

// Close releases the underlying asynq client.
func (s *AsynqReminderScheduler) Close() error {
	return s.client.Close()
}
