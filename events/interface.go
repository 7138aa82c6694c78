package events

import (
	"context"
	"time"
)

// Event types published to the platform event topic.
const (
	TypeBookingCreated       = "BOOKING_CREATED"
	TypeBookingStatusChanged = "BOOKING_STATUS_CHANGED"
	TypeBookingCancelled     = "BOOKING_CANCELLED"
	TypeRatingSubmitted      = "RATING_SUBMITTED"
	TypeSOSAlert             = "SOS_ALERT"
)

// Event is the envelope written to the event topic.
type Event struct {
	EventType  string    `json:"eventType"`
	EntityID   string    `json:"entityId"`
	UserID     string    `json:"userId,omitempty"`
	ProviderID string    `json:"providerId,omitempty"`
	Detail     string    `json:"detail,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

// Publisher emits domain events. Implementations must be safe for concurrent
// use; publish failures are the caller's to log, not to retry.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}
