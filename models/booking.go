package models

import "time"

// Booking statuses.
const (
	BookingStatusPending   = "Pending"
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCompleted = "Completed"
	BookingStatusCancelled = "Cancelled"
)

// Payment statuses.
const (
	PaymentStatusPending   = "Pending"
	PaymentStatusCompleted = "Completed"
	PaymentStatusFailed    = "Failed"
)

// Payment methods.
const (
	PaymentMethodCreditCard = "Credit Card"
	PaymentMethodDebitCard  = "Debit Card"
	PaymentMethodCash       = "Cash"
	PaymentMethodOnline     = "Online Payment"
)

// Booking represents a scheduled engagement between a user and a provider.
// UserID and ProviderID are immutable after creation; only Status (and the
// derived UpdatedAt) may change through the booking service.
type Booking struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	ProviderID    string    `bson:"providerId" json:"providerId"`
	ServiceType   string    `bson:"serviceType" json:"serviceType"`
	Date          time.Time `bson:"date" json:"date"`
	Status        string    `bson:"status" json:"status"`
	Location      string    `bson:"location,omitempty" json:"location,omitempty"`
	ShareLocation bool      `bson:"shareLocation" json:"shareLocation"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	PaymentMethod string    `bson:"paymentMethod" json:"paymentMethod"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time `bson:"updatedAt" json:"updatedAt"`
}

// ValidBookingStatus reports whether s is a member of the booking status enum.
func ValidBookingStatus(s string) bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// BookingPage is a single page of booking results.
type BookingPage struct {
	Items       []Booking `json:"items"`
	TotalCount  int64     `json:"totalCount"`
	CurrentPage int       `json:"currentPage"`
	TotalPages  int       `json:"totalPages"`
}
