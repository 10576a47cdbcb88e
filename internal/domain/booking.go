package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Booking is a guest's claim on a host's time. Start and End are UTC instants,
// the interval is half-open.
type Booking struct {
	ID              string        `json:"id"`
	HostID          string        `json:"host_id"`
	GuestName       string        `json:"guest_name"`
	GuestEmail      string        `json:"guest_email"`
	Notes           string        `json:"notes"`
	Start           time.Time     `json:"start_time"`
	End             time.Time     `json:"end_time"`
	Status          BookingStatus `json:"status"`
	RescheduledFrom *string       `json:"rescheduled_from,omitempty"`
	RemindedAt      *time.Time    `json:"reminded_at,omitempty"`
	CancelledAt     *time.Time    `json:"cancelled_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`
}

func (b *Booking) Confirmed() bool {
	return b.Status == BookingStatusConfirmed
}

type CommitBookingInput struct {
	HostID     string    `validate:"required"`
	Start      time.Time `validate:"required"`
	End        time.Time `validate:"required"`
	GuestName  string    `validate:"required,max=200"`
	GuestEmail string    `validate:"required,email"`
	Notes      string    `validate:"max=2000"`
}

type RescheduleInput struct {
	BookingID string    `validate:"required"`
	Start     time.Time `validate:"required"`
	End       time.Time `validate:"required"`
}
