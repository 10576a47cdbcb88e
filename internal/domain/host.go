package domain

import (
	"fmt"
	"time"
)

// SchedulingConfig is the part of a host profile the resolver and the committer read.
// A snapshot is taken per request.
type SchedulingConfig struct {
	Timezone        string        `json:"timezone"`
	BookingDuration time.Duration `json:"booking_duration"`
	BufferTime      time.Duration `json:"buffer_time"`
}

// Location loads the host's IANA timezone.
func (c SchedulingConfig) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: unknown timezone %q", ErrValidation, c.Timezone)
	}
	return loc, nil
}

type Host struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	TelegramChatID *int64 `json:"telegram_chat_id"`
	SchedulingConfig
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CreateHostInput struct {
	Name                   string `validate:"required,max=200"`
	Email                  string `validate:"required,email"`
	TelegramChatID         *int64
	Timezone               string `validate:"required,timezone"`
	BookingDurationMinutes int    `validate:"min=5,max=480"`
	BufferMinutes          int    `validate:"min=0,max=240"`
}

type UpdateConfigInput struct {
	Timezone               string `validate:"required,timezone"`
	BookingDurationMinutes int    `validate:"min=5,max=480"`
	BufferMinutes          int    `validate:"min=0,max=240"`
}
