package dto

import "time"

type CreateHostRequest struct {
	Name                   string `json:"name" binding:"required"`
	Email                  string `json:"email" binding:"required"`
	TelegramChatID         *int64 `json:"telegram_chat_id"`
	Timezone               string `json:"timezone" binding:"required"`
	BookingDurationMinutes int    `json:"booking_duration_minutes" binding:"required,gt=0"`
	BufferMinutes          int    `json:"buffer_minutes" binding:"gte=0"`
}

type UpdateConfigRequest struct {
	Timezone               string `json:"timezone" binding:"required"`
	BookingDurationMinutes int    `json:"booking_duration_minutes" binding:"required,gt=0"`
	BufferMinutes          int    `json:"buffer_minutes" binding:"gte=0"`
}

// RuleRequest carries local wall-clock times as "HH:MM"; "24:00" closes a day.
type RuleRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CommitBookingRequest struct {
	StartTime  time.Time `json:"start_time" binding:"required"`
	EndTime    time.Time `json:"end_time" binding:"required"`
	GuestName  string    `json:"guest_name" binding:"required"`
	GuestEmail string    `json:"guest_email" binding:"required"`
	Notes      string    `json:"notes"`
}

type RescheduleRequest struct {
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
