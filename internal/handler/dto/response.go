package dto

import (
	"time"

	"github.com/successxx/punctual/internal/domain"
)

const (
	CodeValidation         = "validation"
	CodeNotFound           = "not_found"
	CodeSlotTaken          = "slot_taken"
	CodeRuleOverlap        = "rule_overlap"
	CodeBookingCancelled   = "booking_cancelled"
	CodeStorageUnavailable = "storage_unavailable"
	CodeInternal           = "internal"
)

type HostResponse struct {
	ID                     string `json:"id"`
	Name                   string `json:"name"`
	Email                  string `json:"email"`
	TelegramChatID         *int64 `json:"telegram_chat_id,omitempty"`
	Timezone               string `json:"timezone"`
	BookingDurationMinutes int    `json:"booking_duration_minutes"`
	BufferMinutes          int    `json:"buffer_minutes"`
	CreatedAt              string `json:"created_at"`
	UpdatedAt              string `json:"updated_at"`
}

type RuleResponse struct {
	ID        string `json:"id"`
	HostID    string `json:"host_id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
}

type BookingResponse struct {
	ID              string  `json:"id"`
	HostID          string  `json:"host_id"`
	GuestName       string  `json:"guest_name"`
	GuestEmail      string  `json:"guest_email"`
	Notes           string  `json:"notes,omitempty"`
	StartTime       string  `json:"start_time"`
	EndTime         string  `json:"end_time"`
	Status          string  `json:"status"`
	RescheduledFrom *string `json:"rescheduled_from,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

type SlotListResponse struct {
	HostID          string         `json:"host_id"`
	Date            string         `json:"date"`
	Timezone        string         `json:"timezone"`
	DurationMinutes int            `json:"duration_minutes"`
	Slots           []SlotResponse `json:"slots"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func ToHostResponse(h *domain.Host) HostResponse {
	return HostResponse{
		ID:                     h.ID,
		Name:                   h.Name,
		Email:                  h.Email,
		TelegramChatID:         h.TelegramChatID,
		Timezone:               h.Timezone,
		BookingDurationMinutes: int(h.BookingDuration / time.Minute),
		BufferMinutes:          int(h.BufferTime / time.Minute),
		CreatedAt:              h.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:              h.UpdatedAt.UTC().Format(time.RFC3339),
	}
}

func ToRuleResponse(r *domain.AvailabilityRule) RuleResponse {
	return RuleResponse{
		ID:        r.ID,
		HostID:    r.HostID,
		DayOfWeek: int(r.DayOfWeek),
		StartTime: r.StartTime.String(),
		EndTime:   r.EndTime.String(),
		Active:    r.Active,
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:              b.ID,
		HostID:          b.HostID,
		GuestName:       b.GuestName,
		GuestEmail:      b.GuestEmail,
		Notes:           b.Notes,
		StartTime:       b.Start.UTC().Format(time.RFC3339),
		EndTime:         b.End.UTC().Format(time.RFC3339),
		Status:          string(b.Status),
		RescheduledFrom: b.RescheduledFrom,
		CreatedAt:       b.CreatedAt.UTC().Format(time.RFC3339),
	}
	if b.CancelledAt != nil {
		at := b.CancelledAt.UTC().Format(time.RFC3339)
		resp.CancelledAt = &at
	}
	return resp
}

func ToSlotListResponse(l *domain.SlotList) SlotListResponse {
	slots := make([]SlotResponse, 0, len(l.Slots))
	for _, s := range l.Slots {
		slots = append(slots, SlotResponse{
			Start: s.Start.UTC().Format(time.RFC3339),
			End:   s.End.UTC().Format(time.RFC3339),
		})
	}

	return SlotListResponse{
		HostID:          l.HostID,
		Date:            l.Date,
		Timezone:        l.Timezone,
		DurationMinutes: int(l.Duration / time.Minute),
		Slots:           slots,
	}
}
