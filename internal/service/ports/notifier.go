package ports

import (
	"context"

	"github.com/successxx/punctual/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, host *domain.Host, b *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, host *domain.Host, b *domain.Booking)
	NotifyBookingRescheduled(ctx context.Context, host *domain.Host, old, next *domain.Booking)
	NotifyBookingReminder(ctx context.Context, host *domain.Host, b *domain.Booking)
}
