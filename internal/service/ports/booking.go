package ports

import (
	"context"
	"time"

	"github.com/successxx/punctual/internal/domain"
)

type BookingRepo interface {
	Create(ctx context.Context, b *domain.Booking, buffer time.Duration) error
	Reschedule(ctx context.Context, oldID string, next *domain.Booking, buffer time.Duration) (*domain.Booking, error)
	Cancel(ctx context.Context, id string) (*domain.Booking, bool, error)
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	ListConfirmedInRange(ctx context.Context, hostID string, from, to time.Time) ([]*domain.Booking, error)
	ListByHost(ctx context.Context, hostID string, from, to time.Time) ([]*domain.Booking, error)
	ClaimDueReminders(ctx context.Context, from, to time.Time) ([]*domain.Booking, error)
}
