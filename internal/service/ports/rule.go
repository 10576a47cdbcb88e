package ports

import (
	"context"

	"github.com/successxx/punctual/internal/domain"
)

type RuleRepo interface {
	Create(ctx context.Context, r *domain.AvailabilityRule) error
	GetByID(ctx context.Context, hostID, id string) (*domain.AvailabilityRule, error)
	Update(ctx context.Context, r *domain.AvailabilityRule) error
	Deactivate(ctx context.Context, hostID, id string) error
	List(ctx context.Context, hostID string, activeOnly bool) ([]*domain.AvailabilityRule, error)
}
