package ports

import (
	"context"

	"github.com/successxx/punctual/internal/domain"
)

type HostRepo interface {
	Create(ctx context.Context, h *domain.Host) error
	GetByID(ctx context.Context, id string) (*domain.Host, error)
	UpdateConfig(ctx context.Context, id string, cfg domain.SchedulingConfig) (*domain.Host, error)
}
