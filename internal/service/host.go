package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/successxx/punctual/internal/domain"
	"github.com/successxx/punctual/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

type HostService struct {
	repo   ports.HostRepo
	cache  ports.SlotCache
	logger logger.Logger
}

func NewHostService(repo ports.HostRepo, cache ports.SlotCache, logger logger.Logger) *HostService {
	return &HostService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

func (s *HostService) Create(ctx context.Context, input domain.CreateHostInput) (*domain.Host, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	host := &domain.Host{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(input.Name),
		Email:          strings.ToLower(strings.TrimSpace(input.Email)),
		TelegramChatID: input.TelegramChatID,
		SchedulingConfig: domain.SchedulingConfig{
			Timezone:        input.Timezone,
			BookingDuration: time.Duration(input.BookingDurationMinutes) * time.Minute,
			BufferTime:      time.Duration(input.BufferMinutes) * time.Minute,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, host); err != nil {
		return nil, fmt.Errorf("create host: %w", err)
	}

	return host, nil
}

func (s *HostService) Get(ctx context.Context, id string) (*domain.Host, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateConfig replaces the host's scheduling config. Slots already shown to guests
// stay valid until commit; only later resolutions see the change.
func (s *HostService) UpdateConfig(ctx context.Context, id string, input domain.UpdateConfigInput) (*domain.Host, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	cfg := domain.SchedulingConfig{
		Timezone:        input.Timezone,
		BookingDuration: time.Duration(input.BookingDurationMinutes) * time.Minute,
		BufferTime:      time.Duration(input.BufferMinutes) * time.Minute,
	}

	host, err := s.repo.UpdateConfig(ctx, id, cfg)
	if err != nil {
		return nil, fmt.Errorf("update config: %w", err)
	}

	if err = s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn("slot cache invalidation failed",
			logger.String("host_id", id),
			logger.String("error", err.Error()),
		)
	}

	s.logger.Info("scheduling config updated",
		logger.String("host_id", id),
		logger.String("timezone", cfg.Timezone),
		logger.Duration("booking_duration", cfg.BookingDuration),
		logger.Duration("buffer_time", cfg.BufferTime),
	)

	return host, nil
}
