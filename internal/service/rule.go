package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/successxx/punctual/internal/domain"
	"github.com/successxx/punctual/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// RuleService is the settings write path for weekly availability. Active rules of a
// host never overlap on the same weekday.
type RuleService struct {
	repo     ports.RuleRepo
	hostRepo ports.HostRepo
	cache    ports.SlotCache
	logger   logger.Logger
}

func NewRuleService(repo ports.RuleRepo, hostRepo ports.HostRepo, cache ports.SlotCache, logger logger.Logger) *RuleService {
	return &RuleService{
		repo:     repo,
		hostRepo: hostRepo,
		cache:    cache,
		logger:   logger,
	}
}

func (s *RuleService) Create(ctx context.Context, hostID string, input domain.RuleInput) (*domain.AvailabilityRule, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	if _, err := s.hostRepo.GetByID(ctx, hostID); err != nil {
		return nil, fmt.Errorf("check host: %w", err)
	}

	now := time.Now().UTC()
	rule := &domain.AvailabilityRule{
		ID:        uuid.New().String(),
		HostID:    hostID,
		DayOfWeek: time.Weekday(input.DayOfWeek),
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.checkOverlap(ctx, rule); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rule); err != nil {
		return nil, fmt.Errorf("create rule: %w", err)
	}

	s.logger.Info("availability rule created",
		logger.String("rule_id", rule.ID),
		logger.String("host_id", hostID),
		logger.Int("day_of_week", int(rule.DayOfWeek)),
	)
	s.invalidate(ctx, hostID)

	return rule, nil
}

func (s *RuleService) Update(ctx context.Context, hostID, ruleID string, input domain.RuleInput) (*domain.AvailabilityRule, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	rule, err := s.repo.GetByID(ctx, hostID, ruleID)
	if err != nil {
		return nil, fmt.Errorf("get rule: %w", err)
	}
	if !rule.Active {
		return nil, domain.ErrRuleNotFound
	}

	rule.DayOfWeek = time.Weekday(input.DayOfWeek)
	rule.StartTime = input.StartTime
	rule.EndTime = input.EndTime
	rule.UpdatedAt = time.Now().UTC()

	if err = s.checkOverlap(ctx, rule); err != nil {
		return nil, err
	}

	if err = s.repo.Update(ctx, rule); err != nil {
		return nil, fmt.Errorf("update rule: %w", err)
	}

	s.logger.Info("availability rule updated",
		logger.String("rule_id", rule.ID),
		logger.String("host_id", hostID),
	)
	s.invalidate(ctx, hostID)

	return rule, nil
}

// Deactivate soft-deletes a rule. Deactivating twice is not an error.
func (s *RuleService) Deactivate(ctx context.Context, hostID, ruleID string) error {
	if err := s.repo.Deactivate(ctx, hostID, ruleID); err != nil {
		return fmt.Errorf("deactivate rule: %w", err)
	}

	s.logger.Info("availability rule deactivated",
		logger.String("rule_id", ruleID),
		logger.String("host_id", hostID),
	)
	s.invalidate(ctx, hostID)

	return nil
}

func (s *RuleService) List(ctx context.Context, hostID string, activeOnly bool) ([]*domain.AvailabilityRule, error) {
	return s.repo.List(ctx, hostID, activeOnly)
}

// checkOverlap names the conflicting rule for the caller. Concurrent writers are
// settled by the availability_rules_no_overlap constraint, which the repository
// reports as ErrRuleOverlap too.
func (s *RuleService) checkOverlap(ctx context.Context, rule *domain.AvailabilityRule) error {
	existing, err := s.repo.List(ctx, rule.HostID, true)
	if err != nil {
		return fmt.Errorf("list rules: %w", err)
	}

	for _, other := range existing {
		if other.ID == rule.ID {
			continue
		}
		if rule.Overlaps(other) {
			return fmt.Errorf("%w: %s %s-%s", domain.ErrRuleOverlap,
				other.DayOfWeek, other.StartTime, other.EndTime)
		}
	}

	return nil
}

func (s *RuleService) invalidate(ctx context.Context, hostID string) {
	if err := s.cache.Invalidate(ctx, hostID); err != nil {
		s.logger.Warn("slot cache invalidation failed",
			logger.String("host_id", hostID),
			logger.String("error", err.Error()),
		)
	}
}
