package service

import (
	"context"
	"fmt"
	"time"

	"github.com/successxx/punctual/internal/domain"
	"github.com/successxx/punctual/internal/service/ports"
	"github.com/successxx/punctual/internal/slots"
	"github.com/wb-go/wbf/logger"
)

const DateLayout = "2006-01-02"

// AvailabilityService feeds the resolver from storage. It never writes.
type AvailabilityService struct {
	hostRepo    ports.HostRepo
	ruleRepo    ports.RuleRepo
	bookingRepo ports.BookingRepo
	cache       ports.SlotCache
	logger      logger.Logger
	now         func() time.Time
}

func NewAvailabilityService(
	hostRepo ports.HostRepo,
	ruleRepo ports.RuleRepo,
	bookingRepo ports.BookingRepo,
	cache ports.SlotCache,
	logger logger.Logger,
) *AvailabilityService {
	return &AvailabilityService{
		hostRepo:    hostRepo,
		ruleRepo:    ruleRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

// GetSlots resolves the bookable slots of hostID on the local calendar date (YYYY-MM-DD).
// A day without rules yields an empty list, not an error.
func (s *AvailabilityService) GetSlots(ctx context.Context, hostID, date string) (*domain.SlotList, error) {
	host, err := s.hostRepo.GetByID(ctx, hostID)
	if err != nil {
		return nil, fmt.Errorf("get host: %w", err)
	}

	loc, err := host.Location()
	if err != nil {
		return nil, err
	}

	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date %q, expected YYYY-MM-DD", domain.ErrValidation, date)
	}

	now := s.now().UTC()
	starts, err := s.starts(ctx, host, loc, day, date, now)
	if err != nil {
		return nil, err
	}

	return &domain.SlotList{
		HostID:   host.ID,
		Date:     date,
		Timezone: host.Timezone,
		Duration: host.BookingDuration,
		Slots:    slots.Ends(starts, host.BookingDuration),
	}, nil
}

func (s *AvailabilityService) starts(
	ctx context.Context,
	host *domain.Host,
	loc *time.Location,
	day time.Time,
	date string,
	now time.Time,
) ([]time.Time, error) {
	cached, version, ok, cacheErr := s.cache.Get(ctx, host.ID, date)
	if cacheErr != nil {
		s.logger.Warn("slot cache read failed",
			logger.String("host_id", host.ID),
			logger.String("error", cacheErr.Error()),
		)
	}
	if ok && cacheErr == nil {
		fresh := make([]time.Time, 0, len(cached))
		for _, t := range cached {
			if t.After(now) {
				fresh = append(fresh, t)
			}
		}
		return fresh, nil
	}

	rules, err := s.ruleRepo.List(ctx, host.ID, true)
	if err != nil {
		return nil, fmt.Errorf("list rules: %w", err)
	}
	if len(rules) == 0 {
		return []time.Time{}, nil
	}

	from, to := slots.DayWindow(day, loc, host.BufferTime)
	bookings, err := s.bookingRepo.ListConfirmedInRange(ctx, host.ID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w", err)
	}

	starts := slots.Resolve(slots.Params{
		Rules:    rules,
		Bookings: bookings,
		Date:     day,
		Duration: host.BookingDuration,
		Buffer:   host.BufferTime,
		Location: loc,
		Now:      now,
	})

	// The version is unknown after a failed read, so the result is not cached.
	if cacheErr == nil {
		if err = s.cache.Set(ctx, host.ID, date, version, starts); err != nil {
			s.logger.Warn("slot cache write failed",
				logger.String("host_id", host.ID),
				logger.String("error", err.Error()),
			)
		}
	}

	s.logger.Debug("slots resolved",
		logger.String("host_id", host.ID),
		logger.String("date", date),
		logger.Int("rules", len(rules)),
		logger.Int("bookings", len(bookings)),
		logger.Int("slots", len(starts)),
	)

	return starts, nil
}
