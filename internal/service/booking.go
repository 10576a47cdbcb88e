package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/successxx/punctual/internal/domain"
	"github.com/successxx/punctual/internal/service/ports"
	"github.com/successxx/punctual/internal/slots"
	"github.com/wb-go/wbf/logger"
)

// BookingService is the only writer of bookings. Input is checked before storage is
// touched; the repository owns the atomic overlap check.
type BookingService struct {
	bookingRepo  ports.BookingRepo
	hostRepo     ports.HostRepo
	ruleRepo     ports.RuleRepo
	cache        ports.SlotCache
	notifier     ports.BookingNotifier
	logger       logger.Logger
	reminderLead time.Duration
	now          func() time.Time
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	hostRepo ports.HostRepo,
	ruleRepo ports.RuleRepo,
	cache ports.SlotCache,
	notifier ports.BookingNotifier,
	logger logger.Logger,
	reminderLead time.Duration,
) *BookingService {
	return &BookingService{
		bookingRepo:  bookingRepo,
		hostRepo:     hostRepo,
		ruleRepo:     ruleRepo,
		cache:        cache,
		notifier:     notifier,
		logger:       logger,
		reminderLead: reminderLead,
		now:          time.Now,
	}
}

func (s *BookingService) Commit(ctx context.Context, input domain.CommitBookingInput) (*domain.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.End.After(input.Start) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	host, err := s.hostRepo.GetByID(ctx, input.HostID)
	if err != nil {
		return nil, fmt.Errorf("check host: %w", err)
	}

	start, end := input.Start.UTC(), input.End.UTC()
	if err = s.checkSlot(ctx, host, start, end); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	booking := &domain.Booking{
		ID:         uuid.New().String(),
		HostID:     host.ID,
		GuestName:  strings.TrimSpace(input.GuestName),
		GuestEmail: strings.ToLower(strings.TrimSpace(input.GuestEmail)),
		Notes:      input.Notes,
		Start:      start,
		End:        end,
		Status:     domain.BookingStatusConfirmed,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err = s.bookingRepo.Create(ctx, booking, host.BufferTime); err != nil {
		s.logCommitFailure(host.ID, start, err)
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking confirmed",
		logger.String("booking_id", booking.ID),
		logger.String("host_id", host.ID),
		logger.String("start", start.Format(time.RFC3339)),
	)

	s.invalidate(ctx, host.ID)
	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), host, booking)

	return booking, nil
}

// Cancel frees the booking's interval. Cancelling a cancelled booking returns it unchanged.
func (s *BookingService) Cancel(ctx context.Context, id string) (*domain.Booking, error) {
	booking, changed, err := s.bookingRepo.Cancel(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("cancel booking: %w", err)
	}
	if !changed {
		return booking, nil
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("host_id", booking.HostID),
	)
	s.invalidate(ctx, booking.HostID)

	host, err := s.hostRepo.GetByID(ctx, booking.HostID)
	if err != nil {
		s.logger.Error("failed to get host for notification",
			logger.String("host_id", booking.HostID),
			logger.String("error", err.Error()),
		)
		return booking, nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), host, booking)

	return booking, nil
}

// Reschedule moves a confirmed booking to a new interval. The old booking is cancelled
// and the new one committed in a single transaction.
func (s *BookingService) Reschedule(ctx context.Context, input domain.RescheduleInput) (*domain.Booking, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}
	if !input.End.After(input.Start) {
		return nil, fmt.Errorf("%w: end_time must be after start_time", domain.ErrValidation)
	}

	old, err := s.bookingRepo.GetByID(ctx, input.BookingID)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if !old.Confirmed() {
		return nil, domain.ErrBookingCancelled
	}

	host, err := s.hostRepo.GetByID(ctx, old.HostID)
	if err != nil {
		return nil, fmt.Errorf("check host: %w", err)
	}

	start, end := input.Start.UTC(), input.End.UTC()
	if err = s.checkSlot(ctx, host, start, end); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	oldID := old.ID
	next := &domain.Booking{
		ID:              uuid.New().String(),
		HostID:          host.ID,
		GuestName:       old.GuestName,
		GuestEmail:      old.GuestEmail,
		Notes:           old.Notes,
		Start:           start,
		End:             end,
		Status:          domain.BookingStatusConfirmed,
		RescheduledFrom: &oldID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	prev, err := s.bookingRepo.Reschedule(ctx, oldID, next, host.BufferTime)
	if err != nil {
		s.logCommitFailure(host.ID, start, err)
		return nil, fmt.Errorf("reschedule booking: %w", err)
	}

	s.logger.Info("booking rescheduled",
		logger.String("booking_id", next.ID),
		logger.String("rescheduled_from", oldID),
		logger.String("host_id", host.ID),
		logger.String("start", start.Format(time.RFC3339)),
	)

	s.invalidate(ctx, host.ID)
	go s.notifier.NotifyBookingRescheduled(context.WithoutCancel(ctx), host, prev, next)

	return next, nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) ListByHost(ctx context.Context, hostID string, from, to time.Time) ([]*domain.Booking, error) {
	if !to.After(from) {
		return nil, fmt.Errorf("%w: to must be after from", domain.ErrValidation)
	}

	return s.bookingRepo.ListByHost(ctx, hostID, from.UTC(), to.UTC())
}

// SendReminders claims confirmed bookings starting within the reminder lead time and
// notifies their hosts. Each booking is claimed once.
func (s *BookingService) SendReminders(ctx context.Context) ([]*domain.Booking, error) {
	now := s.now().UTC()
	due, err := s.bookingRepo.ClaimDueReminders(ctx, now, now.Add(s.reminderLead))
	if err != nil {
		return nil, fmt.Errorf("claim reminders: %w", err)
	}

	if len(due) > 0 {
		s.logger.Info("booking reminders due",
			logger.Int("count", len(due)),
		)

		go s.notifyReminders(context.WithoutCancel(ctx), due)
	}

	return due, nil
}

func (s *BookingService) notifyReminders(ctx context.Context, bookings []*domain.Booking) {
	hosts := make(map[string]*domain.Host)
	for _, b := range bookings {
		host, ok := hosts[b.HostID]
		if !ok {
			var err error
			host, err = s.hostRepo.GetByID(ctx, b.HostID)
			if err != nil {
				s.logger.Error("failed to get host for reminder",
					logger.String("host_id", b.HostID),
				)
				continue
			}
			hosts[b.HostID] = host
		}

		s.notifier.NotifyBookingReminder(ctx, host, b)
	}
}

// checkSlot rejects intervals that could never be booked regardless of other bookings.
func (s *BookingService) checkSlot(ctx context.Context, host *domain.Host, start, end time.Time) error {
	if !start.After(s.now()) {
		return fmt.Errorf("%w: start_time is in the past", domain.ErrValidation)
	}
	if end.Sub(start) != host.BookingDuration {
		return fmt.Errorf("%w: duration must be %d minutes",
			domain.ErrValidation, int(host.BookingDuration/time.Minute))
	}

	loc, err := host.Location()
	if err != nil {
		return err
	}

	rules, err := s.ruleRepo.List(ctx, host.ID, true)
	if err != nil {
		return fmt.Errorf("list rules: %w", err)
	}

	starts := slots.Resolve(slots.Params{
		Rules:    rules,
		Date:     start.In(loc),
		Duration: host.BookingDuration,
		Location: loc,
		Now:      s.now(),
	})
	if !slots.Contains(starts, start) {
		return fmt.Errorf("%w: start_time is outside the host's availability", domain.ErrValidation)
	}

	return nil
}

func (s *BookingService) logCommitFailure(hostID string, start time.Time, err error) {
	switch {
	case errors.Is(err, domain.ErrSlotConflict):
		s.logger.Info("slot already taken",
			logger.String("host_id", hostID),
			logger.String("start", start.Format(time.RFC3339)),
		)
	case errors.Is(err, domain.ErrStorageUnavailable):
		s.logger.Warn("booking commit aborted, storage unavailable",
			logger.String("host_id", hostID),
			logger.String("error", err.Error()),
		)
	}
}

func (s *BookingService) invalidate(ctx context.Context, hostID string) {
	if err := s.cache.Invalidate(ctx, hostID); err != nil {
		s.logger.Warn("slot cache invalidation failed",
			logger.String("host_id", hostID),
			logger.String("error", err.Error()),
		)
	}
}
