package scheduler

import (
	"context"
	"time"

	"github.com/successxx/punctual/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type reminderSender interface {
	SendReminders(ctx context.Context) ([]*domain.Booking, error)
}

// Scheduler claims and sends reminders for meetings entering the reminder
// window. Runs never overlap: the next one is armed after the previous returns.
type Scheduler struct {
	bookingService reminderSender
	interval       time.Duration
	logger         logger.Logger
}

func New(
	bookingService reminderSender,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		bookingService: bookingService,
		interval:       interval,
		logger:         logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	timer := time.NewTimer(s.interval)
	defer timer.Stop()

	s.logger.Info("reminder scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("reminder scheduler stopped")
			return
		case <-timer.C:
			s.dispatch(ctx)
			timer.Reset(s.interval)
		}
	}
}

// dispatch runs one claim-and-send pass bounded by the polling interval and
// returns how many reminders went out.
func (s *Scheduler) dispatch(ctx context.Context) int {
	runCtx, cancel := context.WithTimeout(ctx, s.interval)
	defer cancel()

	started := time.Now()
	reminded, err := s.bookingService.SendReminders(runCtx)
	if err != nil {
		s.logger.Error("reminder run failed",
			logger.String("error", err.Error()),
			logger.Duration("elapsed", time.Since(started)),
		)
		return 0
	}
	if len(reminded) == 0 {
		return 0
	}

	hosts := make(map[string]int, len(reminded))
	for _, b := range reminded {
		hosts[b.HostID]++
		s.logger.Debug("reminder sent",
			logger.String("booking_id", b.ID),
			logger.String("host_id", b.HostID),
			logger.String("start", b.Start.Format(time.RFC3339)),
		)
	}

	s.logger.Info("reminders dispatched",
		logger.Int("bookings", len(reminded)),
		logger.Int("hosts", len(hosts)),
		logger.Duration("elapsed", time.Since(started)),
	)
	return len(reminded)
}
