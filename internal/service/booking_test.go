package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/successxx/punctual/internal/domain"
	"github.com/successxx/punctual/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

// Monday 2026-10-19 08:00 in New York.
var testNow = time.Date(2026, time.October, 19, 12, 0, 0, 0, time.UTC)

func testHost() *domain.Host {
	return &domain.Host{
		ID:    "h1",
		Name:  "Dana",
		Email: "dana@example.com",
		SchedulingConfig: domain.SchedulingConfig{
			Timezone:        "America/New_York",
			BookingDuration: 30 * time.Minute,
			BufferTime:      15 * time.Minute,
		},
	}
}

func mondayRules() []*domain.AvailabilityRule {
	return []*domain.AvailabilityRule{{
		ID:        "r1",
		HostID:    "h1",
		DayOfWeek: time.Monday,
		StartTime: domain.NewTimeOfDay(9, 0),
		EndTime:   domain.NewTimeOfDay(17, 0),
		Active:    true,
	}}
}

// 10:00 New York time on the test Monday.
var slotStart = time.Date(2026, time.October, 19, 14, 0, 0, 0, time.UTC)

type bookingDeps struct {
	bookings *mocks.MockBookingRepo
	hosts    *mocks.MockHostRepo
	rules    *mocks.MockRuleRepo
	cache    *mocks.MockSlotCache
	notifier *mocks.MockBookingNotifier
}

func newBookingService(t *testing.T) (*BookingService, bookingDeps) {
	t.Helper()
	d := bookingDeps{
		bookings: mocks.NewMockBookingRepo(t),
		hosts:    mocks.NewMockHostRepo(t),
		rules:    mocks.NewMockRuleRepo(t),
		cache:    mocks.NewMockSlotCache(t),
		notifier: mocks.NewMockBookingNotifier(t),
	}
	svc := NewBookingService(d.bookings, d.hosts, d.rules, d.cache, d.notifier, newTestLogger(t), time.Hour)
	svc.now = func() time.Time { return testNow }
	return svc, d
}

func commitInput() domain.CommitBookingInput {
	return domain.CommitBookingInput{
		HostID:     "h1",
		Start:      slotStart,
		End:        slotStart.Add(30 * time.Minute),
		GuestName:  " Sam ",
		GuestEmail: "Sam@Example.com",
		Notes:      "intro call",
	}
}

func TestBookingService_Commit_Success(t *testing.T) {
	svc, d := newBookingService(t)
	host := testHost()

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(host, nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.MatchedBy(func(b *domain.Booking) bool {
		return b.Start.Equal(slotStart) && b.Status == domain.BookingStatusConfirmed
	}), 15*time.Minute).Return(nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "h1").Return(nil)
	d.notifier.EXPECT().NotifyBookingCreated(mock.Anything, host, mock.Anything).Return()

	booking, err := svc.Commit(context.Background(), commitInput())

	require.NoError(t, err)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "h1", booking.HostID)
	assert.Equal(t, "Sam", booking.GuestName)
	assert.Equal(t, "sam@example.com", booking.GuestEmail)
	assert.Equal(t, slotStart.Add(30*time.Minute), booking.End)
	assert.Equal(t, domain.BookingStatusConfirmed, booking.Status)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestBookingService_Commit_Conflict(t *testing.T) {
	svc, d := newBookingService(t)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything, 15*time.Minute).Return(domain.ErrSlotConflict)

	_, err := svc.Commit(context.Background(), commitInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestBookingService_Commit_StorageUnavailable(t *testing.T) {
	svc, d := newBookingService(t)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().Create(mock.Anything, mock.Anything, mock.Anything).
		Return(errors.Join(domain.ErrStorageUnavailable, errors.New("lock timeout")))

	_, err := svc.Commit(context.Background(), commitInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}

func TestBookingService_Commit_RejectedBeforeStorage(t *testing.T) {
	tests := []struct {
		name   string
		modify func(in *domain.CommitBookingInput)
	}{
		{"end before start", func(in *domain.CommitBookingInput) { in.End = in.Start.Add(-time.Minute) }},
		{"end equals start", func(in *domain.CommitBookingInput) { in.End = in.Start }},
		{"missing guest name", func(in *domain.CommitBookingInput) { in.GuestName = "" }},
		{"bad guest email", func(in *domain.CommitBookingInput) { in.GuestEmail = "not-an-email" }},
		{"missing host", func(in *domain.CommitBookingInput) { in.HostID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newBookingService(t)
			in := commitInput()
			tt.modify(&in)

			_, err := svc.Commit(context.Background(), in)

			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestBookingService_Commit_UnknownHost(t *testing.T) {
	svc, d := newBookingService(t)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(nil, domain.ErrHostNotFound)

	_, err := svc.Commit(context.Background(), commitInput())

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHostNotFound)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Commit_DurationMismatch(t *testing.T) {
	svc, d := newBookingService(t)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)

	in := commitInput()
	in.End = in.Start.Add(45 * time.Minute)
	_, err := svc.Commit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Commit_PastStart(t *testing.T) {
	svc, d := newBookingService(t)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)

	in := commitInput()
	in.Start = testNow.Add(-time.Hour)
	in.End = in.Start.Add(30 * time.Minute)
	_, err := svc.Commit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Commit_OutsideAvailability(t *testing.T) {
	svc, d := newBookingService(t)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)

	in := commitInput()
	in.Start = slotStart.Add(10 * time.Minute) // 10:10, not on the slot grid
	in.End = in.Start.Add(30 * time.Minute)
	_, err := svc.Commit(context.Background(), in)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestBookingService_Cancel_Success(t *testing.T) {
	svc, d := newBookingService(t)
	host := testHost()
	cancelled := &domain.Booking{ID: "b1", HostID: "h1", Status: domain.BookingStatusCancelled}

	d.bookings.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, true, nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "h1").Return(nil)
	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(host, nil)
	d.notifier.EXPECT().NotifyBookingCancelled(mock.Anything, host, cancelled).Return()

	booking, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Cancel_AlreadyCancelled(t *testing.T) {
	svc, d := newBookingService(t)
	cancelled := &domain.Booking{ID: "b1", HostID: "h1", Status: domain.BookingStatusCancelled}

	d.bookings.EXPECT().Cancel(mock.Anything, "b1").Return(cancelled, false, nil)

	booking, err := svc.Cancel(context.Background(), "b1")

	require.NoError(t, err)
	assert.Equal(t, domain.BookingStatusCancelled, booking.Status)
}

func TestBookingService_Cancel_NotFound(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().Cancel(mock.Anything, "missing").Return(nil, false, domain.ErrBookingNotFound)

	_, err := svc.Cancel(context.Background(), "missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingNotFound)
}

func TestBookingService_Reschedule_Success(t *testing.T) {
	svc, d := newBookingService(t)
	host := testHost()
	old := &domain.Booking{
		ID: "b1", HostID: "h1", GuestName: "Sam", GuestEmail: "sam@example.com",
		Start: slotStart, End: slotStart.Add(30 * time.Minute), Status: domain.BookingStatusConfirmed,
	}
	prev := *old
	prev.Status = domain.BookingStatusCancelled
	newStart := slotStart.Add(2 * time.Hour)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(old, nil)
	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(host, nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().Reschedule(mock.Anything, "b1", mock.MatchedBy(func(b *domain.Booking) bool {
		return b.RescheduledFrom != nil && *b.RescheduledFrom == "b1" && b.Start.Equal(newStart)
	}), 15*time.Minute).Return(&prev, nil)
	d.cache.EXPECT().Invalidate(mock.Anything, "h1").Return(nil)
	d.notifier.EXPECT().NotifyBookingRescheduled(mock.Anything, host, &prev, mock.Anything).Return()

	next, err := svc.Reschedule(context.Background(), domain.RescheduleInput{
		BookingID: "b1",
		Start:     newStart,
		End:       newStart.Add(30 * time.Minute),
	})

	require.NoError(t, err)
	assert.NotEqual(t, "b1", next.ID)
	assert.Equal(t, "Sam", next.GuestName)
	assert.Equal(t, domain.BookingStatusConfirmed, next.Status)

	time.Sleep(50 * time.Millisecond)
}

func TestBookingService_Reschedule_CancelledBooking(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").
		Return(&domain.Booking{ID: "b1", HostID: "h1", Status: domain.BookingStatusCancelled}, nil)

	_, err := svc.Reschedule(context.Background(), domain.RescheduleInput{
		BookingID: "b1",
		Start:     slotStart,
		End:       slotStart.Add(30 * time.Minute),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBookingCancelled)
}

func TestBookingService_Reschedule_Conflict(t *testing.T) {
	svc, d := newBookingService(t)
	old := &domain.Booking{ID: "b1", HostID: "h1", Status: domain.BookingStatusConfirmed}

	d.bookings.EXPECT().GetByID(mock.Anything, "b1").Return(old, nil)
	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().Reschedule(mock.Anything, "b1", mock.Anything, 15*time.Minute).Return(nil, domain.ErrSlotConflict)

	_, err := svc.Reschedule(context.Background(), domain.RescheduleInput{
		BookingID: "b1",
		Start:     slotStart,
		End:       slotStart.Add(30 * time.Minute),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSlotConflict)
}

func TestBookingService_SendReminders(t *testing.T) {
	svc, d := newBookingService(t)
	host := testHost()
	due := []*domain.Booking{
		{ID: "b1", HostID: "h1", Start: testNow.Add(20 * time.Minute)},
		{ID: "b2", HostID: "h1", Start: testNow.Add(50 * time.Minute)},
	}

	d.bookings.EXPECT().ClaimDueReminders(mock.Anything, testNow, testNow.Add(time.Hour)).Return(due, nil)
	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(host, nil).Once()
	d.notifier.EXPECT().NotifyBookingReminder(mock.Anything, host, due[0]).Return()
	d.notifier.EXPECT().NotifyBookingReminder(mock.Anything, host, due[1]).Return()

	result, err := svc.SendReminders(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 2)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestBookingService_SendReminders_NoneDue(t *testing.T) {
	svc, d := newBookingService(t)

	d.bookings.EXPECT().ClaimDueReminders(mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)

	result, err := svc.SendReminders(context.Background())

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestBookingService_ListByHost(t *testing.T) {
	svc, d := newBookingService(t)
	from := testNow
	to := testNow.Add(7 * 24 * time.Hour)

	d.bookings.EXPECT().ListByHost(mock.Anything, "h1", from, to).
		Return([]*domain.Booking{{ID: "b1", HostID: "h1"}}, nil)

	result, err := svc.ListByHost(context.Background(), "h1", from, to)

	require.NoError(t, err)
	assert.Len(t, result, 1)

	_, err = svc.ListByHost(context.Background(), "h1", to, from)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
