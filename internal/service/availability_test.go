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
)

type availabilityDeps struct {
	hosts    *mocks.MockHostRepo
	rules    *mocks.MockRuleRepo
	bookings *mocks.MockBookingRepo
	cache    *mocks.MockSlotCache
}

func newAvailabilityService(t *testing.T, now time.Time) (*AvailabilityService, availabilityDeps) {
	t.Helper()
	d := availabilityDeps{
		hosts:    mocks.NewMockHostRepo(t),
		rules:    mocks.NewMockRuleRepo(t),
		bookings: mocks.NewMockBookingRepo(t),
		cache:    mocks.NewMockSlotCache(t),
	}
	svc := NewAvailabilityService(d.hosts, d.rules, d.bookings, d.cache, newTestLogger(t))
	svc.now = func() time.Time { return now }
	return svc, d
}

func TestAvailabilityService_GetSlots_Resolves(t *testing.T) {
	svc, d := newAvailabilityService(t, testNow)
	booked := []*domain.Booking{{
		ID:     "b1",
		HostID: "h1",
		Start:  slotStart, // 10:00-10:30 local
		End:    slotStart.Add(30 * time.Minute),
		Status: domain.BookingStatusConfirmed,
	}}
	// New York midnight-to-midnight on 2026-10-19 is 04:00Z-04:00Z, widened by the 15m buffer.
	from := time.Date(2026, time.October, 19, 3, 45, 0, 0, time.UTC)
	to := time.Date(2026, time.October, 20, 4, 15, 0, 0, time.UTC)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.cache.EXPECT().Get(mock.Anything, "h1", "2026-10-19").Return(nil, int64(0), false, nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().ListConfirmedInRange(mock.Anything, "h1", from, to).Return(booked, nil)
	d.cache.EXPECT().Set(mock.Anything, "h1", "2026-10-19", int64(0), mock.Anything).Return(nil)

	list, err := svc.GetSlots(context.Background(), "h1", "2026-10-19")

	require.NoError(t, err)
	assert.Equal(t, "America/New_York", list.Timezone)
	assert.Equal(t, 30*time.Minute, list.Duration)
	// 16 slots minus 09:30, 10:00 and 10:30.
	require.Len(t, list.Slots, 13)
	assert.Equal(t, time.Date(2026, time.October, 19, 13, 0, 0, 0, time.UTC), list.Slots[0].Start)
	assert.Equal(t, time.Date(2026, time.October, 19, 13, 30, 0, 0, time.UTC), list.Slots[0].End)
	for _, s := range list.Slots {
		assert.False(t, s.Start.Equal(slotStart))
	}
}

func TestAvailabilityService_GetSlots_CacheHitDropsPast(t *testing.T) {
	// 14:05 local.
	now := time.Date(2026, time.October, 19, 18, 5, 0, 0, time.UTC)
	svc, d := newAvailabilityService(t, now)
	cached := []time.Time{
		time.Date(2026, time.October, 19, 18, 0, 0, 0, time.UTC),
		time.Date(2026, time.October, 19, 18, 30, 0, 0, time.UTC),
	}

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.cache.EXPECT().Get(mock.Anything, "h1", "2026-10-19").Return(cached, int64(0), true, nil)

	list, err := svc.GetSlots(context.Background(), "h1", "2026-10-19")

	require.NoError(t, err)
	require.Len(t, list.Slots, 1)
	assert.Equal(t, cached[1], list.Slots[0].Start)
}

func TestAvailabilityService_GetSlots_NoRules(t *testing.T) {
	svc, d := newAvailabilityService(t, testNow)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.cache.EXPECT().Get(mock.Anything, "h1", "2026-10-18").Return(nil, int64(0), false, nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(nil, nil)

	list, err := svc.GetSlots(context.Background(), "h1", "2026-10-18")

	require.NoError(t, err)
	require.NotNil(t, list.Slots)
	assert.Empty(t, list.Slots)
}

func TestAvailabilityService_GetSlots_WeekdayWithoutRule(t *testing.T) {
	svc, d := newAvailabilityService(t, testNow)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.cache.EXPECT().Get(mock.Anything, "h1", "2026-10-20").Return(nil, int64(0), false, nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().ListConfirmedInRange(mock.Anything, "h1", mock.Anything, mock.Anything).Return(nil, nil)
	d.cache.EXPECT().Set(mock.Anything, "h1", "2026-10-20", int64(0), mock.Anything).Return(nil)

	list, err := svc.GetSlots(context.Background(), "h1", "2026-10-20")

	require.NoError(t, err)
	assert.Empty(t, list.Slots)
}

func TestAvailabilityService_GetSlots_CacheFailureFallsThrough(t *testing.T) {
	svc, d := newAvailabilityService(t, testNow)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.cache.EXPECT().Get(mock.Anything, "h1", "2026-10-19").Return(nil, int64(0), false, errors.New("connection refused"))
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().ListConfirmedInRange(mock.Anything, "h1", mock.Anything, mock.Anything).Return(nil, nil)

	list, err := svc.GetSlots(context.Background(), "h1", "2026-10-19")

	require.NoError(t, err)
	assert.Len(t, list.Slots, 16)
}

func TestAvailabilityService_GetSlots_WritesUnderVersionItRead(t *testing.T) {
	svc, d := newAvailabilityService(t, testNow)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)
	d.cache.EXPECT().Get(mock.Anything, "h1", "2026-10-19").Return(nil, int64(7), false, nil)
	d.rules.EXPECT().List(mock.Anything, "h1", true).Return(mondayRules(), nil)
	d.bookings.EXPECT().ListConfirmedInRange(mock.Anything, "h1", mock.Anything, mock.Anything).Return(nil, nil)
	d.cache.EXPECT().Set(mock.Anything, "h1", "2026-10-19", int64(7), mock.Anything).Return(nil)

	list, err := svc.GetSlots(context.Background(), "h1", "2026-10-19")

	require.NoError(t, err)
	assert.Len(t, list.Slots, 16)
}

func TestAvailabilityService_GetSlots_InvalidDate(t *testing.T) {
	svc, d := newAvailabilityService(t, testNow)

	d.hosts.EXPECT().GetByID(mock.Anything, "h1").Return(testHost(), nil)

	_, err := svc.GetSlots(context.Background(), "h1", "19/10/2026")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAvailabilityService_GetSlots_HostNotFound(t *testing.T) {
	svc, d := newAvailabilityService(t, testNow)

	d.hosts.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrHostNotFound)

	_, err := svc.GetSlots(context.Background(), "missing", "2026-10-19")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrHostNotFound)
}
