package notification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/successxx/punctual/internal/domain"
)

func TestFormatInterval_HostTimezone(t *testing.T) {
	host := &domain.Host{SchedulingConfig: domain.SchedulingConfig{Timezone: "America/New_York"}}
	start := time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

	got := formatInterval(host, start, start.Add(30*time.Minute))

	assert.Equal(t, "Mon 19.10.2026 10:00-10:30 (America/New_York)", got)
}

func TestFormatInterval_UnknownTimezoneFallsBackToUTC(t *testing.T) {
	host := &domain.Host{SchedulingConfig: domain.SchedulingConfig{Timezone: "Mars/Olympus"}}
	start := time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)

	got := formatInterval(host, start, start.Add(30*time.Minute))

	assert.Equal(t, "Mon 19.10.2026 14:00-14:30 (UTC)", got)
}

func testBooking() (*domain.Host, *domain.Booking) {
	host := &domain.Host{SchedulingConfig: domain.SchedulingConfig{Timezone: "America/New_York"}}
	start := time.Date(2026, 10, 19, 14, 0, 0, 0, time.UTC)
	b := &domain.Booking{
		GuestName:  "Ann *Lee*",
		GuestEmail: "ann_lee@x.io",
		Start:      start,
		End:        start.Add(30 * time.Minute),
	}
	return host, b
}

func TestCreatedText_EscapesGuestInput(t *testing.T) {
	host, b := testBooking()
	b.Notes = "see [agenda](http://x.io) `now`"

	got := createdText(host, b)

	assert.Equal(t,
		"*New booking*\n\n"+
			`Guest: Ann \*Lee\* (ann\_lee@x.io)`+"\n"+
			`When: Mon 19.10.2026 10:00-10:30 (America/New\_York)`+"\n"+
			"Notes: see \\[agenda](http://x.io) \\`now\\`",
		got,
	)
}

func TestCreatedText_OmitsEmptyNotes(t *testing.T) {
	host, b := testBooking()

	got := createdText(host, b)

	assert.NotContains(t, got, "Notes:")
	assert.Contains(t, got, `ann\_lee@x.io`)
}

func TestMessageBuilders_EscapeEmail(t *testing.T) {
	host, b := testBooking()
	next := *b
	next.Start = b.Start.Add(time.Hour)
	next.End = b.End.Add(time.Hour)

	for name, text := range map[string]string{
		"cancelled":   cancelledText(host, b),
		"rescheduled": rescheduledText(host, b, &next),
		"reminder":    reminderText(host, b),
	} {
		t.Run(name, func(t *testing.T) {
			assert.Contains(t, text, `(ann\_lee@x.io)`)
			assert.NotContains(t, text, "ann_lee")
		})
	}
}
