// Package slots turns a host's weekly availability rules into concrete bookable
// start times. It performs no I/O.
package slots

import (
	"sort"
	"time"

	"github.com/successxx/punctual/internal/domain"
)

// Params is everything Resolve needs. Only the calendar date of Date is used; it is
// interpreted in Location.
type Params struct {
	Rules    []*domain.AvailabilityRule
	Bookings []*domain.Booking
	Date     time.Time
	Duration time.Duration
	Buffer   time.Duration
	Location *time.Location
	Now      time.Time
}

// Resolve returns the ordered UTC start times bookable on p.Date. A date with no
// active rule yields an empty, non-nil slice.
func Resolve(p Params) []time.Time {
	out := []time.Time{}

	step := int(p.Duration / time.Minute)
	if step <= 0 {
		return out
	}

	loc := p.Location
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := p.Date.Date()
	weekday := time.Date(y, m, d, 12, 0, 0, 0, loc).Weekday()

	seen := make(map[int64]struct{})
	for _, r := range p.Rules {
		if r == nil || !r.Active || r.DayOfWeek != weekday {
			continue
		}

		for minute := int(r.StartTime); minute+step <= int(r.EndTime); minute += step {
			// time.Date normalizes minute overflow and resolves DST gaps in loc.
			start := time.Date(y, m, d, 0, minute, 0, 0, loc).UTC()
			if !start.After(p.Now) {
				continue
			}
			if Blocked(start, start.Add(p.Duration), p.Buffer, p.Bookings) {
				continue
			}

			key := start.UnixNano()
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			out = append(out, start)
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Before(out[j]) })
	return out
}

// Overlaps reports whether [aStart, aEnd) and [bStart, bEnd) share an instant.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// Expand widens [start, end) by buffer on both sides.
func Expand(start, end time.Time, buffer time.Duration) (time.Time, time.Time) {
	return start.Add(-buffer), end.Add(buffer)
}

// Blocked reports whether [start, end), widened by buffer, overlaps any confirmed booking.
func Blocked(start, end time.Time, buffer time.Duration, bookings []*domain.Booking) bool {
	from, to := Expand(start, end, buffer)
	for _, b := range bookings {
		if b == nil || !b.Confirmed() {
			continue
		}
		if Overlaps(from, to, b.Start, b.End) {
			return true
		}
	}
	return false
}

// Contains reports whether t is one of the resolved starts.
func Contains(starts []time.Time, t time.Time) bool {
	i := sort.Search(len(starts), func(i int) bool { return !starts[i].Before(t) })
	return i < len(starts) && starts[i].Equal(t)
}

// DayWindow returns the UTC bounds of the local calendar date, widened by buffer.
// Bookings outside the window cannot affect Resolve for that date.
func DayWindow(date time.Time, loc *time.Location, buffer time.Duration) (time.Time, time.Time) {
	if loc == nil {
		loc = time.UTC
	}
	y, m, d := date.Date()
	from := time.Date(y, m, d, 0, 0, 0, 0, loc)
	to := time.Date(y, m, d+1, 0, 0, 0, 0, loc)
	return from.Add(-buffer).UTC(), to.Add(buffer).UTC()
}

// Ends pairs each start with its implied end.
func Ends(starts []time.Time, duration time.Duration) []domain.Slot {
	res := make([]domain.Slot, 0, len(starts))
	for _, s := range starts {
		res = append(res, domain.Slot{Start: s, End: s.Add(duration)})
	}
	return res
}
