package domain

import (
	"database/sql/driver"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time in minutes since local midnight. 24:00 is allowed
// so a rule can run to the end of the day.
type TimeOfDay int

const EndOfDay TimeOfDay = 24 * 60

func NewTimeOfDay(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// ParseTimeOfDay accepts "HH:MM" and "HH:MM:SS" (as Postgres renders time columns).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return 0, fmt.Errorf("%w: invalid time of day %q, expected HH:MM", ErrValidation, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid hour in %q", ErrValidation, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: invalid minute in %q", ErrValidation, s)
	}
	if len(parts) == 3 {
		sec, err := strconv.ParseFloat(parts[2], 64)
		if err != nil || sec != 0 {
			return 0, fmt.Errorf("%w: seconds are not supported in %q", ErrValidation, s)
		}
	}
	t := NewTimeOfDay(h, m)
	if h < 0 || m < 0 || m > 59 || t > EndOfDay {
		return 0, fmt.Errorf("%w: time of day %q out of range", ErrValidation, s)
	}
	return t, nil
}

func (t TimeOfDay) Hour() int   { return int(t) / 60 }
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	v, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

func (t TimeOfDay) Value() (driver.Value, error) {
	return t.String() + ":00", nil
}

func (t *TimeOfDay) Scan(src any) error {
	switch v := src.(type) {
	case []byte:
		return t.UnmarshalText(v)
	case string:
		return t.UnmarshalText([]byte(v))
	case time.Time:
		// Drivers render 24:00 as midnight of the following day.
		if v.Day() > 1 && v.Hour() == 0 && v.Minute() == 0 {
			*t = EndOfDay
			return nil
		}
		*t = NewTimeOfDay(v.Hour(), v.Minute())
		return nil
	default:
		return fmt.Errorf("scan time of day: unsupported type %T", src)
	}
}

// AvailabilityRule is a recurring weekly window in the host's local time.
// Rules are never deleted, only deactivated.
type AvailabilityRule struct {
	ID        string       `json:"id"`
	HostID    string       `json:"host_id"`
	DayOfWeek time.Weekday `json:"day_of_week"`
	StartTime TimeOfDay    `json:"start_time"`
	EndTime   TimeOfDay    `json:"end_time"`
	Active    bool         `json:"active"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// Overlaps reports whether two rules share a weekday and any minute of it.
func (r *AvailabilityRule) Overlaps(other *AvailabilityRule) bool {
	return r.DayOfWeek == other.DayOfWeek &&
		r.StartTime < other.EndTime && other.StartTime < r.EndTime
}

type RuleInput struct {
	DayOfWeek int       `validate:"min=0,max=6"`
	StartTime TimeOfDay `validate:"min=0,max=1440"`
	EndTime   TimeOfDay `validate:"min=0,max=1440,gtfield=StartTime"`
}
