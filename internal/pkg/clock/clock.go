package clock

import (
	"fmt"
	"strconv"
	"strings"
)

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time with minute resolution, scoped to a single
// calendar day in the provider's local time. It carries no timezone.
type TimeOfDay int

// Parse parses "HH:MM" or "HH:MM:SS" into a TimeOfDay. Seconds are dropped.
func Parse(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time of day %q", s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}

	return TimeOfDay(hour*60 + minute), nil
}

// MustParse is Parse that panics on malformed input. Intended for literals.
func MustParse(s string) TimeOfDay {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

// AddMinutes returns the time shifted by delta minutes, wrapping at midnight.
func (t TimeOfDay) AddMinutes(delta int) TimeOfDay {
	m := (int(t) + delta) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay(m)
}

// Before reports whether t is strictly earlier than other.
func (t TimeOfDay) Before(other TimeOfDay) bool {
	return t < other
}

// After reports whether t is strictly later than other.
func (t TimeOfDay) After(other TimeOfDay) bool {
	return t > other
}

// Sub returns the number of minutes from other to t.
func (t TimeOfDay) Sub(other TimeOfDay) int {
	return int(t) - int(other)
}

// String formats the time as zero-padded "HH:MM:SS".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d:00", int(t)/60, int(t)%60)
}

// Overlaps reports whether [aStart, aEnd) intersects [bStart, bEnd).
// Half-open semantics: an interval ending exactly where another starts
// does not overlap it.
func Overlaps(aStart, aEnd, bStart, bEnd TimeOfDay) bool {
	return aStart < bEnd && aEnd > bStart
}
