package schedule

import (
	"net/http"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/apperror"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "schedule not found")
	ErrShiftNotFound    = apperror.New(http.StatusNotFound, "shift not found")
	ErrBreakNotFound    = apperror.New(http.StatusNotFound, "break not found")
	ErrNoActiveSchedule = apperror.New(http.StatusNotFound, "no active schedule for this date")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "not the owner of this schedule")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidShiftType = apperror.New(http.StatusBadRequest, "invalid shift type")
)

// ShiftType classifies a working shift; slots generated from a shift
// inherit its type.
type ShiftType string

const (
	ShiftRegular   ShiftType = "regular"
	ShiftInstant   ShiftType = "instant"
	ShiftEmergency ShiftType = "emergency"
	ShiftWomenOnly ShiftType = "women_only"
)

// ValidShiftType reports whether t is a known shift type.
func ValidShiftType(t ShiftType) bool {
	switch t {
	case ShiftRegular, ShiftInstant, ShiftEmergency, ShiftWomenOnly:
		return true
	}
	return false
}

// Schedule is a provider's weekly working pattern. A provider may keep
// several (e.g. a summer schedule); for any date exactly one is active,
// selected by effective range and then highest priority.
type Schedule struct {
	ID             string
	ProviderID     string
	Name           string
	EffectiveFrom  time.Time
	EffectiveUntil *time.Time
	Priority       int
	IsActive       bool
	CreatedAt      time.Time
}

// WorkingShift is a contiguous working interval on a weekday within a
// schedule. Shifts are assumed to lie within a single day.
type WorkingShift struct {
	ID         string
	ScheduleID string
	Weekday    time.Weekday
	StartTime  clock.TimeOfDay
	EndTime    clock.TimeOfDay
	ShiftType  ShiftType
}

// FixedBreak is a schedule-authored recurring blocked interval (e.g. lunch).
type FixedBreak struct {
	ID         string
	ScheduleID string
	Weekday    time.Weekday
	Name       string
	BreakType  string
	StartTime  clock.TimeOfDay
	EndTime    clock.TimeOfDay
}
