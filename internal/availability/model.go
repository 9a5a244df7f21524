package availability

import (
	"net/http"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/apperror"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
)

var (
	ErrSlotUnavailable = apperror.New(http.StatusConflict, "the requested slot is not available")
	ErrDateInPast      = apperror.New(http.StatusBadRequest, "date must not be in the past")
)

// SlotStrideMinutes is the interval between consecutive candidate slot
// starts, independent of the service duration.
const SlotStrideMinutes = 15

// maxAlternatives caps the number of alternative slots suggested when a
// requested slot is taken.
const maxAlternatives = 5

// TimeSlot is one bookable candidate within a working shift. Unavailable
// slots carry the first blocking reason found; available ones carry none.
type TimeSlot struct {
	Start     clock.TimeOfDay
	End       clock.TimeOfDay
	Available bool
	ShiftType schedule.ShiftType
	Reason    string
}

// Break is a blocked interval within a day, aggregated from schedule-authored
// fixed breaks and resolved prayer windows.
type Break struct {
	Name  string
	Start clock.TimeOfDay
	End   clock.TimeOfDay
}

// DayAvailability is the generated slot grid for one provider and date.
type DayAvailability struct {
	ProviderID string
	Date       time.Time
	Slots      []TimeSlot
}

// SlotsRequest asks for the slot grid of a provider on a date. ServiceID is
// optional; when empty the default consultation duration is used.
type SlotsRequest struct {
	ProviderID string
	ServiceID  string
	Date       time.Time
}

// CheckRequest asks whether one specific slot is bookable.
type CheckRequest struct {
	ProviderID string
	ServiceID  string
	Date       time.Time
	StartTime  clock.TimeOfDay
}

// CheckResult is the verdict for a CheckRequest. Alternatives lists up to
// five bookable slots on the same day when the requested one is not.
type CheckResult struct {
	Available    bool
	Reason       string
	Start        clock.TimeOfDay
	End          clock.TimeOfDay
	Alternatives []TimeSlot
}

// BookRequest books one slot for the authenticated customer.
type BookRequest struct {
	ProviderID string
	ServiceID  string
	Date       time.Time
	StartTime  clock.TimeOfDay
	Notes      *string
}
