package timeoff

import (
	"net/http"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/apperror"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "time off entry not found")
	ErrNotOwner         = apperror.New(http.StatusForbidden, "not the owner of this time off entry")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "start date must not be after end date")
	ErrInvalidTimeRange = apperror.New(http.StatusBadRequest, "start time must be before end time")
)

// Entry is a provider-declared unavailability period. When StartTime and
// EndTime are nil the entry blocks the entire day; otherwise only the stated
// sub-range. Entries with BlocksBookings=false are informational and do not
// affect availability.
type Entry struct {
	ID             string
	ProviderID     string
	StartDate      time.Time
	EndDate        time.Time
	StartTime      *clock.TimeOfDay
	EndTime        *clock.TimeOfDay
	BlocksBookings bool
	Reason         *string
	CreatedAt      time.Time
}

// WholeDay reports whether the entry blocks the full day rather than a
// sub-range.
func (e *Entry) WholeDay() bool {
	return e.StartTime == nil || e.EndTime == nil
}
