package availability

import (
	"github.com/glowbook/beauty-booking-backend/internal/booking"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
	"github.com/glowbook/beauty-booking-backend/internal/timeoff"
)

// DayBlocks holds everything that can make a slot unavailable on one date.
// Time off entries are assumed pre-filtered to the date and to blocking
// entries; bookings to calendar-occupying statuses.
type DayBlocks struct {
	TimeOff  []timeoff.Entry
	Breaks   []Break
	Bookings []booking.Booking
}

// GenerateSlots walks each shift in SlotStrideMinutes steps and emits every
// candidate of durationMinutes that fits entirely inside the shift. A
// candidate running past the shift end is discarded, not shortened. Blocking
// checks run in fixed priority order: time off, then breaks, then bookings;
// the first match supplies the reason.
func GenerateSlots(shifts []schedule.WorkingShift, durationMinutes int, blocks DayBlocks) []TimeSlot {
	var slots []TimeSlot

	for _, shift := range shifts {
		for start := shift.StartTime; ; start = start.AddMinutes(SlotStrideMinutes) {
			end := start.AddMinutes(durationMinutes)
			if end.After(shift.EndTime) || end.Before(start) {
				break
			}

			slot := TimeSlot{
				Start:     start,
				End:       end,
				Available: true,
				ShiftType: shift.ShiftType,
			}
			if reason, blocked := blockReason(start, end, blocks); blocked {
				slot.Available = false
				slot.Reason = reason
			}
			slots = append(slots, slot)
		}
	}

	return slots
}

func blockReason(start, end clock.TimeOfDay, blocks DayBlocks) (string, bool) {
	for _, e := range blocks.TimeOff {
		if e.WholeDay() || clock.Overlaps(start, end, *e.StartTime, *e.EndTime) {
			return timeOffReason(e), true
		}
	}

	for _, b := range blocks.Breaks {
		if clock.Overlaps(start, end, b.Start, b.End) {
			return b.Name, true
		}
	}

	for _, b := range blocks.Bookings {
		if clock.Overlaps(start, end, b.StartTime, b.EndTime) {
			return "Already booked", true
		}
	}

	return "", false
}

func timeOffReason(e timeoff.Entry) string {
	if e.Reason != nil && *e.Reason != "" {
		return *e.Reason
	}
	return "Time off"
}
