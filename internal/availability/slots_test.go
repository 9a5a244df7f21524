package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbook/beauty-booking-backend/internal/booking"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
	"github.com/glowbook/beauty-booking-backend/internal/timeoff"
)

func shift(start, end string) schedule.WorkingShift {
	return schedule.WorkingShift{
		Weekday:   time.Monday,
		StartTime: clock.MustParse(start),
		EndTime:   clock.MustParse(end),
		ShiftType: schedule.ShiftRegular,
	}
}

func findSlot(t *testing.T, slots []TimeSlot, start string) TimeSlot {
	t.Helper()
	want := clock.MustParse(start)
	for _, s := range slots {
		if s.Start == want {
			return s
		}
	}
	t.Fatalf("no slot starting at %s", start)
	return TimeSlot{}
}

func TestGenerateSlotsFullDay(t *testing.T) {
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, DayBlocks{})

	// 09:00 through 16:30 inclusive at a 15 minute stride.
	require.Len(t, slots, 31)
	assert.Equal(t, clock.MustParse("09:00"), slots[0].Start)
	assert.Equal(t, clock.MustParse("09:30"), slots[0].End)
	assert.Equal(t, clock.MustParse("16:30"), slots[len(slots)-1].Start)
	assert.Equal(t, clock.MustParse("17:00"), slots[len(slots)-1].End)

	for _, s := range slots {
		assert.True(t, s.Available)
		assert.Empty(t, s.Reason)
		assert.Equal(t, schedule.ShiftRegular, s.ShiftType)
	}
}

func TestGenerateSlotsDiscardsTrailingPartial(t *testing.T) {
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "10:00")}, 45, DayBlocks{})

	// 09:30 + 45 min would run past 10:00 and must not appear, shortened
	// or otherwise.
	require.Len(t, slots, 2)
	assert.Equal(t, clock.MustParse("09:00"), slots[0].Start)
	assert.Equal(t, clock.MustParse("09:15"), slots[1].Start)
	assert.Equal(t, clock.MustParse("10:00"), slots[1].End)
}

func TestGenerateSlotsEmptyWhenDurationExceedsShift(t *testing.T) {
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "09:30")}, 45, DayBlocks{})
	assert.Empty(t, slots)
}

func TestGenerateSlotsBreakBoundaries(t *testing.T) {
	blocks := DayBlocks{
		Breaks: []Break{{Name: "Lunch", Start: clock.MustParse("12:00"), End: clock.MustParse("13:00")}},
	}
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, blocks)

	// Half-open intervals: touching the break is fine, overlapping is not.
	assert.True(t, findSlot(t, slots, "11:30").Available)

	blocked := findSlot(t, slots, "11:45")
	assert.False(t, blocked.Available)
	assert.Equal(t, "Lunch", blocked.Reason)

	assert.False(t, findSlot(t, slots, "12:00").Available)
	assert.False(t, findSlot(t, slots, "12:45").Available)
	assert.True(t, findSlot(t, slots, "13:00").Available)
}

func TestGenerateSlotsBookingBlocks(t *testing.T) {
	blocks := DayBlocks{
		Bookings: []booking.Booking{{
			StartTime: clock.MustParse("12:00"),
			EndTime:   clock.MustParse("12:30"),
			Status:    booking.StatusConfirmed,
		}},
	}
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, blocks)

	assert.True(t, findSlot(t, slots, "11:30").Available)

	blocked := findSlot(t, slots, "11:45")
	assert.False(t, blocked.Available)
	assert.Equal(t, "Already booked", blocked.Reason)

	assert.False(t, findSlot(t, slots, "12:00").Available)
	assert.True(t, findSlot(t, slots, "12:30").Available)
}

func TestGenerateSlotsWholeDayTimeOff(t *testing.T) {
	blocks := DayBlocks{
		TimeOff: []timeoff.Entry{{BlocksBookings: true}},
	}
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, blocks)

	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, "Time off", s.Reason)
	}
}

func TestGenerateSlotsTimeOffCarriesEntryReason(t *testing.T) {
	reason := "Hajj pilgrimage"
	start := clock.MustParse("12:00")
	end := clock.MustParse("13:00")

	wholeDay := DayBlocks{
		TimeOff: []timeoff.Entry{{BlocksBookings: true, Reason: &reason}},
	}
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, wholeDay)
	require.NotEmpty(t, slots)
	for _, s := range slots {
		assert.False(t, s.Available)
		assert.Equal(t, reason, s.Reason)
	}

	subRange := DayBlocks{
		TimeOff: []timeoff.Entry{{StartTime: &start, EndTime: &end, BlocksBookings: true, Reason: &reason}},
	}
	slots = GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, subRange)
	assert.Equal(t, reason, findSlot(t, slots, "12:00").Reason)

	// An empty reason string still falls back to the generic label.
	empty := ""
	slots = GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, DayBlocks{
		TimeOff: []timeoff.Entry{{BlocksBookings: true, Reason: &empty}},
	})
	assert.Equal(t, "Time off", slots[0].Reason)
}

func TestGenerateSlotsPartialTimeOff(t *testing.T) {
	start := clock.MustParse("14:00")
	end := clock.MustParse("15:00")
	blocks := DayBlocks{
		TimeOff: []timeoff.Entry{{StartTime: &start, EndTime: &end, BlocksBookings: true}},
	}
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, blocks)

	assert.True(t, findSlot(t, slots, "13:30").Available)
	assert.False(t, findSlot(t, slots, "13:45").Available)
	assert.False(t, findSlot(t, slots, "14:45").Available)
	assert.True(t, findSlot(t, slots, "15:00").Available)
}

func TestGenerateSlotsBlockPriority(t *testing.T) {
	// When a slot is hit by time off, a break and a booking at once, the
	// reason reported is time off.
	toStart := clock.MustParse("12:00")
	toEnd := clock.MustParse("13:00")
	blocks := DayBlocks{
		TimeOff: []timeoff.Entry{{StartTime: &toStart, EndTime: &toEnd, BlocksBookings: true}},
		Breaks:  []Break{{Name: "Lunch", Start: clock.MustParse("12:00"), End: clock.MustParse("13:00")}},
		Bookings: []booking.Booking{{
			StartTime: clock.MustParse("12:00"),
			EndTime:   clock.MustParse("12:30"),
		}},
	}
	slots := GenerateSlots([]schedule.WorkingShift{shift("09:00", "17:00")}, 30, blocks)

	blocked := findSlot(t, slots, "12:00")
	assert.False(t, blocked.Available)
	assert.Equal(t, "Time off", blocked.Reason)
}

func TestGenerateSlotsMultipleShifts(t *testing.T) {
	shifts := []schedule.WorkingShift{
		shift("09:00", "12:00"),
		{
			Weekday:   time.Monday,
			StartTime: clock.MustParse("14:00"),
			EndTime:   clock.MustParse("16:00"),
			ShiftType: schedule.ShiftWomenOnly,
		},
	}
	slots := GenerateSlots(shifts, 60, DayBlocks{})

	// Morning: 09:00..11:00, afternoon: 14:00..15:00. No slot may bridge
	// the gap between shifts.
	require.Len(t, slots, 9+5)
	assert.Equal(t, clock.MustParse("11:00"), slots[8].Start)
	assert.Equal(t, clock.MustParse("14:00"), slots[9].Start)
	assert.Equal(t, schedule.ShiftWomenOnly, slots[9].ShiftType)
}
