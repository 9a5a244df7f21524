package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/prayer"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
)

func TestCollectBreaksFixedOnly(t *testing.T) {
	fixed := []schedule.FixedBreak{
		{Name: "Lunch", BreakType: "lunch", StartTime: clock.MustParse("12:00"), EndTime: clock.MustParse("13:00")},
		{Name: "", BreakType: "rest", StartTime: clock.MustParse("15:00"), EndTime: clock.MustParse("15:30")},
	}

	breaks := collectBreaks(fixed, nil, 15)

	require.Len(t, breaks, 2)
	assert.Equal(t, "Lunch", breaks[0].Name)
	// An unnamed break falls back to its type.
	assert.Equal(t, "rest", breaks[1].Name)
	assert.Equal(t, clock.MustParse("15:00"), breaks[1].Start)
}

func TestCollectBreaksPrayerWindowsWidened(t *testing.T) {
	windows := []prayer.Window{
		{Name: "Dhuhr", Start: clock.MustParse("12:10"), End: clock.MustParse("12:40")},
	}

	breaks := collectBreaks(nil, windows, 15)

	require.Len(t, breaks, 1)
	assert.Equal(t, "Dhuhr Prayer", breaks[0].Name)
	assert.Equal(t, clock.MustParse("11:55"), breaks[0].Start)
	assert.Equal(t, clock.MustParse("12:55"), breaks[0].End)
}

func TestCollectBreaksPrayerClampedToDay(t *testing.T) {
	windows := []prayer.Window{
		{Name: "Fajr", Start: clock.MustParse("00:05"), End: clock.MustParse("00:35")},
		{Name: "Isha", Start: clock.MustParse("23:20"), End: clock.MustParse("23:50")},
	}

	breaks := collectBreaks(nil, windows, 20)

	require.Len(t, breaks, 2)
	assert.Equal(t, clock.TimeOfDay(0), breaks[0].Start)
	assert.Equal(t, clock.TimeOfDay(24*60), breaks[1].End)
}

func TestCollectBreaksZeroFlexibility(t *testing.T) {
	windows := []prayer.Window{
		{Name: "Asr", Start: clock.MustParse("15:30"), End: clock.MustParse("16:00")},
	}

	breaks := collectBreaks(nil, windows, 0)

	require.Len(t, breaks, 1)
	assert.Equal(t, clock.MustParse("15:30"), breaks[0].Start)
	assert.Equal(t, clock.MustParse("16:00"), breaks[0].End)
}
