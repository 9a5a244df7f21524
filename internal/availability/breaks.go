package availability

import (
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/prayer"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
)

// collectBreaks merges schedule-authored fixed breaks with prayer windows
// into one blocked-interval list. Prayer windows are widened on both sides
// by the provider's flexibility minutes, acknowledging that observance does
// not start and stop on the minute.
func collectBreaks(fixed []schedule.FixedBreak, windows []prayer.Window, flexibilityMinutes int) []Break {
	breaks := make([]Break, 0, len(fixed)+len(windows))

	for _, b := range fixed {
		name := b.Name
		if name == "" {
			name = b.BreakType
		}
		breaks = append(breaks, Break{
			Name:  name,
			Start: b.StartTime,
			End:   b.EndTime,
		})
	}

	for _, w := range windows {
		// Clamp to the day edges so widening never wraps past midnight.
		start := int(w.Start) - flexibilityMinutes
		if start < 0 {
			start = 0
		}
		end := int(w.End) + flexibilityMinutes
		if end > 24*60 {
			end = 24 * 60
		}
		breaks = append(breaks, Break{
			Name:  w.Name + " Prayer",
			Start: clock.TimeOfDay(start),
			End:   clock.TimeOfDay(end),
		})
	}

	return breaks
}
