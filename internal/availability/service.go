package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/glowbook/beauty-booking-backend/internal/booking"
	"github.com/glowbook/beauty-booking-backend/internal/catalog"
	"github.com/glowbook/beauty-booking-backend/internal/prayer"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
	"github.com/glowbook/beauty-booking-backend/internal/timeoff"
)

// Cache stores generated slot grids. Implementations must treat every miss
// or failure as "not cached"; availability is always recomputable.
type Cache interface {
	Get(ctx context.Context, key string) ([]TimeSlot, bool)
	Set(ctx context.Context, key string, slots []TimeSlot)
	Invalidate(ctx context.Context, prefix string)
}

// NoopCache disables caching. Used when no Redis instance is configured.
type NoopCache struct{}

func (NoopCache) Get(context.Context, string) ([]TimeSlot, bool) { return nil, false }
func (NoopCache) Set(context.Context, string, []TimeSlot) {}
func (NoopCache) Invalidate(context.Context, string) {}

type Service interface {
	// GetAvailableSlots returns the provider's slot grid for a date, with
	// slots outside the advance booking window already removed.
	GetAvailableSlots(ctx context.Context, req SlotsRequest) (*DayAvailability, error)

	// CheckSlot reports whether one specific slot can be booked and, when it
	// cannot, why and which nearby slots still can.
	CheckSlot(ctx context.Context, req CheckRequest) (*CheckResult, error)

	// BookSlot re-validates the slot and creates a pending booking for the
	// customer. The database constraint stays the final double-booking guard.
	BookSlot(ctx context.Context, customerID string, req BookRequest) (*booking.Booking, error)
}

type service struct {
	providerSvc provider.Service
	catalogSvc  catalog.CatalogService
	scheduleSvc schedule.Service
	timeoffSvc  timeoff.Service
	bookingSvc  booking.Service
	prayers     prayer.Resolver
	cache       Cache
	logger      *zap.Logger
	now         func() time.Time
}

func NewService(
	providerSvc provider.Service,
	catalogSvc catalog.CatalogService,
	scheduleSvc schedule.Service,
	timeoffSvc timeoff.Service,
	bookingSvc booking.Service,
	prayers prayer.Resolver,
	cache Cache,
	logger *zap.Logger,
) Service {
	return &service{
		providerSvc: providerSvc,
		catalogSvc:  catalogSvc,
		scheduleSvc: scheduleSvc,
		timeoffSvc:  timeoffSvc,
		bookingSvc:  bookingSvc,
		prayers:     prayers,
		cache:       cache,
		logger:      logger,
		now:         time.Now,
	}
}

func cacheKey(providerID string, date time.Time, durationMinutes int) string {
	return fmt.Sprintf("slots:%s:%s:%d", providerID, date.Format("2006-01-02"), durationMinutes)
}

func cacheDayPrefix(providerID string, date time.Time) string {
	return fmt.Sprintf("slots:%s:%s:", providerID, date.Format("2006-01-02"))
}

// day holds the computed inputs and full slot grid for one provider/date,
// before the advance booking window is applied.
type day struct {
	settings provider.AvailabilitySettings
	duration int
	slots    []TimeSlot
}

func (s *service) computeDay(ctx context.Context, providerID, serviceID string, date time.Time) (*day, error) {
	p, err := s.providerSvc.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	settings, _, err := s.providerSvc.ResolveSettings(ctx, providerID)
	if err != nil {
		return nil, err
	}

	duration, err := s.catalogSvc.ResolveDuration(ctx, serviceID)
	if err != nil {
		return nil, err
	}

	key := cacheKey(providerID, date, duration)
	if slots, ok := s.cache.Get(ctx, key); ok {
		return &day{settings: settings, duration: duration, slots: slots}, nil
	}

	sched, err := s.scheduleSvc.ActiveScheduleFor(ctx, providerID, date)
	if err != nil {
		// A provider with no schedule in effect simply has no slots.
		if errors.Is(err, schedule.ErrNoActiveSchedule) {
			return &day{settings: settings, duration: duration}, nil
		}
		return nil, err
	}

	shifts, err := s.scheduleSvc.ShiftsFor(ctx, sched.ID, date.Weekday())
	if err != nil {
		return nil, err
	}
	if len(shifts) == 0 {
		return &day{settings: settings, duration: duration}, nil
	}

	fixed, err := s.scheduleSvc.FixedBreaksFor(ctx, sched.ID, date.Weekday())
	if err != nil {
		return nil, err
	}

	var windows []prayer.Window
	if settings.PrayerBreaksEnabled && p.City != nil {
		windows, err = s.prayers.Timings(ctx, *p.City, date)
		if err != nil {
			// Degrade to fixed breaks only rather than failing the whole day.
			s.logger.Warn("prayer timings unavailable",
				zap.String("provider_id", providerID),
				zap.String("city", *p.City),
				zap.Error(err))
			windows = nil
		}
	}

	timeOff, err := s.timeoffSvc.ListForDate(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	bookings, err := s.bookingSvc.ListForDay(ctx, providerID, date)
	if err != nil {
		return nil, err
	}

	slots := GenerateSlots(shifts, duration, DayBlocks{
		TimeOff:  timeOff,
		Breaks:   collectBreaks(fixed, windows, settings.PrayerFlexibilityMinutes),
		Bookings: bookings,
	})

	s.cache.Set(ctx, key, slots)
	return &day{settings: settings, duration: duration, slots: slots}, nil
}

// withinWindow reports whether a slot starting at start on date falls inside
// the advance booking window [now + min hours, now + max days].
func withinWindow(date time.Time, start TimeSlot, settings provider.AvailabilitySettings, now time.Time) bool {
	abs := time.Date(date.Year(), date.Month(), date.Day(),
		int(start.Start)/60, int(start.Start)%60, 0, 0, now.Location())

	earliest := now.Add(time.Duration(settings.MinAdvanceBookingHours) * time.Hour)
	latest := now.AddDate(0, 0, settings.MaxAdvanceBookingDays)

	return !abs.Before(earliest) && !abs.After(latest)
}

func filterWindow(slots []TimeSlot, date time.Time, settings provider.AvailabilitySettings, now time.Time) []TimeSlot {
	filtered := make([]TimeSlot, 0, len(slots))
	for _, slot := range slots {
		if withinWindow(date, slot, settings, now) {
			filtered = append(filtered, slot)
		}
	}
	return filtered
}

// validateDate rejects whole days that have already passed. Same-day
// requests proceed; the advance window filter handles hours within today.
func (s *service) validateDate(date time.Time) error {
	now := s.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return ErrDateInPast
	}
	return nil
}

func (s *service) GetAvailableSlots(ctx context.Context, req SlotsRequest) (*DayAvailability, error) {
	if err := s.validateDate(req.Date); err != nil {
		return nil, err
	}

	d, err := s.computeDay(ctx, req.ProviderID, req.ServiceID, req.Date)
	if err != nil {
		return nil, err
	}

	return &DayAvailability{
		ProviderID: req.ProviderID,
		Date:       req.Date,
		Slots:      filterWindow(d.slots, req.Date, d.settings, s.now()),
	}, nil
}

func (s *service) CheckSlot(ctx context.Context, req CheckRequest) (*CheckResult, error) {
	if err := s.validateDate(req.Date); err != nil {
		return nil, err
	}

	d, err := s.computeDay(ctx, req.ProviderID, req.ServiceID, req.Date)
	if err != nil {
		return nil, err
	}

	now := s.now()
	result := &CheckResult{
		Start: req.StartTime,
		End:   req.StartTime.AddMinutes(d.duration),
	}

	var found *TimeSlot
	for i := range d.slots {
		if d.slots[i].Start == req.StartTime {
			found = &d.slots[i]
			break
		}
	}

	switch {
	case found == nil:
		result.Reason = "Outside working hours"
	case !withinWindow(req.Date, *found, d.settings, now):
		result.Reason = "Outside the booking window"
	case !found.Available:
		result.Reason = found.Reason
	default:
		result.Available = true
		result.End = found.End
	}

	if !result.Available {
		for _, slot := range filterWindow(d.slots, req.Date, d.settings, now) {
			if !slot.Available {
				continue
			}
			result.Alternatives = append(result.Alternatives, slot)
			if len(result.Alternatives) == maxAlternatives {
				break
			}
		}
	}

	return result, nil
}

func (s *service) BookSlot(ctx context.Context, customerID string, req BookRequest) (*booking.Booking, error) {
	result, err := s.CheckSlot(ctx, CheckRequest{
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Date:       req.Date,
		StartTime:  req.StartTime,
	})
	if err != nil {
		return nil, err
	}
	if !result.Available {
		return nil, ErrSlotUnavailable.WithMessage("slot is not available: " + result.Reason)
	}

	b := &booking.Booking{
		ProviderID: req.ProviderID,
		CustomerID: customerID,
		Date:       req.Date,
		StartTime:  result.Start,
		EndTime:    result.End,
		Status:     booking.StatusPending,
		Notes:      req.Notes,
	}
	if req.ServiceID != "" {
		b.ServiceID = &req.ServiceID
	}

	if err := s.bookingSvc.Create(ctx, b); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, cacheDayPrefix(req.ProviderID, req.Date))
	return b, nil
}
