package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/glowbook/beauty-booking-backend/internal/booking"
	"github.com/glowbook/beauty-booking-backend/internal/catalog"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/apperror"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/prayer"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
	"github.com/glowbook/beauty-booking-backend/internal/timeoff"
)

const (
	testProviderID = "f3b5ffcc-8b63-4eb2-a6ea-2ca2e7b0f002"
	testCustomerID = "6d1c4f4e-9f50-4f44-86a6-0f41c3f8ed01"
)

// testDate is a Monday.
var testDate = time.Date(2026, 9, 7, 0, 0, 0, 0, time.UTC)

type fakeProviderSvc struct {
	provider.Service
	settings provider.AvailabilitySettings
}

func (f *fakeProviderSvc) GetByID(_ context.Context, id string) (*provider.Provider, error) {
	city := "Riyadh"
	return &provider.Provider{ID: id, UserID: "owner", City: &city}, nil
}

func (f *fakeProviderSvc) ResolveSettings(_ context.Context, providerID string) (provider.AvailabilitySettings, bool, error) {
	if f.settings.ProviderID == "" {
		return provider.DefaultSettings(providerID), false, nil
	}
	return f.settings, true, nil
}

type fakeCatalogSvc struct {
	catalog.CatalogService
	duration int
}

func (f *fakeCatalogSvc) ResolveDuration(context.Context, string) (int, error) {
	return f.duration, nil
}

type fakeScheduleSvc struct {
	schedule.Service
	noSchedule bool
	shifts     []schedule.WorkingShift
	breaks     []schedule.FixedBreak
}

func (f *fakeScheduleSvc) ActiveScheduleFor(_ context.Context, providerID string, _ time.Time) (*schedule.Schedule, error) {
	if f.noSchedule {
		return nil, schedule.ErrNoActiveSchedule
	}
	return &schedule.Schedule{ID: "sched-1", ProviderID: providerID}, nil
}

func (f *fakeScheduleSvc) ShiftsFor(context.Context, string, time.Weekday) ([]schedule.WorkingShift, error) {
	return f.shifts, nil
}

func (f *fakeScheduleSvc) FixedBreaksFor(context.Context, string, time.Weekday) ([]schedule.FixedBreak, error) {
	return f.breaks, nil
}

type fakeTimeoffSvc struct {
	timeoff.Service
	entries []timeoff.Entry
}

func (f *fakeTimeoffSvc) ListForDate(context.Context, string, time.Time) ([]timeoff.Entry, error) {
	return f.entries, nil
}

type fakeBookingSvc struct {
	booking.Service
	bookings []booking.Booking
	created  *booking.Booking
}

func (f *fakeBookingSvc) ListForDay(context.Context, string, time.Time) ([]booking.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingSvc) Create(_ context.Context, b *booking.Booking) error {
	b.ID = "booking-1"
	f.created = b
	return nil
}

type recordingCache struct {
	NoopCache
	invalidated []string
}

func (c *recordingCache) Invalidate(_ context.Context, prefix string) {
	c.invalidated = append(c.invalidated, prefix)
}

type testEnv struct {
	providers *fakeProviderSvc
	catalogs  *fakeCatalogSvc
	schedules *fakeScheduleSvc
	timeoffs  *fakeTimeoffSvc
	bookings  *fakeBookingSvc
	cache     *recordingCache
	svc       *service
}

func newTestEnv(now time.Time) *testEnv {
	env := &testEnv{
		providers: &fakeProviderSvc{},
		catalogs:  &fakeCatalogSvc{duration: 30},
		schedules: &fakeScheduleSvc{
			shifts: []schedule.WorkingShift{shift("09:00", "17:00")},
		},
		timeoffs: &fakeTimeoffSvc{},
		bookings: &fakeBookingSvc{},
		cache:    &recordingCache{},
	}

	svc := NewService(
		env.providers, env.catalogs, env.schedules, env.timeoffs, env.bookings,
		prayer.Disabled{}, env.cache, zap.NewNop(),
	).(*service)
	svc.now = func() time.Time { return now }

	env.svc = svc
	return env
}

func TestGetAvailableSlotsFullDay(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3).Add(10 * time.Hour))

	d, err := env.svc.GetAvailableSlots(context.Background(), SlotsRequest{
		ProviderID: testProviderID,
		Date:       testDate,
	})
	require.NoError(t, err)

	require.Len(t, d.Slots, 31)
	assert.Equal(t, clock.MustParse("09:00"), d.Slots[0].Start)
	assert.Equal(t, clock.MustParse("16:30"), d.Slots[len(d.Slots)-1].Start)
}

func TestGetAvailableSlotsMinAdvanceSameDay(t *testing.T) {
	// Booking at 10:00 with a 2 hour minimum: everything before 12:00 is
	// gone from the response entirely, not merely flagged.
	env := newTestEnv(time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC))

	d, err := env.svc.GetAvailableSlots(context.Background(), SlotsRequest{
		ProviderID: testProviderID,
		Date:       testDate,
	})
	require.NoError(t, err)

	require.NotEmpty(t, d.Slots)
	assert.Equal(t, clock.MustParse("12:00"), d.Slots[0].Start)
}

func TestGetAvailableSlotsMaxAdvance(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -7))
	env.providers.settings = provider.AvailabilitySettings{
		ProviderID:             testProviderID,
		MinAdvanceBookingHours: 2,
		MaxAdvanceBookingDays:  3,
	}

	d, err := env.svc.GetAvailableSlots(context.Background(), SlotsRequest{
		ProviderID: testProviderID,
		Date:       testDate,
	})
	require.NoError(t, err)
	assert.Empty(t, d.Slots)
}

func TestGetAvailableSlotsRejectsPastDate(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, 2))

	_, err := env.svc.GetAvailableSlots(context.Background(), SlotsRequest{
		ProviderID: testProviderID,
		Date:       testDate,
	})
	assert.ErrorIs(t, err, ErrDateInPast)

	_, err = env.svc.CheckSlot(context.Background(), CheckRequest{
		ProviderID: testProviderID,
		Date:       testDate,
		StartTime:  clock.MustParse("10:00"),
	})
	assert.ErrorIs(t, err, ErrDateInPast)
}

func TestGetAvailableSlotsNoActiveSchedule(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3))
	env.schedules.noSchedule = true

	d, err := env.svc.GetAvailableSlots(context.Background(), SlotsRequest{
		ProviderID: testProviderID,
		Date:       testDate,
	})
	require.NoError(t, err)
	assert.Empty(t, d.Slots)
}

func TestGetAvailableSlotsBookingShrinksDay(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3))
	env.bookings.bookings = []booking.Booking{{
		StartTime: clock.MustParse("12:00"),
		EndTime:   clock.MustParse("12:30"),
		Status:    booking.StatusConfirmed,
	}}

	d, err := env.svc.GetAvailableSlots(context.Background(), SlotsRequest{
		ProviderID: testProviderID,
		Date:       testDate,
	})
	require.NoError(t, err)

	byStart := map[clock.TimeOfDay]TimeSlot{}
	for _, s := range d.Slots {
		byStart[s.Start] = s
	}
	assert.True(t, byStart[clock.MustParse("11:30")].Available)
	assert.False(t, byStart[clock.MustParse("11:45")].Available)
	assert.False(t, byStart[clock.MustParse("12:15")].Available)
	assert.True(t, byStart[clock.MustParse("12:30")].Available)
}

func TestCheckSlotAvailable(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3))

	result, err := env.svc.CheckSlot(context.Background(), CheckRequest{
		ProviderID: testProviderID,
		Date:       testDate,
		StartTime:  clock.MustParse("10:00"),
	})
	require.NoError(t, err)

	assert.True(t, result.Available)
	assert.Empty(t, result.Reason)
	assert.Equal(t, clock.MustParse("10:30"), result.End)
	assert.Empty(t, result.Alternatives)
}

func TestCheckSlotBooked(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3))
	env.bookings.bookings = []booking.Booking{{
		StartTime: clock.MustParse("10:00"),
		EndTime:   clock.MustParse("10:30"),
		Status:    booking.StatusPending,
	}}

	result, err := env.svc.CheckSlot(context.Background(), CheckRequest{
		ProviderID: testProviderID,
		Date:       testDate,
		StartTime:  clock.MustParse("10:00"),
	})
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, "Already booked", result.Reason)
	require.Len(t, result.Alternatives, maxAlternatives)
	assert.Equal(t, clock.MustParse("09:00"), result.Alternatives[0].Start)
	for _, alt := range result.Alternatives {
		assert.True(t, alt.Available)
	}
}

func TestCheckSlotOutsideWorkingHours(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3))

	result, err := env.svc.CheckSlot(context.Background(), CheckRequest{
		ProviderID: testProviderID,
		Date:       testDate,
		StartTime:  clock.MustParse("08:00"),
	})
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, "Outside working hours", result.Reason)
}

func TestCheckSlotOutsideBookingWindow(t *testing.T) {
	env := newTestEnv(time.Date(2026, 9, 7, 10, 0, 0, 0, time.UTC))

	result, err := env.svc.CheckSlot(context.Background(), CheckRequest{
		ProviderID: testProviderID,
		Date:       testDate,
		StartTime:  clock.MustParse("10:30"),
	})
	require.NoError(t, err)

	assert.False(t, result.Available)
	assert.Equal(t, "Outside the booking window", result.Reason)
}

func TestBookSlotCreatesPendingBooking(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3))

	b, err := env.svc.BookSlot(context.Background(), testCustomerID, BookRequest{
		ProviderID: testProviderID,
		Date:       testDate,
		StartTime:  clock.MustParse("10:00"),
	})
	require.NoError(t, err)

	require.NotNil(t, env.bookings.created)
	assert.Equal(t, booking.StatusPending, b.Status)
	assert.Equal(t, testCustomerID, b.CustomerID)
	assert.Equal(t, clock.MustParse("10:00"), b.StartTime)
	assert.Equal(t, clock.MustParse("10:30"), b.EndTime)
	assert.Nil(t, b.ServiceID)

	require.Len(t, env.cache.invalidated, 1)
	assert.Equal(t, "slots:"+testProviderID+":2026-09-07:", env.cache.invalidated[0])
}

func TestBookSlotRejectsBlockedSlot(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3))
	env.bookings.bookings = []booking.Booking{{
		StartTime: clock.MustParse("10:00"),
		EndTime:   clock.MustParse("10:30"),
		Status:    booking.StatusConfirmed,
	}}

	_, err := env.svc.BookSlot(context.Background(), testCustomerID, BookRequest{
		ProviderID: testProviderID,
		Date:       testDate,
		StartTime:  clock.MustParse("10:00"),
	})
	require.Error(t, err)

	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, 409, appErr.Code)
	assert.Contains(t, appErr.Message, "Already booked")
	assert.Nil(t, env.bookings.created)
	assert.Empty(t, env.cache.invalidated)
}

func TestGetAvailableSlotsPrayerBreaks(t *testing.T) {
	env := newTestEnv(testDate.AddDate(0, 0, -3))
	env.svc.prayers = stubResolver{windows: []prayer.Window{
		{Name: "Dhuhr", Start: clock.MustParse("12:00"), End: clock.MustParse("12:30")},
	}}

	d, err := env.svc.GetAvailableSlots(context.Background(), SlotsRequest{
		ProviderID: testProviderID,
		Date:       testDate,
	})
	require.NoError(t, err)

	// Default settings widen the window by 15 minutes on each side, so
	// 11:45..12:45 is blocked and 11:15 is the last clear start before it.
	byStart := map[clock.TimeOfDay]TimeSlot{}
	for _, s := range d.Slots {
		byStart[s.Start] = s
	}
	assert.True(t, byStart[clock.MustParse("11:15")].Available)

	blocked := byStart[clock.MustParse("12:00")]
	assert.False(t, blocked.Available)
	assert.Equal(t, "Dhuhr Prayer", blocked.Reason)

	assert.False(t, byStart[clock.MustParse("12:30")].Available)
	assert.True(t, byStart[clock.MustParse("12:45")].Available)
}

type stubResolver struct {
	windows []prayer.Window
}

func (s stubResolver) Timings(context.Context, string, time.Time) ([]prayer.Window, error) {
	return s.windows, nil
}
