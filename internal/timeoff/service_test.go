package timeoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

type fakeRepo struct {
	Repository
	created *Entry
}

func (f *fakeRepo) Create(_ context.Context, e *Entry) error {
	e.ID = "timeoff-1"
	f.created = e
	return nil
}

type fakeProviderSvc struct {
	provider.Service
}

func (fakeProviderSvc) GetByID(_ context.Context, id string) (*provider.Provider, error) {
	return &provider.Provider{ID: id, UserID: "owner"}, nil
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestCreateWholeDayEntry(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, fakeProviderSvc{})

	e, err := svc.Create(context.Background(), "owner", CreateRequest{
		ProviderID:     "p1",
		StartDate:      day("2026-09-07"),
		EndDate:        day("2026-09-09"),
		BlocksBookings: true,
	})
	require.NoError(t, err)

	assert.True(t, e.WholeDay())
	require.NotNil(t, repo.created)
}

func TestCreateRejectsLoneTimeEndpoint(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeProviderSvc{})

	start := clock.MustParse("10:00")
	_, err := svc.Create(context.Background(), "owner", CreateRequest{
		ProviderID: "p1",
		StartDate:  day("2026-09-07"),
		EndDate:    day("2026-09-07"),
		StartTime:  &start,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateRejectsInvertedTimes(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeProviderSvc{})

	start := clock.MustParse("15:00")
	end := clock.MustParse("10:00")
	_, err := svc.Create(context.Background(), "owner", CreateRequest{
		ProviderID: "p1",
		StartDate:  day("2026-09-07"),
		EndDate:    day("2026-09-07"),
		StartTime:  &start,
		EndTime:    &end,
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateRejectsInvertedDates(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeProviderSvc{})

	_, err := svc.Create(context.Background(), "owner", CreateRequest{
		ProviderID: "p1",
		StartDate:  day("2026-09-09"),
		EndDate:    day("2026-09-07"),
	})
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestCreateRejectsNonOwner(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeProviderSvc{})

	_, err := svc.Create(context.Background(), "intruder", CreateRequest{
		ProviderID: "p1",
		StartDate:  day("2026-09-07"),
		EndDate:    day("2026-09-07"),
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}
