package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from Status
		next Status
		ok   bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.ok, canTransition(tt.from, tt.next), "%s -> %s", tt.from, tt.next)
	}
}

type fakeRepo struct {
	Repository
	booking *Booking
	status  Status
}

func (f *fakeRepo) GetByID(context.Context, string) (*Booking, error) {
	if f.booking == nil {
		return nil, ErrNotFound
	}
	return f.booking, nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, _ string, status Status) error {
	f.status = status
	return nil
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	b.ID = "b1"
	f.booking = b
	return nil
}

type fakeProviderSvc struct {
	provider.Service
}

func (fakeProviderSvc) GetByID(_ context.Context, id string) (*provider.Provider, error) {
	return &provider.Provider{ID: id, UserID: "provider-owner"}, nil
}

func TestCreateRejectsInvertedTimes(t *testing.T) {
	svc := NewService(&fakeRepo{}, fakeProviderSvc{})

	err := svc.Create(context.Background(), &Booking{
		ProviderID: "p1",
		CustomerID: "c1",
		Date:       time.Now(),
		StartTime:  clock.MustParse("14:00"),
		EndTime:    clock.MustParse("13:00"),
	})
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestCreateDefaultsToPending(t *testing.T) {
	repo := &fakeRepo{}
	svc := NewService(repo, fakeProviderSvc{})

	b := &Booking{
		ProviderID: "p1",
		CustomerID: "c1",
		Date:       time.Now(),
		StartTime:  clock.MustParse("13:00"),
		EndTime:    clock.MustParse("13:30"),
	}
	require.NoError(t, svc.Create(context.Background(), b))
	assert.Equal(t, StatusPending, b.Status)
}

func TestCancelByCustomer(t *testing.T) {
	repo := &fakeRepo{booking: &Booking{
		ID:         "b1",
		ProviderID: "p1",
		CustomerID: "c1",
		Status:     StatusConfirmed,
	}}
	svc := NewService(repo, fakeProviderSvc{})

	require.NoError(t, svc.Cancel(context.Background(), "b1", "c1"))
	assert.Equal(t, StatusCancelled, repo.status)
}

func TestCancelByStranger(t *testing.T) {
	repo := &fakeRepo{booking: &Booking{
		ID:         "b1",
		ProviderID: "p1",
		CustomerID: "c1",
		Status:     StatusPending,
	}}
	svc := NewService(repo, fakeProviderSvc{})

	err := svc.Cancel(context.Background(), "b1", "stranger")
	assert.ErrorIs(t, err, ErrNotParticipant)
}

func TestUpdateStatusProviderOnly(t *testing.T) {
	repo := &fakeRepo{booking: &Booking{
		ID:         "b1",
		ProviderID: "p1",
		CustomerID: "c1",
		Status:     StatusPending,
	}}
	svc := NewService(repo, fakeProviderSvc{})

	// The customer may not confirm their own booking.
	err := svc.UpdateStatus(context.Background(), "b1", "c1", StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotParticipant)

	require.NoError(t, svc.UpdateStatus(context.Background(), "b1", "provider-owner", StatusConfirmed))
	assert.Equal(t, StatusConfirmed, repo.status)
}

func TestUpdateStatusRejectsTerminalMoves(t *testing.T) {
	repo := &fakeRepo{booking: &Booking{
		ID:         "b1",
		ProviderID: "p1",
		CustomerID: "c1",
		Status:     StatusCompleted,
	}}
	svc := NewService(repo, fakeProviderSvc{})

	err := svc.UpdateStatus(context.Background(), "b1", "provider-owner", StatusCancelled)
	assert.ErrorIs(t, err, ErrInvalidStatusChange)
}
