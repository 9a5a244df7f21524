package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	Repository
	settings    *AvailabilitySettings
	settingsErr error
	provider    *Provider
	upserted    *AvailabilitySettings
}

func (f *fakeRepo) GetByID(context.Context, string) (*Provider, error) {
	if f.provider == nil {
		return nil, ErrNotFound
	}
	return f.provider, nil
}

func (f *fakeRepo) GetSettings(context.Context, string) (AvailabilitySettings, bool, error) {
	if f.settingsErr != nil {
		return AvailabilitySettings{}, false, f.settingsErr
	}
	if f.settings == nil {
		return AvailabilitySettings{}, false, nil
	}
	return *f.settings, true, nil
}

func (f *fakeRepo) UpsertSettings(_ context.Context, s AvailabilitySettings) error {
	f.upserted = &s
	return nil
}

func TestResolveSettingsDefaults(t *testing.T) {
	svc := NewService(&fakeRepo{})

	settings, found, err := svc.ResolveSettings(context.Background(), "p1")
	require.NoError(t, err)

	assert.False(t, found)
	assert.Equal(t, 2, settings.MinAdvanceBookingHours)
	assert.Equal(t, 90, settings.MaxAdvanceBookingDays)
	assert.True(t, settings.PrayerBreaksEnabled)
	assert.Equal(t, 15, settings.PrayerFlexibilityMinutes)
}

func TestResolveSettingsConfigured(t *testing.T) {
	svc := NewService(&fakeRepo{settings: &AvailabilitySettings{
		ProviderID:             "p1",
		MinAdvanceBookingHours: 6,
		MaxAdvanceBookingDays:  14,
	}})

	settings, found, err := svc.ResolveSettings(context.Background(), "p1")
	require.NoError(t, err)

	assert.True(t, found)
	assert.Equal(t, 6, settings.MinAdvanceBookingHours)
	assert.Equal(t, 14, settings.MaxAdvanceBookingDays)
}

func TestResolveSettingsQueryErrorPropagates(t *testing.T) {
	// A database failure must not be mistaken for "no settings configured";
	// silently defaulting would hand out wrong booking windows.
	repoErr := errors.New("connection reset")
	svc := NewService(&fakeRepo{settingsErr: repoErr})

	_, _, err := svc.ResolveSettings(context.Background(), "p1")
	require.ErrorIs(t, err, repoErr)
}

func TestUpdateSettingsValidation(t *testing.T) {
	repo := &fakeRepo{provider: &Provider{ID: "p1", UserID: "u1"}}
	svc := NewService(repo)

	bad := -1
	_, err := svc.UpdateSettings(context.Background(), "p1", "u1", UpdateSettingsRequest{
		MinAdvanceBookingHours: &bad,
	})
	assert.ErrorIs(t, err, ErrInvalidSettings)
	assert.Nil(t, repo.upserted)
}

func TestUpdateSettingsNotOwner(t *testing.T) {
	svc := NewService(&fakeRepo{provider: &Provider{ID: "p1", UserID: "u1"}})

	hours := 4
	_, err := svc.UpdateSettings(context.Background(), "p1", "someone-else", UpdateSettingsRequest{
		MinAdvanceBookingHours: &hours,
	})
	assert.ErrorIs(t, err, ErrNotOwner)
}

func TestUpdateSettingsMergesOverDefaults(t *testing.T) {
	repo := &fakeRepo{provider: &Provider{ID: "p1", UserID: "u1"}}
	svc := NewService(repo)

	hours := 4
	settings, err := svc.UpdateSettings(context.Background(), "p1", "u1", UpdateSettingsRequest{
		MinAdvanceBookingHours: &hours,
	})
	require.NoError(t, err)

	assert.Equal(t, 4, settings.MinAdvanceBookingHours)
	// Untouched fields keep their defaults.
	assert.Equal(t, 90, settings.MaxAdvanceBookingDays)
	assert.True(t, settings.PrayerBreaksEnabled)
	require.NotNil(t, repo.upserted)
}
