package provider

import (
	"net/http"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "provider not found")
	ErrProfileExists   = apperror.New(http.StatusConflict, "provider profile already exists")
	ErrNotOwner        = apperror.New(http.StatusForbidden, "not the owner of this provider profile")
	ErrInvalidSettings = apperror.New(http.StatusBadRequest, "invalid availability settings")
)

// Provider is a beauty professional's public profile. City feeds the prayer
// timings lookup for dynamic breaks.
type Provider struct {
	ID          string
	UserID      string
	DisplayName string
	Bio         *string
	City        *string
	Rating      float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// AvailabilitySettings is the per-provider booking policy consumed by the
// availability engine.
type AvailabilitySettings struct {
	ProviderID               string
	MinAdvanceBookingHours   int
	MaxAdvanceBookingDays    int
	BufferMinutes            int
	PrayerBreaksEnabled      bool
	PrayerFlexibilityMinutes int
}

// DefaultSettings returns the authoritative fallback policy used when a
// provider has not configured one: bookings must start at least 2 hours and
// at most 90 days from now, prayer breaks on with 15 minutes of flexibility.
func DefaultSettings(providerID string) AvailabilitySettings {
	return AvailabilitySettings{
		ProviderID:               providerID,
		MinAdvanceBookingHours:   2,
		MaxAdvanceBookingDays:    90,
		BufferMinutes:            0,
		PrayerBreaksEnabled:      true,
		PrayerFlexibilityMinutes: 15,
	}
}

// Filter defines parameters for listing providers.
type Filter struct {
	City     string
	Keyword  string
	Page     int
	PageSize int
}
