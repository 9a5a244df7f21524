package http

import (
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

type CreateProfileBody struct {
	DisplayName string  `json:"display_name" binding:"required"`
	Bio         *string `json:"bio"`
	City        *string `json:"city"`
}

type UpdateProfileBody struct {
	DisplayName *string `json:"display_name"`
	Bio         *string `json:"bio"`
	City        *string `json:"city"`
}

type UpdateSettingsBody struct {
	MinAdvanceBookingHours   *int  `json:"min_advance_booking_hours" binding:"omitempty,min=0"`
	MaxAdvanceBookingDays    *int  `json:"max_advance_booking_days" binding:"omitempty,min=1,max=365"`
	BufferMinutes            *int  `json:"buffer_minutes" binding:"omitempty,min=0"`
	PrayerBreaksEnabled      *bool `json:"prayer_breaks_enabled"`
	PrayerFlexibilityMinutes *int  `json:"prayer_flexibility_minutes" binding:"omitempty,min=0"`
}

type ProviderResponse struct {
	ID          string    `json:"id"`
	DisplayName string    `json:"display_name"`
	Bio         *string   `json:"bio"`
	City        *string   `json:"city"`
	Rating      float64   `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
}

type SettingsResponse struct {
	MinAdvanceBookingHours   int  `json:"min_advance_booking_hours"`
	MaxAdvanceBookingDays    int  `json:"max_advance_booking_days"`
	BufferMinutes            int  `json:"buffer_minutes"`
	PrayerBreaksEnabled      bool `json:"prayer_breaks_enabled"`
	PrayerFlexibilityMinutes int  `json:"prayer_flexibility_minutes"`
	IsDefault                bool `json:"is_default"`
}

func NewProviderResponse(p *provider.Provider) ProviderResponse {
	return ProviderResponse{
		ID:          p.ID,
		DisplayName: p.DisplayName,
		Bio:         p.Bio,
		City:        p.City,
		Rating:      p.Rating,
		CreatedAt:   p.CreatedAt,
	}
}

func NewSettingsResponse(s provider.AvailabilitySettings, isDefault bool) SettingsResponse {
	return SettingsResponse{
		MinAdvanceBookingHours:   s.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:    s.MaxAdvanceBookingDays,
		BufferMinutes:            s.BufferMinutes,
		PrayerBreaksEnabled:      s.PrayerBreaksEnabled,
		PrayerFlexibilityMinutes: s.PrayerFlexibilityMinutes,
		IsDefault:                isDefault,
	}
}
