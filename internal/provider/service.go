package provider

import (
	"context"
)

type CreateProfileRequest struct {
	UserID      string
	DisplayName string
	Bio         *string
	City        *string
}

type UpdateProfileRequest struct {
	DisplayName *string
	Bio         *string
	City        *string
}

type UpdateSettingsRequest struct {
	MinAdvanceBookingHours   *int
	MaxAdvanceBookingDays    *int
	BufferMinutes            *int
	PrayerBreaksEnabled      *bool
	PrayerFlexibilityMinutes *int
}

type Service interface {
	CreateProfile(ctx context.Context, req CreateProfileRequest) (*Provider, error)
	GetByID(ctx context.Context, id string) (*Provider, error)
	GetByUserID(ctx context.Context, userID string) (*Provider, error)
	List(ctx context.Context, filter Filter) ([]*Provider, int, error)
	UpdateProfile(ctx context.Context, id, userID string, req UpdateProfileRequest) (*Provider, error)

	// ResolveSettings returns the provider's configured settings, falling
	// back to DefaultSettings when none exist. found distinguishes the two.
	ResolveSettings(ctx context.Context, providerID string) (settings AvailabilitySettings, found bool, err error)
	UpdateSettings(ctx context.Context, providerID, userID string, req UpdateSettingsRequest) (AvailabilitySettings, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) CreateProfile(ctx context.Context, req CreateProfileRequest) (*Provider, error) {
	p := &Provider{
		UserID:      req.UserID,
		DisplayName: req.DisplayName,
		Bio:         req.Bio,
		City:        req.City,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Provider, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByUserID(ctx context.Context, userID string) (*Provider, error) {
	return s.repo.GetByUserID(ctx, userID)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Provider, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) UpdateProfile(ctx context.Context, id, userID string, req UpdateProfileRequest) (*Provider, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.DisplayName != nil {
		p.DisplayName = *req.DisplayName
	}
	if req.Bio != nil {
		p.Bio = req.Bio
	}
	if req.City != nil {
		p.City = req.City
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) ResolveSettings(ctx context.Context, providerID string) (AvailabilitySettings, bool, error) {
	settings, found, err := s.repo.GetSettings(ctx, providerID)
	if err != nil {
		// A query failure is not the same as "no row"; let the caller decide.
		return AvailabilitySettings{}, false, err
	}
	if !found {
		return DefaultSettings(providerID), false, nil
	}
	return settings, true, nil
}

func (s *service) UpdateSettings(ctx context.Context, providerID, userID string, req UpdateSettingsRequest) (AvailabilitySettings, error) {
	p, err := s.repo.GetByID(ctx, providerID)
	if err != nil {
		return AvailabilitySettings{}, err
	}
	if p.UserID != userID {
		return AvailabilitySettings{}, ErrNotOwner
	}

	current, _, err := s.ResolveSettings(ctx, providerID)
	if err != nil {
		return AvailabilitySettings{}, err
	}

	if req.MinAdvanceBookingHours != nil {
		current.MinAdvanceBookingHours = *req.MinAdvanceBookingHours
	}
	if req.MaxAdvanceBookingDays != nil {
		current.MaxAdvanceBookingDays = *req.MaxAdvanceBookingDays
	}
	if req.BufferMinutes != nil {
		current.BufferMinutes = *req.BufferMinutes
	}
	if req.PrayerBreaksEnabled != nil {
		current.PrayerBreaksEnabled = *req.PrayerBreaksEnabled
	}
	if req.PrayerFlexibilityMinutes != nil {
		current.PrayerFlexibilityMinutes = *req.PrayerFlexibilityMinutes
	}

	if current.MinAdvanceBookingHours < 0 ||
		current.MaxAdvanceBookingDays < 1 ||
		current.BufferMinutes < 0 ||
		current.PrayerFlexibilityMinutes < 0 {
		return AvailabilitySettings{}, ErrInvalidSettings
	}

	if err := s.repo.UpsertSettings(ctx, current); err != nil {
		return AvailabilitySettings{}, err
	}
	return current, nil
}
