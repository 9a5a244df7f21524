package booking

import (
	"context"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

type Service interface {
	// Create persists a new pending booking. Callers are expected to have
	// verified slot availability; the database constraint remains the final
	// guard against double booking.
	Create(ctx context.Context, b *Booking) error

	GetByID(ctx context.Context, id, userID string) (*Booking, error)

	// ListForUser lists bookings visible to userID: their own as a customer,
	// or their provider calendar when filter.ProviderID names a profile they own.
	ListForUser(ctx context.Context, userID string, filter Filter) ([]*Booking, int, error)
	ListForDay(ctx context.Context, providerID string, date time.Time) ([]Booking, error)

	Cancel(ctx context.Context, id, userID string) error
	UpdateStatus(ctx context.Context, id, userID string, status Status) error
}

type service struct {
	repo        Repository
	providerSvc provider.Service
}

func NewService(repo Repository, providerSvc provider.Service) Service {
	return &service{
		repo:        repo,
		providerSvc: providerSvc,
	}
}

func (s *service) Create(ctx context.Context, b *Booking) error {
	if !b.StartTime.Before(b.EndTime) {
		return ErrInvalidTimeRange
	}
	if b.Status == "" {
		b.Status = StatusPending
	}
	return s.repo.Create(ctx, b)
}

// isParticipant reports whether userID is the booking's customer or the
// owner of the booked provider profile.
func (s *service) isParticipant(ctx context.Context, b *Booking, userID string) (bool, error) {
	if b.CustomerID == userID {
		return true, nil
	}
	p, err := s.providerSvc.GetByID(ctx, b.ProviderID)
	if err != nil {
		return false, err
	}
	return p.UserID == userID, nil
}

func (s *service) GetByID(ctx context.Context, id, userID string) (*Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	ok, err := s.isParticipant(ctx, b, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotParticipant
	}
	return b, nil
}

func (s *service) ListForUser(ctx context.Context, userID string, filter Filter) ([]*Booking, int, error) {
	if filter.ProviderID != "" {
		p, err := s.providerSvc.GetByID(ctx, filter.ProviderID)
		if err != nil {
			return nil, 0, err
		}
		if p.UserID != userID {
			return nil, 0, ErrNotParticipant
		}
	} else {
		filter.CustomerID = userID
	}
	return s.repo.List(ctx, filter)
}

func (s *service) ListForDay(ctx context.Context, providerID string, date time.Time) ([]Booking, error) {
	return s.repo.ListForDay(ctx, providerID, date)
}

func (s *service) Cancel(ctx context.Context, id, userID string) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	ok, err := s.isParticipant(ctx, b, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotParticipant
	}
	if !canTransition(b.Status, StatusCancelled) {
		return ErrInvalidStatusChange
	}
	return s.repo.UpdateStatus(ctx, id, StatusCancelled)
}

func (s *service) UpdateStatus(ctx context.Context, id, userID string, status Status) error {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	// Only the provider side moves bookings through the lifecycle.
	p, err := s.providerSvc.GetByID(ctx, b.ProviderID)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return ErrNotParticipant
	}

	if !canTransition(b.Status, status) {
		return ErrInvalidStatusChange
	}
	return s.repo.UpdateStatus(ctx, id, status)
}
