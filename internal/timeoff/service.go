package timeoff

import (
	"context"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

type CreateRequest struct {
	ProviderID     string
	StartDate      time.Time
	EndDate        time.Time
	StartTime      *clock.TimeOfDay
	EndTime        *clock.TimeOfDay
	BlocksBookings bool
	Reason         *string
}

type Service interface {
	Create(ctx context.Context, userID string, req CreateRequest) (*Entry, error)
	ListByProvider(ctx context.Context, providerID string) ([]Entry, error)
	ListForDate(ctx context.Context, providerID string, date time.Time) ([]Entry, error)
	Delete(ctx context.Context, id, userID string) error
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

func (s *service) Create(ctx context.Context, userID string, req CreateRequest) (*Entry, error) {
	p, err := s.providerSvc.GetByID(ctx, req.ProviderID)
	if err != nil {
		return nil, err
	}
	if p.UserID != userID {
		return nil, ErrNotOwner
	}

	if req.EndDate.Before(req.StartDate) {
		return nil, ErrInvalidDateRange
	}
	// A sub-range needs both endpoints; a lone endpoint is rejected rather
	// than silently widened to the whole day.
	if (req.StartTime == nil) != (req.EndTime == nil) {
		return nil, ErrInvalidTimeRange
	}
	if req.StartTime != nil && !req.StartTime.Before(*req.EndTime) {
		return nil, ErrInvalidTimeRange
	}

	e := &Entry{
		ProviderID:     req.ProviderID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
		BlocksBookings: req.BlocksBookings,
		Reason:         req.Reason,
	}
	if err := s.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) ListByProvider(ctx context.Context, providerID string) ([]Entry, error) {
	return s.repo.ListByProvider(ctx, providerID)
}

func (s *service) ListForDate(ctx context.Context, providerID string, date time.Time) ([]Entry, error) {
	return s.repo.ListForDate(ctx, providerID, date)
}

func (s *service) Delete(ctx context.Context, id, userID string) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	p, err := s.providerSvc.GetByID(ctx, e.ProviderID)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return ErrNotOwner
	}
	return s.repo.Delete(ctx, id)
}
