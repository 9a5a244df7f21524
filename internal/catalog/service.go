package catalog

import (
	"context"

	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

type CreateRequest struct {
	ProviderID         string
	Name               string
	Description        *string
	PriceCents         int64
	DurationMinutes    int
	PreparationMinutes int
	CleanupMinutes     int
}

type UpdateRequest struct {
	Name               *string
	Description        *string
	PriceCents         *int64
	DurationMinutes    *int
	PreparationMinutes *int
	CleanupMinutes     *int
	IsActive           *bool
}

type CatalogService interface {
	Create(ctx context.Context, userID string, req CreateRequest) (*Service, error)
	GetByID(ctx context.Context, id string) (*Service, error)
	List(ctx context.Context, filter Filter) ([]*Service, int, error)
	Update(ctx context.Context, id, userID string, req UpdateRequest) (*Service, error)
	Delete(ctx context.Context, id, userID string) error

	// ResolveDuration returns the total slot footprint in minutes for the
	// given service, or DefaultDurationMinutes when serviceID is empty.
	ResolveDuration(ctx context.Context, serviceID string) (int, error)
}

type catalogService struct {
	repo        Repository
	providerSvc provider.Service
}

func NewService(repo Repository, providerSvc provider.Service) CatalogService {
	return &catalogService{
		repo:        repo,
		providerSvc: providerSvc,
	}
}

func (s *catalogService) checkOwner(ctx context.Context, providerID, userID string) error {
	p, err := s.providerSvc.GetByID(ctx, providerID)
	if err != nil {
		return err
	}
	if p.UserID != userID {
		return ErrNotOwner
	}
	return nil
}

func (s *catalogService) Create(ctx context.Context, userID string, req CreateRequest) (*Service, error) {
	if err := s.checkOwner(ctx, req.ProviderID, userID); err != nil {
		return nil, err
	}
	if req.DurationMinutes <= 0 || req.PreparationMinutes < 0 || req.CleanupMinutes < 0 {
		return nil, ErrInvalidDuration
	}

	svc := &Service{
		ProviderID:         req.ProviderID,
		Name:               req.Name,
		Description:        req.Description,
		PriceCents:         req.PriceCents,
		DurationMinutes:    req.DurationMinutes,
		PreparationMinutes: req.PreparationMinutes,
		CleanupMinutes:     req.CleanupMinutes,
	}

	if err := s.repo.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) GetByID(ctx context.Context, id string) (*Service, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *catalogService) List(ctx context.Context, filter Filter) ([]*Service, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *catalogService) Update(ctx context.Context, id, userID string, req UpdateRequest) (*Service, error) {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.checkOwner(ctx, svc.ProviderID, userID); err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Description != nil {
		svc.Description = req.Description
	}
	if req.PriceCents != nil {
		svc.PriceCents = *req.PriceCents
	}
	if req.DurationMinutes != nil {
		svc.DurationMinutes = *req.DurationMinutes
	}
	if req.PreparationMinutes != nil {
		svc.PreparationMinutes = *req.PreparationMinutes
	}
	if req.CleanupMinutes != nil {
		svc.CleanupMinutes = *req.CleanupMinutes
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}

	if svc.DurationMinutes <= 0 || svc.PreparationMinutes < 0 || svc.CleanupMinutes < 0 {
		return nil, ErrInvalidDuration
	}

	if err := s.repo.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *catalogService) Delete(ctx context.Context, id, userID string) error {
	svc, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.checkOwner(ctx, svc.ProviderID, userID); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *catalogService) ResolveDuration(ctx context.Context, serviceID string) (int, error) {
	if serviceID == "" {
		return DefaultDurationMinutes, nil
	}

	svc, err := s.repo.GetByID(ctx, serviceID)
	if err != nil {
		return 0, err
	}
	return svc.TotalDurationMinutes(), nil
}
