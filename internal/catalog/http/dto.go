package http

import (
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/catalog"
)

type CreateServiceBody struct {
	ProviderID         string  `json:"provider_id" binding:"required,uuid"`
	Name               string  `json:"name" binding:"required"`
	Description        *string `json:"description"`
	PriceCents         int64   `json:"price_cents" binding:"min=0"`
	DurationMinutes    int     `json:"duration_minutes" binding:"required,min=5,max=480"`
	PreparationMinutes int     `json:"preparation_minutes" binding:"min=0"`
	CleanupMinutes     int     `json:"cleanup_minutes" binding:"min=0"`
}

type UpdateServiceBody struct {
	Name               *string `json:"name"`
	Description        *string `json:"description"`
	PriceCents         *int64  `json:"price_cents" binding:"omitempty,min=0"`
	DurationMinutes    *int    `json:"duration_minutes" binding:"omitempty,min=5,max=480"`
	PreparationMinutes *int    `json:"preparation_minutes" binding:"omitempty,min=0"`
	CleanupMinutes     *int    `json:"cleanup_minutes" binding:"omitempty,min=0"`
	IsActive           *bool   `json:"is_active"`
}

type ServiceResponse struct {
	ID                 string    `json:"id"`
	ProviderID         string    `json:"provider_id"`
	Name               string    `json:"name"`
	Description        *string   `json:"description"`
	PriceCents         int64     `json:"price_cents"`
	DurationMinutes    int       `json:"duration_minutes"`
	PreparationMinutes int       `json:"preparation_minutes"`
	CleanupMinutes     int       `json:"cleanup_minutes"`
	TotalMinutes       int       `json:"total_minutes"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
}

func NewServiceResponse(s *catalog.Service) ServiceResponse {
	return ServiceResponse{
		ID:                 s.ID,
		ProviderID:         s.ProviderID,
		Name:               s.Name,
		Description:        s.Description,
		PriceCents:         s.PriceCents,
		DurationMinutes:    s.DurationMinutes,
		PreparationMinutes: s.PreparationMinutes,
		CleanupMinutes:     s.CleanupMinutes,
		TotalMinutes:       s.TotalDurationMinutes(),
		IsActive:           s.IsActive,
		CreatedAt:          s.CreatedAt,
	}
}
