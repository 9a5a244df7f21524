package catalog

import (
	"net/http"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "service not found")
	ErrNotOwner        = apperror.New(http.StatusForbidden, "not the owner of this service")
	ErrInvalidDuration = apperror.New(http.StatusBadRequest, "duration must be positive")
)

// DefaultDurationMinutes is used when an availability query names no service.
const DefaultDurationMinutes = 30

// Service is a bookable offering in a provider's catalog (e.g. haircut,
// manicure). Preparation and cleanup pad the bookable footprint around the
// core service time.
type Service struct {
	ID                 string
	ProviderID         string
	Name               string
	Description        *string
	PriceCents         int64
	DurationMinutes    int
	PreparationMinutes int
	CleanupMinutes     int
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TotalDurationMinutes is the full slot footprint of the service:
// preparation + core duration + cleanup.
func (s *Service) TotalDurationMinutes() int {
	return s.PreparationMinutes + s.DurationMinutes + s.CleanupMinutes
}

// Filter defines parameters for listing catalog services.
type Filter struct {
	ProviderID string
	ActiveOnly bool
	Page       int
	PageSize   int
}
