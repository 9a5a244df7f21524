package booking

import (
	"net/http"
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/apperror"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
)

var (
	ErrNotFound            = apperror.New(http.StatusNotFound, "booking not found")
	ErrSlotTaken           = apperror.New(http.StatusConflict, "the requested time slot is already booked")
	ErrNotParticipant      = apperror.New(http.StatusForbidden, "not a participant of this booking")
	ErrInvalidTimeRange    = apperror.New(http.StatusBadRequest, "start time must be before end time")
	ErrInvalidStatusChange = apperror.New(http.StatusBadRequest, "invalid booking status change")
)

// Status is the booking lifecycle state. Only pending and confirmed
// bookings occupy time on the calendar.
type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Booking is a customer appointment with a provider. StartTime and EndTime
// are times of day within Date; the end already includes the service's
// preparation and cleanup padding.
type Booking struct {
	ID         string
	ProviderID string
	CustomerID string
	ServiceID  *string
	Date       time.Time
	StartTime  clock.TimeOfDay
	EndTime    clock.TimeOfDay
	Status     Status
	Notes      *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// Filter defines parameters for listing bookings.
type Filter struct {
	ProviderID string
	CustomerID string
	Status     Status
	Page       int
	PageSize   int
}

// canTransition reports whether a booking may move from to next.
func canTransition(from, next Status) bool {
	switch from {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	}
	return false
}
