package http

import (
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/booking"
)

type UpdateStatusBody struct {
	Status string `json:"status" binding:"required,oneof=confirmed completed cancelled"`
}

type ListBookingsQuery struct {
	ProviderID string `form:"provider_id" binding:"omitempty,uuid"`
	Status     string `form:"status" binding:"omitempty,oneof=pending confirmed completed cancelled"`
	Page       int    `form:"page,default=1" binding:"min=1"`
	PageSize   int    `form:"page_size,default=20" binding:"min=1,max=100"`
}

type BookingResponse struct {
	ID         string    `json:"id"`
	ProviderID string    `json:"provider_id"`
	CustomerID string    `json:"customer_id"`
	ServiceID  *string   `json:"service_id"`
	Date       string    `json:"date"`
	StartTime  string    `json:"start_time"`
	EndTime    string    `json:"end_time"`
	Status     string    `json:"status"`
	Notes      *string   `json:"notes"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:         b.ID,
		ProviderID: b.ProviderID,
		CustomerID: b.CustomerID,
		ServiceID:  b.ServiceID,
		Date:       b.Date.Format("2006-01-02"),
		StartTime:  b.StartTime.String(),
		EndTime:    b.EndTime.String(),
		Status:     string(b.Status),
		Notes:      b.Notes,
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}
