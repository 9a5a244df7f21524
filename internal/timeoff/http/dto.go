package http

import (
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/timeoff"
)

type CreateTimeOffBody struct {
	ProviderID     string  `json:"provider_id" binding:"required,uuid"`
	StartDate      string  `json:"start_date" binding:"required,datetime=2006-01-02"`
	EndDate        string  `json:"end_date" binding:"required,datetime=2006-01-02"`
	StartTime      *string `json:"start_time"`
	EndTime        *string `json:"end_time"`
	BlocksBookings *bool   `json:"blocks_bookings"`
	Reason         *string `json:"reason"`
}

type TimeOffResponse struct {
	ID             string    `json:"id"`
	ProviderID     string    `json:"provider_id"`
	StartDate      string    `json:"start_date"`
	EndDate        string    `json:"end_date"`
	StartTime      *string   `json:"start_time"`
	EndTime        *string   `json:"end_time"`
	BlocksBookings bool      `json:"blocks_bookings"`
	Reason         *string   `json:"reason"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewTimeOffResponse(e *timeoff.Entry) TimeOffResponse {
	resp := TimeOffResponse{
		ID:             e.ID,
		ProviderID:     e.ProviderID,
		StartDate:      e.StartDate.Format("2006-01-02"),
		EndDate:        e.EndDate.Format("2006-01-02"),
		BlocksBookings: e.BlocksBookings,
		Reason:         e.Reason,
		CreatedAt:      e.CreatedAt,
	}
	if e.StartTime != nil {
		s := e.StartTime.String()
		resp.StartTime = &s
	}
	if e.EndTime != nil {
		s := e.EndTime.String()
		resp.EndTime = &s
	}
	return resp
}
