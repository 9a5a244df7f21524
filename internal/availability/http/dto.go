package http

import (
	"github.com/glowbook/beauty-booking-backend/internal/availability"
)

type SlotsQuery struct {
	ProviderID string `form:"provider_id" binding:"required,uuid"`
	ServiceID  string `form:"service_id" binding:"omitempty,uuid"`
	Date       string `form:"date" binding:"required,datetime=2006-01-02"`
}

type CheckSlotBody struct {
	ProviderID string `json:"provider_id" binding:"required,uuid"`
	ServiceID  string `json:"service_id" binding:"omitempty,uuid"`
	Date       string `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string `json:"start_time" binding:"required"`
}

type BookSlotBody struct {
	ProviderID string  `json:"provider_id" binding:"required,uuid"`
	ServiceID  string  `json:"service_id" binding:"omitempty,uuid"`
	Date       string  `json:"date" binding:"required,datetime=2006-01-02"`
	StartTime  string  `json:"start_time" binding:"required"`
	Notes      *string `json:"notes"`
}

type SlotResponse struct {
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Available bool   `json:"available"`
	ShiftType string `json:"shift_type"`
	Reason    string `json:"reason,omitempty"`
}

func NewSlotResponse(s availability.TimeSlot) SlotResponse {
	return SlotResponse{
		StartTime: s.Start.String(),
		EndTime:   s.End.String(),
		Available: s.Available,
		ShiftType: string(s.ShiftType),
		Reason:    s.Reason,
	}
}

type DayAvailabilityResponse struct {
	ProviderID string         `json:"provider_id"`
	Date       string         `json:"date"`
	Slots      []SlotResponse `json:"slots"`
}

func NewDayAvailabilityResponse(d *availability.DayAvailability) DayAvailabilityResponse {
	slots := make([]SlotResponse, len(d.Slots))
	for i, s := range d.Slots {
		slots[i] = NewSlotResponse(s)
	}
	return DayAvailabilityResponse{
		ProviderID: d.ProviderID,
		Date:       d.Date.Format("2006-01-02"),
		Slots:      slots,
	}
}

type CheckResultResponse struct {
	Available    bool           `json:"available"`
	Reason       string         `json:"reason,omitempty"`
	StartTime    string         `json:"start_time"`
	EndTime      string         `json:"end_time"`
	Alternatives []SlotResponse `json:"alternatives,omitempty"`
}

func NewCheckResultResponse(r *availability.CheckResult) CheckResultResponse {
	resp := CheckResultResponse{
		Available: r.Available,
		Reason:    r.Reason,
		StartTime: r.Start.String(),
		EndTime:   r.End.String(),
	}
	for _, s := range r.Alternatives {
		resp.Alternatives = append(resp.Alternatives, NewSlotResponse(s))
	}
	return resp
}
