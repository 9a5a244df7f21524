package http

import (
	"time"

	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
)

type CreateScheduleBody struct {
	ProviderID     string     `json:"provider_id" binding:"required,uuid"`
	Name           string     `json:"name" binding:"required"`
	EffectiveFrom  time.Time  `json:"effective_from" binding:"required"`
	EffectiveUntil *time.Time `json:"effective_until"`
	Priority       int        `json:"priority"`
}

type CreateShiftBody struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	ShiftType string `json:"shift_type" binding:"omitempty,oneof=regular instant emergency women_only"`
}

type CreateBreakBody struct {
	Weekday   int    `json:"weekday" binding:"min=0,max=6"`
	Name      string `json:"name" binding:"required"`
	BreakType string `json:"break_type" binding:"omitempty,oneof=lunch rest custom"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type ScheduleResponse struct {
	ID             string     `json:"id"`
	ProviderID     string     `json:"provider_id"`
	Name           string     `json:"name"`
	EffectiveFrom  time.Time  `json:"effective_from"`
	EffectiveUntil *time.Time `json:"effective_until"`
	Priority       int        `json:"priority"`
	IsActive       bool       `json:"is_active"`
	CreatedAt      time.Time  `json:"created_at"`
}

type ShiftResponse struct {
	ID        string `json:"id"`
	Weekday   int    `json:"weekday"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	ShiftType string `json:"shift_type"`
}

type BreakResponse struct {
	ID        string `json:"id"`
	Weekday   int    `json:"weekday"`
	Name      string `json:"name"`
	BreakType string `json:"break_type"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

func NewScheduleResponse(s *schedule.Schedule) ScheduleResponse {
	return ScheduleResponse{
		ID:             s.ID,
		ProviderID:     s.ProviderID,
		Name:           s.Name,
		EffectiveFrom:  s.EffectiveFrom,
		EffectiveUntil: s.EffectiveUntil,
		Priority:       s.Priority,
		IsActive:       s.IsActive,
		CreatedAt:      s.CreatedAt,
	}
}

func NewShiftResponse(sh *schedule.WorkingShift) ShiftResponse {
	return ShiftResponse{
		ID:        sh.ID,
		Weekday:   int(sh.Weekday),
		StartTime: sh.StartTime.String(),
		EndTime:   sh.EndTime.String(),
		ShiftType: string(sh.ShiftType),
	}
}

func NewBreakResponse(b *schedule.FixedBreak) BreakResponse {
	return BreakResponse{
		ID:        b.ID,
		Weekday:   int(b.Weekday),
		Name:      b.Name,
		BreakType: b.BreakType,
		StartTime: b.StartTime.String(),
		EndTime:   b.EndTime.String(),
	}
}

// parseClockPair parses the HH:MM start/end strings shared by shift and
// break bodies.
func parseClockPair(start, end string) (clock.TimeOfDay, clock.TimeOfDay, error) {
	s, err := clock.Parse(start)
	if err != nil {
		return 0, 0, err
	}
	e, err := clock.Parse(end)
	if err != nil {
		return 0, 0, err
	}
	return s, e, nil
}
