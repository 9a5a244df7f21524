package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glowbook/beauty-booking-backend/internal/auth"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/response"
	"github.com/glowbook/beauty-booking-backend/internal/schedule"
)

type Handler struct {
	service schedule.Service
}

func NewHandler(service schedule.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateScheduleBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	s, err := h.service.CreateSchedule(c.Request.Context(), auth.GetUserID(c), schedule.CreateScheduleRequest{
		ProviderID:     body.ProviderID,
		Name:           body.Name,
		EffectiveFrom:  body.EffectiveFrom,
		EffectiveUntil: body.EffectiveUntil,
		Priority:       body.Priority,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewScheduleResponse(s))
}

func (h *Handler) List(c *gin.Context) {
	providerID := c.Query("provider_id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider_id is required"})
		return
	}

	schedules, err := h.service.ListSchedules(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ScheduleResponse, len(schedules))
	for i, s := range schedules {
		items[i] = NewScheduleResponse(s)
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.DeleteSchedule(c.Request.Context(), id, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) ListDay(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	weekday, err := time.Parse("2006-01-02", c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	shifts, err := h.service.ShiftsFor(c.Request.Context(), id, weekday.Weekday())
	if err != nil {
		response.Error(c, err)
		return
	}
	breaks, err := h.service.FixedBreaksFor(c.Request.Context(), id, weekday.Weekday())
	if err != nil {
		response.Error(c, err)
		return
	}

	shiftItems := make([]ShiftResponse, len(shifts))
	for i := range shifts {
		shiftItems[i] = NewShiftResponse(&shifts[i])
	}
	breakItems := make([]BreakResponse, len(breaks))
	for i := range breaks {
		breakItems[i] = NewBreakResponse(&breaks[i])
	}

	c.JSON(http.StatusOK, gin.H{"shifts": shiftItems, "breaks": breakItems})
}

func (h *Handler) AddShift(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body CreateShiftBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, end, err := parseClockPair(body.StartTime, body.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "times must be HH:MM"})
		return
	}

	sh, err := h.service.AddShift(c.Request.Context(), auth.GetUserID(c), schedule.CreateShiftRequest{
		ScheduleID: id,
		Weekday:    time.Weekday(body.Weekday),
		StartTime:  start,
		EndTime:    end,
		ShiftType:  schedule.ShiftType(body.ShiftType),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewShiftResponse(sh))
}

func (h *Handler) RemoveShift(c *gin.Context) {
	id := c.Param("id")
	shiftID := c.Param("shiftID")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(shiftID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.RemoveShift(c.Request.Context(), shiftID, id, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) AddBreak(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body CreateBreakBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, end, err := parseClockPair(body.StartTime, body.EndTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "times must be HH:MM"})
		return
	}

	breakType := body.BreakType
	if breakType == "" {
		breakType = "custom"
	}

	b, err := h.service.AddBreak(c.Request.Context(), auth.GetUserID(c), schedule.CreateBreakRequest{
		ScheduleID: id,
		Weekday:    time.Weekday(body.Weekday),
		Name:       body.Name,
		BreakType:  breakType,
		StartTime:  start,
		EndTime:    end,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBreakResponse(b))
}

func (h *Handler) RemoveBreak(c *gin.Context) {
	id := c.Param("id")
	breakID := c.Param("breakID")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}
	if _, err := uuid.Parse(breakID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.RemoveBreak(c.Request.Context(), breakID, id, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
