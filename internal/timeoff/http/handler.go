package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glowbook/beauty-booking-backend/internal/auth"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/response"
	"github.com/glowbook/beauty-booking-backend/internal/timeoff"
)

type Handler struct {
	service timeoff.Service
}

func NewHandler(service timeoff.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateTimeOffBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	startDate, err := time.Parse("2006-01-02", body.StartDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse("2006-01-02", body.EndDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "end_date must be YYYY-MM-DD"})
		return
	}

	req := timeoff.CreateRequest{
		ProviderID:     body.ProviderID,
		StartDate:      startDate,
		EndDate:        endDate,
		BlocksBookings: true,
		Reason:         body.Reason,
	}
	if body.BlocksBookings != nil {
		req.BlocksBookings = *body.BlocksBookings
	}
	if body.StartTime != nil {
		t, err := clock.Parse(*body.StartTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be HH:MM"})
			return
		}
		req.StartTime = &t
	}
	if body.EndTime != nil {
		t, err := clock.Parse(*body.EndTime)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "end_time must be HH:MM"})
			return
		}
		req.EndTime = &t
	}

	e, err := h.service.Create(c.Request.Context(), auth.GetUserID(c), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewTimeOffResponse(e))
}

func (h *Handler) List(c *gin.Context) {
	providerID := c.Query("provider_id")
	if _, err := uuid.Parse(providerID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "provider_id is required"})
		return
	}

	entries, err := h.service.ListByProvider(c.Request.Context(), providerID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]TimeOffResponse, len(entries))
	for i := range entries {
		items[i] = NewTimeOffResponse(&entries[i])
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, auth.GetUserID(c)); err != nil {
		response.Error(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
