package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/glowbook/beauty-booking-backend/internal/auth"
	"github.com/glowbook/beauty-booking-backend/internal/availability"
	bookinghttp "github.com/glowbook/beauty-booking-backend/internal/booking/http"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/clock"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/response"
)

type Handler struct {
	service availability.Service
}

func NewHandler(service availability.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) GetSlots(c *gin.Context) {
	var query SlotsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	date, err := time.Parse("2006-01-02", query.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	d, err := h.service.GetAvailableSlots(c.Request.Context(), availability.SlotsRequest{
		ProviderID: query.ProviderID,
		ServiceID:  query.ServiceID,
		Date:       date,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewDayAvailabilityResponse(d))
}

func (h *Handler) CheckSlot(c *gin.Context) {
	var body CheckSlotBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, err := clock.Parse(body.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be HH:MM"})
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	result, err := h.service.CheckSlot(c.Request.Context(), availability.CheckRequest{
		ProviderID: body.ProviderID,
		ServiceID:  body.ServiceID,
		Date:       date,
		StartTime:  start,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewCheckResultResponse(result))
}

func (h *Handler) BookSlot(c *gin.Context) {
	var body BookSlotBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	start, err := clock.Parse(body.StartTime)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start_time must be HH:MM"})
		return
	}
	date, err := time.Parse("2006-01-02", body.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "date must be YYYY-MM-DD"})
		return
	}

	b, err := h.service.BookSlot(c.Request.Context(), auth.GetUserID(c), availability.BookRequest{
		ProviderID: body.ProviderID,
		ServiceID:  body.ServiceID,
		Date:       date,
		StartTime:  start,
		Notes:      body.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusCreated, bookinghttp.NewBookingResponse(b))
}
