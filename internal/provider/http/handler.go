package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/glowbook/beauty-booking-backend/internal/auth"
	"github.com/glowbook/beauty-booking-backend/internal/pkg/response"
	"github.com/glowbook/beauty-booking-backend/internal/provider"
)

type Handler struct {
	service provider.Service
}

func NewHandler(service provider.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	filter := provider.Filter{
		City:     c.Query("city"),
		Keyword:  c.Query("keyword"),
		Page:     page,
		PageSize: pageSize,
	}

	providers, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ProviderResponse, len(providers))
	for i, p := range providers {
		items[i] = NewProviderResponse(p)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, page, pageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	p, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProviderResponse(p))
}

func (h *Handler) CreateProfile(c *gin.Context) {
	var body CreateProfileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	p, err := h.service.CreateProfile(c.Request.Context(), provider.CreateProfileRequest{
		UserID:      auth.GetUserID(c),
		DisplayName: body.DisplayName,
		Bio:         body.Bio,
		City:        body.City,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewProviderResponse(p))
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateProfileBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), id, auth.GetUserID(c), provider.UpdateProfileRequest{
		DisplayName: body.DisplayName,
		Bio:         body.Bio,
		City:        body.City,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewProviderResponse(p))
}

func (h *Handler) GetSettings(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	settings, found, err := h.service.ResolveSettings(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSettingsResponse(settings, !found))
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateSettingsBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	settings, err := h.service.UpdateSettings(c.Request.Context(), id, auth.GetUserID(c), provider.UpdateSettingsRequest{
		MinAdvanceBookingHours:   body.MinAdvanceBookingHours,
		MaxAdvanceBookingDays:    body.MaxAdvanceBookingDays,
		BufferMinutes:            body.BufferMinutes,
		PrayerBreaksEnabled:      body.PrayerBreaksEnabled,
		PrayerFlexibilityMinutes: body.PrayerFlexibilityMinutes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewSettingsResponse(settings, false))
}
