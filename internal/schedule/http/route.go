package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, providerMiddleware gin.HandlerFunc) {
	group := g.Group("/schedules")

	group.GET("", h.List)
	group.GET("/:id/day", h.ListDay)

	// Provider-side authoring
	group.Use(authMiddleware, providerMiddleware)
	{
		group.POST("", h.Create)
		group.DELETE("/:id", h.Delete)
		group.POST("/:id/shifts", h.AddShift)
		group.DELETE("/:id/shifts/:shiftID", h.RemoveShift)
		group.POST("/:id/breaks", h.AddBreak)
		group.DELETE("/:id/breaks/:breakID", h.RemoveBreak)
	}
}
