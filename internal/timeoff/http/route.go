package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, providerMiddleware gin.HandlerFunc) {
	group := g.Group("/time-off")

	group.Use(authMiddleware, providerMiddleware)
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.DELETE("/:id", h.Delete)
	}
}
