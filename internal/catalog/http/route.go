package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, providerMiddleware gin.HandlerFunc) {
	group := g.Group("/services")

	group.GET("", h.List)
	group.GET("/:id", h.Get)

	group.POST("", authMiddleware, providerMiddleware, h.Create)
	group.PATCH("/:id", authMiddleware, providerMiddleware, h.Update)
	group.DELETE("/:id", authMiddleware, providerMiddleware, h.Delete)
}
