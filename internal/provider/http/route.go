package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, providerMiddleware gin.HandlerFunc) {
	group := g.Group("/providers")

	// Public browsing
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.GET("/:id/settings", h.GetSettings)

	// Provider-side management
	group.POST("", authMiddleware, providerMiddleware, h.CreateProfile)
	group.PATCH("/:id", authMiddleware, providerMiddleware, h.UpdateProfile)
	group.PUT("/:id/settings", authMiddleware, providerMiddleware, h.UpdateSettings)
}
