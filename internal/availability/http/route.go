package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc) {
	group := g.Group("/availability")

	group.GET("/slots", h.GetSlots)
	group.POST("/check", h.CheckSlot)

	group.POST("/book", authMiddleware, h.BookSlot)
}
