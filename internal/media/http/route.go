package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, providerMiddleware gin.HandlerFunc) {
	providers := g.Group("/providers/:id/portfolio")
	providers.GET("", h.List)
	providers.POST("", authMiddleware, providerMiddleware, h.Upload)

	images := g.Group("/portfolio/:id")
	images.GET("/image", h.Download)
	images.GET("/thumbnail", h.DownloadThumbnail)
	images.DELETE("", authMiddleware, providerMiddleware, h.Delete)
}
