package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, teacherMiddleware gin.HandlerFunc) {
	group := g.Group("/announcements")

	// Public display endpoint
	group.GET("", h.ListActive)

	// === Management Routes (Teachers Only) ===
	manageGroup := group.Group("")
	manageGroup.Use(teacherMiddleware)
	{
		manageGroup.GET("/manage", h.ListAll)
		manageGroup.POST("", h.Create)
		manageGroup.PUT("/:id", h.Update)
		manageGroup.DELETE("/:id", h.Delete)
	}
}
