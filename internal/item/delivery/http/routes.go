package http

import (
	"item-checklist/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Every route that rewrites a description goes through the rate limiter.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	items := rg.Group("/items")
	{
		items.POST("", mw.RateLimit(), h.Create)
		items.GET("", h.List)
		items.GET("/:id", h.Detail)
		items.PUT("/:id/description", mw.RateLimit(), h.UpdateDescription)
		items.POST("/:id/timestamp", mw.RateLimit(), h.InsertTimestamp)

		cl := items.Group("/:id/checklist", mw.RateLimit())
		cl.POST("/toggle", h.ToggleChecklistItem)
		cl.POST("/reset", h.ResetChecklist)
		cl.POST("/items", h.AddChecklistItem)
	}
}
