package http

import (
	"inbox-srv/internal/middleware"

	"github.com/gin-gonic/gin"
)

func (h *handler) RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware) {
	api := r.Group("/api/v1/mailboxes/:mailbox_slug/conversations")
	api.Use(mw.Auth())
	{
		api.POST("/search", h.Search)
		api.POST("/count", h.Count)
		api.POST("/ids", h.IDs)
	}
}
