package http

import (
	"inbox-srv/internal/conversation"
	"inbox-srv/internal/middleware"
	"inbox-srv/pkg/log"

	"github.com/gin-gonic/gin"
)

// Handler - conversation search HTTP handler
type Handler interface {
	RegisterRoutes(r *gin.RouterGroup, mw middleware.Middleware)
}

type handler struct {
	l  log.Logger
	uc conversation.UseCase
}

// New - Factory
func New(l log.Logger, uc conversation.UseCase) Handler {
	return &handler{l: l, uc: uc}
}
