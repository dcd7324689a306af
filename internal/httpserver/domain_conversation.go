package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	conversationHTTP "inbox-srv/internal/conversation/delivery/http"
	conversationPostgre "inbox-srv/internal/conversation/repository/postgre"
	conversationUsecase "inbox-srv/internal/conversation/usecase"
	"inbox-srv/internal/middleware"
)

func (srv *HTTPServer) setupConversationDomain(ctx context.Context, r *gin.RouterGroup, mw middleware.Middleware) error {
	repo := conversationPostgre.New(srv.postgresDB, srv.l, srv.searchConfig.KeywordMatchLimit)

	uc := conversationUsecase.New(repo, repo, srv.mailboxUC, srv.l)

	handler := conversationHTTP.New(srv.l, uc)
	handler.RegisterRoutes(r, mw)

	srv.l.Infof(ctx, "Conversation domain registered")
	return nil
}
