package httpserver

import (
	"context"

	mailboxPostgre "inbox-srv/internal/mailbox/repository/postgre"
	mailboxRedis "inbox-srv/internal/mailbox/repository/redis"
	mailboxUsecase "inbox-srv/internal/mailbox/usecase"
)

func (srv *HTTPServer) setupCoreDomains(ctx context.Context) error {
	mailboxRepo := mailboxPostgre.New(srv.postgresDB, srv.l)
	mailboxCache := mailboxRedis.New(srv.redisClient, srv.l, srv.searchConfig.SettingsCacheTTL)

	srv.mailboxUC = mailboxUsecase.New(mailboxRepo, mailboxCache, srv.l)

	srv.l.Infof(ctx, "Core domains (Mailbox) initialized")
	return nil
}
