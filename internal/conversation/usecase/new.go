package usecase

import (
	"inbox-srv/internal/conversation"
	"inbox-srv/internal/conversation/repository"
	"inbox-srv/internal/mailbox"
	"inbox-srv/pkg/log"
)

type implUseCase struct {
	repo      repository.SearchRepository
	keyword   repository.KeywordSearcher
	mailboxUC mailbox.UseCase
	l         log.Logger
}

// New - Factory function
func New(
	repo repository.SearchRepository,
	keyword repository.KeywordSearcher,
	mailboxUC mailbox.UseCase,
	l log.Logger,
) conversation.UseCase {
	return &implUseCase{
		repo:      repo,
		keyword:   keyword,
		mailboxUC: mailboxUC,
		l:         l,
	}
}
