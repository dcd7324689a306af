package usecase

import (
	"inbox-srv/internal/mailbox"
	"inbox-srv/internal/mailbox/repository"
	"inbox-srv/pkg/log"
)

type implUseCase struct {
	repo  repository.PostgresRepository
	cache repository.CacheRepository
	l     log.Logger
}

// New - Factory function
func New(repo repository.PostgresRepository, cache repository.CacheRepository, l log.Logger) mailbox.UseCase {
	return &implUseCase{
		repo:  repo,
		cache: cache,
		l:     l,
	}
}
