package repository

import (
	"context"

	"inbox-srv/internal/mailbox"
	"inbox-srv/internal/model"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	// GetBySlug returns ErrNotFound when the mailbox does not exist.
	GetBySlug(ctx context.Context, slug string) (model.Mailbox, error)
}

//go:generate mockery --name CacheRepository
type CacheRepository interface {
	// GetSearchSettings reports false on a cache miss.
	GetSearchSettings(ctx context.Context, slug string) (mailbox.SearchSettings, bool, error)
	SaveSearchSettings(ctx context.Context, slug string, s mailbox.SearchSettings) error
	DeleteSearchSettings(ctx context.Context, slug string) error
}
