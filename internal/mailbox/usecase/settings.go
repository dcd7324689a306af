package usecase

import (
	"context"
	"errors"

	"inbox-srv/internal/mailbox"
	"inbox-srv/internal/mailbox/repository"
)

// GetSearchSettings - cache-aside lookup. Cache failures fall back to the store.
func (uc *implUseCase) GetSearchSettings(ctx context.Context, slug string) (mailbox.SearchSettings, error) {
	if s, ok, err := uc.cache.GetSearchSettings(ctx, slug); err != nil {
		uc.l.Warnf(ctx, "mailbox.usecase.GetSearchSettings: cache get failed: %v", err)
	} else if ok {
		return s, nil
	}

	mb, err := uc.repo.GetBySlug(ctx, slug)
	if errors.Is(err, repository.ErrNotFound) {
		return mailbox.SearchSettings{}, mailbox.ErrMailboxNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "mailbox.usecase.GetSearchSettings: GetBySlug failed: %v", err)
		return mailbox.SearchSettings{}, err
	}

	s := mailbox.SearchSettings{
		VIPThreshold:    mb.VIPThreshold,
		MetadataEnabled: mb.MetadataEnabled,
	}
	if err := uc.cache.SaveSearchSettings(ctx, slug, s); err != nil {
		uc.l.Warnf(ctx, "mailbox.usecase.GetSearchSettings: cache save failed: %v", err)
	}
	return s, nil
}

// InvalidateSearchSettings - drop cached settings after a mailbox changes
func (uc *implUseCase) InvalidateSearchSettings(ctx context.Context, slug string) error {
	return uc.cache.DeleteSearchSettings(ctx, slug)
}
