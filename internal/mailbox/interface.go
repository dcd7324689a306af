package mailbox

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	// GetSearchSettings returns the settings that shape conversation search for a mailbox.
	GetSearchSettings(ctx context.Context, slug string) (SearchSettings, error)
	// InvalidateSearchSettings drops the cached settings of a mailbox.
	InvalidateSearchSettings(ctx context.Context, slug string) error
}
