package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"inbox-srv/internal/mailbox/repository"
	"inbox-srv/internal/model"
)

const getBySlugQuery = `
	SELECT mb.id, mb.slug, mb.name, mb.vip_threshold,
		EXISTS (SELECT 1 FROM mailboxes_metadataapi ma WHERE ma.mailbox_id = mb.id) AS metadata_enabled
	FROM mailboxes_mailbox mb
	WHERE mb.slug = $1
`

// GetBySlug - mailbox plus whether a customer-value metadata source is configured
func (r *implRepository) GetBySlug(ctx context.Context, slug string) (model.Mailbox, error) {
	var (
		mb           model.Mailbox
		vipThreshold sql.NullInt64
	)

	err := r.db.QueryRowContext(ctx, getBySlugQuery, slug).Scan(
		&mb.ID, &mb.Slug, &mb.Name, &vipThreshold, &mb.MetadataEnabled,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Mailbox{}, repository.ErrNotFound
	}
	if err != nil {
		return model.Mailbox{}, fmt.Errorf("GetBySlug: %w: %w", repository.ErrFailedToGet, err)
	}

	if vipThreshold.Valid {
		mb.VIPThreshold = &vipThreshold.Int64
	}
	return mb, nil
}
