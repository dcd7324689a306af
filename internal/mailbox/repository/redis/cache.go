package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"inbox-srv/internal/mailbox"
	pkgRedis "inbox-srv/pkg/redis"
)

func settingsKey(slug string) string {
	return fmt.Sprintf("mailbox_search_settings:%s", slug)
}

func (r *implCacheRepository) GetSearchSettings(ctx context.Context, slug string) (mailbox.SearchSettings, bool, error) {
	data, err := r.redis.Get(ctx, settingsKey(slug))
	if pkgRedis.IsNil(err) {
		return mailbox.SearchSettings{}, false, nil
	}
	if err != nil {
		return mailbox.SearchSettings{}, false, err
	}

	var s mailbox.SearchSettings
	if err := json.Unmarshal([]byte(data), &s); err != nil {
		r.l.Errorf(ctx, "mailbox.repository.redis.GetSearchSettings: Failed to unmarshal settings: %v", err)
		return mailbox.SearchSettings{}, false, err
	}
	return s, true, nil
}

func (r *implCacheRepository) SaveSearchSettings(ctx context.Context, slug string, s mailbox.SearchSettings) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.redis.Set(ctx, settingsKey(slug), data, r.ttl); err != nil {
		r.l.Errorf(ctx, "mailbox.repository.redis.SaveSearchSettings: Failed to save to cache: %v", err)
		return err
	}
	return nil
}

func (r *implCacheRepository) DeleteSearchSettings(ctx context.Context, slug string) error {
	if err := r.redis.Delete(ctx, settingsKey(slug)); err != nil {
		r.l.Errorf(ctx, "mailbox.repository.redis.DeleteSearchSettings: Failed to delete from cache: %v", err)
		return err
	}
	return nil
}
