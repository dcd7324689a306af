package redis

import (
	"time"

	"inbox-srv/internal/mailbox/repository"
	"inbox-srv/pkg/log"
	pkgRedis "inbox-srv/pkg/redis"
)

// DefaultSettingsTTL is how long mailbox search settings stay cached.
const DefaultSettingsTTL = 5 * time.Minute

type implCacheRepository struct {
	redis pkgRedis.IRedis
	l     log.Logger
	ttl   time.Duration
}

// New - Factory
func New(redis pkgRedis.IRedis, l log.Logger, ttl time.Duration) repository.CacheRepository {
	if ttl <= 0 {
		ttl = DefaultSettingsTTL
	}
	return &implCacheRepository{
		redis: redis,
		l:     l,
		ttl:   ttl,
	}
}
