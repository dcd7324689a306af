package postgre

import (
	"database/sql"

	"inbox-srv/internal/conversation/repository"
	"inbox-srv/pkg/log"
)

// DefaultKeywordMatchLimit caps the conversations returned by one keyword search.
const DefaultKeywordMatchLimit = 1000

type implRepository struct {
	db                *sql.DB
	l                 log.Logger
	keywordMatchLimit int
}

// New - Factory function
func New(db *sql.DB, l log.Logger, keywordMatchLimit int) repository.PostgresRepository {
	if keywordMatchLimit <= 0 {
		keywordMatchLimit = DefaultKeywordMatchLimit
	}
	return &implRepository{
		db:                db,
		l:                 l,
		keywordMatchLimit: keywordMatchLimit,
	}
}
