package repository

import (
	"context"

	"inbox-srv/internal/conversation/query"
)

//go:generate mockery --name PostgresRepository
type PostgresRepository interface {
	SearchRepository
	KeywordSearcher
}

// SearchRepository - read side of conversation search
type SearchRepository interface {
	ListPage(ctx context.Context, opt ListPageOptions) ([]SearchRow, error)
	Count(ctx context.Context, where query.Where) (int64, error)
	ListIDs(ctx context.Context, where query.Where) ([]int64, error)
}

// KeywordSearcher - free-text backend. scope holds the conversation-level
// predicates so the backend can pre-filter.
type KeywordSearcher interface {
	SearchByKeywords(ctx context.Context, q string, scope query.Where) ([]KeywordMatch, error)
}
