package conversation

import (
	"context"

	"inbox-srv/internal/conversation/query"
	"inbox-srv/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Search plans the query and fetches one page.
	Search(ctx context.Context, sc model.Scope, input SearchInput) (SearchOutput, error)
	// Plan compiles the filter without touching conversation rows. Free-text
	// search still calls the keyword backend.
	Plan(ctx context.Context, sc model.Scope, input SearchInput) (Plan, error)
	// Page fetches the page described by a plan.
	Page(ctx context.Context, p Plan) (PageOutput, error)
	// Count is the number of conversations matching where, ignoring pagination.
	Count(ctx context.Context, where query.Where) (int64, error)
	// IDsMatching lists the ids of conversations matching where.
	IDsMatching(ctx context.Context, where query.Where) ([]int64, error)
}
