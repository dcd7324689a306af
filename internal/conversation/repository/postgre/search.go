package postgre

import (
	"context"
	"fmt"
	"time"

	"inbox-srv/internal/conversation/query"
	"inbox-srv/internal/conversation/repository"
	"inbox-srv/pkg/metrics"
)

// ListPage - one keyset page of conversations
func (r *implRepository) ListPage(ctx context.Context, opt repository.ListPageOptions) (res []repository.SearchRow, err error) {
	defer observe("page", time.Now(), &err)

	q, args := buildListPageQuery(opt)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("ListPage: %w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	res = make([]repository.SearchRow, 0, opt.Limit)
	for rows.Next() {
		row, err := scanSearchRow(rows)
		if err != nil {
			return nil, fmt.Errorf("ListPage: %w: %w", repository.ErrFailedToScan, err)
		}
		res = append(res, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListPage: %w: %w", repository.ErrFailedToList, err)
	}
	return res, nil
}

// Count - total matches of the base predicates
func (r *implRepository) Count(ctx context.Context, where query.Where) (total int64, err error) {
	defer observe("count", time.Now(), &err)

	q, args := buildCountQuery(where)
	if err := r.db.QueryRowContext(ctx, q, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("Count: %w: %w", repository.ErrFailedToCount, err)
	}
	return total, nil
}

// ListIDs - ids of every match of the base predicates
func (r *implRepository) ListIDs(ctx context.Context, where query.Where) (ids []int64, err error) {
	defer observe("ids", time.Now(), &err)

	q, args := buildListIDsQuery(where)
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("ListIDs: %w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	ids = []int64{}
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("ListIDs: %w: %w", repository.ErrFailedToScan, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListIDs: %w: %w", repository.ErrFailedToList, err)
	}
	return ids, nil
}

func observe(operation string, start time.Time, err *error) {
	metrics.SearchQueryDuration.
		WithLabelValues(operation, metrics.StatusOf(*err)).
		Observe(time.Since(start).Seconds())
}
