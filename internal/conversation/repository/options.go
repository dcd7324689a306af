package repository

import "inbox-srv/internal/conversation/query"

// ListPageOptions - one keyset page. Limit is the number of rows to read,
// already including the look-ahead row.
type ListPageOptions struct {
	Where    query.Where
	Ordering query.Ordering
	Cursor   query.Cursor
	Limit    int
}
