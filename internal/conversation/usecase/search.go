package usecase

import (
	"context"
	"fmt"

	"inbox-srv/internal/conversation"
	"inbox-srv/internal/conversation/query"
	"inbox-srv/internal/conversation/repository"
	"inbox-srv/internal/model"
	"inbox-srv/pkg/metrics"
	"inbox-srv/pkg/paginator"
)

// Search - plan and fetch one page
func (uc *implUseCase) Search(ctx context.Context, sc model.Scope, input conversation.SearchInput) (conversation.SearchOutput, error) {
	p, err := uc.Plan(ctx, sc, input)
	if err != nil {
		return conversation.SearchOutput{}, err
	}

	page, err := uc.Page(ctx, p)
	if err != nil {
		return conversation.SearchOutput{}, err
	}

	return conversation.SearchOutput{
		Results:         page.Results,
		NextCursor:      page.NextCursor,
		Limit:           p.Limit,
		Where:           p.Where,
		MetadataEnabled: p.MetadataEnabled,
		AssignedToIDs:   p.Filter.Assignee,
	}, nil
}

// Plan - normalize, run the keyword pre-pass, compile predicates, pick the
// ordering and decode the cursor
func (uc *implUseCase) Plan(ctx context.Context, sc model.Scope, input conversation.SearchInput) (conversation.Plan, error) {
	settings, err := uc.mailboxUC.GetSearchSettings(ctx, input.MailboxSlug)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Plan: GetSearchSettings failed: %v", err)
		return conversation.Plan{}, err
	}
	s := query.Settings{
		VIPThreshold:    settings.VIPThreshold,
		MetadataEnabled: settings.MetadataEnabled,
	}

	f := query.Normalize(input.Filter, sc.UserID)
	cq := paginator.CursorQuery{Cursor: f.Cursor, Limit: f.Limit}
	cq.Adjust()
	f.Cursor, f.Limit = cq.Cursor, cq.Limit

	base := query.ConversationWhere(f)

	var (
		matches  map[int64]string
		matchIDs []int64
	)
	if f.Search != "" {
		found, err := uc.keyword.SearchByKeywords(ctx, f.Search, base)
		if err != nil {
			uc.l.Errorf(ctx, "conversation.usecase.Plan: SearchByKeywords failed: %v", err)
			return conversation.Plan{}, fmt.Errorf("%w: %w", conversation.ErrKeywordSearchFailed, err)
		}
		metrics.KeywordMatches.Observe(float64(len(found)))

		matches = make(map[int64]string, len(found))
		matchIDs = make([]int64, 0, len(found))
		for _, m := range found {
			if _, seen := matches[m.ConversationID]; seen {
				continue
			}
			matches[m.ConversationID] = m.MatchedSnippet
			matchIDs = append(matchIDs, m.ConversationID)
		}
	}

	metadataEnabled := query.MetadataEnabled(f, s)
	ordering := query.SelectOrdering(f, metadataEnabled)

	cursor, ok := query.DecodeCursor(f.Cursor, ordering)
	if !ok {
		metrics.CursorResetsTotal.Inc()
		uc.l.Warnf(ctx, "conversation.usecase.Plan: discarded cursor for ordering %s, restarting pagination", ordering.Strategy())
	}

	return conversation.Plan{
		Filter:          f,
		Where:           query.Compile(f, base, s, matchIDs),
		Ordering:        ordering,
		Cursor:          cursor,
		Limit:           f.Limit,
		Matches:         matches,
		Settings:        s,
		MetadataEnabled: metadataEnabled,
	}, nil
}

// Page - fetch limit+1 rows, trim, and compute the next cursor from the last
// kept row
func (uc *implUseCase) Page(ctx context.Context, p conversation.Plan) (conversation.PageOutput, error) {
	rows, err := uc.repo.ListPage(ctx, repository.ListPageOptions{
		Where:    p.Where,
		Ordering: p.Ordering,
		Cursor:   p.Cursor,
		Limit:    p.Limit + 1,
	})
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Page: ListPage failed: %v", err)
		return conversation.PageOutput{}, fmt.Errorf("%w: %w", conversation.ErrLoadFailed, err)
	}
	metrics.SearchOrderingTotal.WithLabelValues(p.Ordering.Strategy()).Inc()

	hasNext := len(rows) > p.Limit
	if hasNext {
		rows = rows[:p.Limit]
	}
	uc.checkOrder(ctx, p, rows)

	out := conversation.PageOutput{
		Results: make([]conversation.ConversationSummary, 0, len(rows)),
	}
	for _, r := range rows {
		out.Results = append(out.Results, toSummary(r, p))
	}

	if hasNext && len(rows) > 0 {
		last := rows[len(rows)-1]
		token, err := query.EncodeCursor(query.CursorFor(p.Ordering, keyOf(p.Ordering, last)))
		if err != nil {
			uc.l.Errorf(ctx, "conversation.usecase.Page: EncodeCursor failed: %v", err)
			return conversation.PageOutput{}, err
		}
		out.NextCursor = &token
	}
	return out, nil
}

// Count - total matches, ignoring pagination
func (uc *implUseCase) Count(ctx context.Context, where query.Where) (int64, error) {
	total, err := uc.repo.Count(ctx, where)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.Count: Count failed: %v", err)
		return 0, fmt.Errorf("%w: %w", conversation.ErrLoadFailed, err)
	}
	return total, nil
}

// IDsMatching - ids of every match, no ordering
func (uc *implUseCase) IDsMatching(ctx context.Context, where query.Where) ([]int64, error) {
	ids, err := uc.repo.ListIDs(ctx, where)
	if err != nil {
		uc.l.Errorf(ctx, "conversation.usecase.IDsMatching: ListIDs failed: %v", err)
		return nil, fmt.Errorf("%w: %w", conversation.ErrLoadFailed, err)
	}
	return ids, nil
}

// checkOrder logs when the store returned rows out of the selected order,
// which would break keyset pagination.
func (uc *implUseCase) checkOrder(ctx context.Context, p conversation.Plan, rows []repository.SearchRow) {
	for i := 1; i < len(rows); i++ {
		if !p.Ordering.Less(keyOf(p.Ordering, rows[i-1]), keyOf(p.Ordering, rows[i])) {
			uc.l.Errorf(ctx, "conversation.usecase.Page: rows %d and %d out of %s order",
				rows[i-1].Conversation.ID, rows[i].Conversation.ID, p.Ordering.Strategy())
			return
		}
	}
}
