package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"inbox-srv/internal/conversation/query"
	"inbox-srv/internal/conversation/repository"
	"inbox-srv/pkg/metrics"
)

// SearchByKeywords - substring match over messages.cleaned_up_text, one
// snippet per conversation
func (r *implRepository) SearchByKeywords(ctx context.Context, q string, scope query.Where) (matches []repository.KeywordMatch, err error) {
	defer observe("keywords", time.Now(), &err)

	stmt, args := buildKeywordQuery(q, scope, r.keywordMatchLimit)
	rows, err := r.db.QueryContext(ctx, stmt, args...)
	if err != nil {
		return nil, fmt.Errorf("SearchByKeywords: %w: %w", repository.ErrFailedToList, err)
	}
	defer rows.Close()

	matches = []repository.KeywordMatch{}
	for rows.Next() {
		var (
			m       repository.KeywordMatch
			snippet sql.NullString
		)
		if err := rows.Scan(&m.ConversationID, &snippet); err != nil {
			return nil, fmt.Errorf("SearchByKeywords: %w: %w", repository.ErrFailedToScan, err)
		}
		m.MatchedSnippet = snippet.String
		matches = append(matches, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("SearchByKeywords: %w: %w", repository.ErrFailedToList, err)
	}

	if len(matches) >= r.keywordMatchLimit {
		metrics.KeywordMatchesCappedTotal.Inc()
		r.l.Warnf(ctx, "conversation.repository.postgre.SearchByKeywords: matches capped at %d", r.keywordMatchLimit)
	}

	r.l.Debugf(ctx, "conversation.repository.postgre.SearchByKeywords: %d matches", len(matches))
	return matches, nil
}
