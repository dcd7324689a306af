package usecase

import (
	"inbox-srv/internal/conversation"
	"inbox-srv/internal/conversation/query"
	"inbox-srv/internal/conversation/repository"
)

func keyOf(o query.Ordering, r repository.SearchRow) query.SortKey {
	var value *int64
	if r.Customer != nil {
		value = r.Customer.Value
	}
	return o.KeyOf(r.Conversation, value)
}

// toSummary - convert a search row to a list item
func toSummary(r repository.SearchRow, p conversation.Plan) conversation.ConversationSummary {
	c := r.Conversation
	out := conversation.ConversationSummary{
		ID:                c.ID,
		Slug:              c.Slug,
		Subject:           c.Subject,
		Status:            c.Status,
		EmailFrom:         c.EmailFrom,
		AssignedToID:      c.AssignedToID,
		IssueGroupID:      c.IssueGroupID,
		CreatedAt:         c.CreatedAt,
		LastMessageAt:     c.LastMessageAt,
		ClosedAt:          c.ClosedAt,
		IsPrompt:          c.IsPrompt,
		RecentMessageText: nonEmpty(r.RecentMessageText),
		RecentMessageAt:   r.RecentMessageAt,
	}

	if r.Customer != nil {
		out.PlatformCustomer = &conversation.CustomerSummary{
			Email: r.Customer.Email,
			Name:  r.Customer.Name,
			Value: r.Customer.Value,
			IsVIP: r.Customer.IsVIP(p.Settings.VIPThreshold),
		}
	}
	if snippet, ok := p.Matches[c.ID]; ok {
		out.MatchedMessageText = nonEmpty(&snippet)
	}
	if r.HasUnread {
		out.UnreadMessageCount = 1
	}
	return out
}

func nonEmpty(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}
