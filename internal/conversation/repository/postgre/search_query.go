package postgre

import (
	"strings"

	"inbox-srv/internal/conversation/query"
	"inbox-srv/internal/conversation/repository"
)

const (
	conversationColumns = "c.id, c.slug, c.subject, c.status, c.assigned_to_id, c.email_from, c.merged_into_id," +
		" c.created_at, c.last_message_at, c.closed_at, c.last_read_by_assignee_at, c.is_prompt," +
		" c.issue_group_id, c.anonymous_session_id"
	customerColumns = "pc.email, pc.name, pc.value"

	fromConversations = "FROM conversations_conversation c" +
		" LEFT JOIN mailboxes_platformcustomer pc ON pc.email = c.email_from"
)

// buildListPageQuery - SELECT for one keyset page
func buildListPageQuery(opt repository.ListPageOptions) (string, []any) {
	r := query.NewRenderer()

	var b strings.Builder
	b.WriteString("SELECT ")
	b.WriteString(conversationColumns)
	b.WriteString(", ")
	b.WriteString(customerColumns)
	b.WriteString(", recent_message.cleaned_up_text, recent_message.created_at, unread_messages.has_unread ")
	b.WriteString(fromConversations)
	b.WriteString(" LEFT JOIN LATERAL (SELECT m.cleaned_up_text, m.created_at FROM messages m WHERE ")
	b.WriteString(r.Predicate(query.RecentMessageWhere()))
	b.WriteString(" ORDER BY m.created_at DESC LIMIT 1) AS recent_message ON TRUE")
	b.WriteString(" LEFT JOIN LATERAL (SELECT ")
	b.WriteString(r.Predicate(query.HasUnread()))
	b.WriteString(" AS has_unread) AS unread_messages ON TRUE")

	where := append(opt.Where.And(), query.Keyset(opt.Ordering, opt.Cursor))
	b.WriteString(" WHERE ")
	b.WriteString(r.Predicate(where))
	b.WriteString(" ORDER BY ")
	b.WriteString(r.OrderBy(opt.Ordering.Terms()))
	b.WriteString(" LIMIT ")
	b.WriteString(r.Bind(opt.Limit))

	return b.String(), r.Args()
}

// buildCountQuery - COUNT over the base predicates
func buildCountQuery(where query.Where) (string, []any) {
	r := query.NewRenderer()
	return "SELECT COUNT(*) " + fromConversations + " WHERE " + r.Predicate(where.And()), r.Args()
}

// buildListIDsQuery - ids over the base predicates, no ordering
func buildListIDsQuery(where query.Where) (string, []any) {
	r := query.NewRenderer()
	return "SELECT c.id " + fromConversations + " WHERE " + r.Predicate(where.And()), r.Args()
}

// buildKeywordQuery - newest matching message per conversation, scoped by
// the conversation-level predicates
func buildKeywordQuery(q string, scope query.Where, limit int) (string, []any) {
	r := query.NewRenderer()

	var b strings.Builder
	b.WriteString("SELECT DISTINCT ON (m.conversation_id) m.conversation_id, m.cleaned_up_text")
	b.WriteString(" FROM messages m JOIN conversations_conversation c ON c.id = m.conversation_id")
	b.WriteString(" WHERE ")
	b.WriteString(r.Predicate(append(query.And{query.MessageTextMatches(q)}, scope.Predicates()...)))
	b.WriteString(" ORDER BY m.conversation_id DESC, m.created_at DESC")
	b.WriteString(" LIMIT ")
	b.WriteString(r.Bind(limit))

	return b.String(), r.Args()
}
