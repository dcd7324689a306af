package postgre

import (
	"database/sql"
	"time"

	"inbox-srv/internal/conversation/repository"
	"inbox-srv/internal/model"
)

// scanSearchRow - scan one row of buildListPageQuery
func scanSearchRow(rows *sql.Rows) (repository.SearchRow, error) {
	var row repository.SearchRow
	c := &row.Conversation

	var (
		status                              string
		subject, assignedTo, emailFrom      sql.NullString
		anonymousSessionID                  sql.NullString
		mergedInto, issueGroup              sql.NullInt64
		lastMessageAt, closedAt, lastReadAt sql.NullTime
		customerEmail, customerName         sql.NullString
		customerValue                       sql.NullInt64
		recentText                          sql.NullString
		recentAt                            sql.NullTime
		hasUnread                           sql.NullBool
	)

	err := rows.Scan(
		&c.ID, &c.Slug, &subject, &status, &assignedTo, &emailFrom, &mergedInto,
		&c.CreatedAt, &lastMessageAt, &closedAt, &lastReadAt, &c.IsPrompt,
		&issueGroup, &anonymousSessionID,
		&customerEmail, &customerName, &customerValue,
		&recentText, &recentAt, &hasUnread,
	)
	if err != nil {
		return repository.SearchRow{}, err
	}

	c.Status = model.ConversationStatus(status)
	c.Subject = nullString(subject)
	c.AssignedToID = nullString(assignedTo)
	c.EmailFrom = nullString(emailFrom)
	c.AnonymousSessionID = nullString(anonymousSessionID)
	c.MergedIntoID = nullInt64(mergedInto)
	c.IssueGroupID = nullInt64(issueGroup)
	c.LastMessageAt = nullTime(lastMessageAt)
	c.ClosedAt = nullTime(closedAt)
	c.LastReadByAssigneeAt = nullTime(lastReadAt)

	if customerEmail.Valid {
		row.Customer = &model.PlatformCustomer{
			Email: customerEmail.String,
			Name:  nullString(customerName),
			Value: nullInt64(customerValue),
		}
	}

	row.RecentMessageText = nullString(recentText)
	row.RecentMessageAt = nullTime(recentAt)
	row.HasUnread = hasUnread.Valid && hasUnread.Bool
	return row, nil
}

func nullString(v sql.NullString) *string {
	if !v.Valid {
		return nil
	}
	return &v.String
}

func nullInt64(v sql.NullInt64) *int64 {
	if !v.Valid {
		return nil
	}
	return &v.Int64
}

func nullTime(v sql.NullTime) *time.Time {
	if !v.Valid {
		return nil
	}
	return &v.Time
}
