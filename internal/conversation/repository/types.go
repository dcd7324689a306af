package repository

import (
	"time"

	"inbox-srv/internal/model"
)

// SearchRow - conversation joined to its customer, most recent message and unread flag
type SearchRow struct {
	Conversation      model.Conversation
	Customer          *model.PlatformCustomer
	RecentMessageText *string
	RecentMessageAt   *time.Time
	HasUnread         bool
}

// KeywordMatch - conversation matched by the keyword backend
type KeywordMatch struct {
	ConversationID int64
	MatchedSnippet string
}
