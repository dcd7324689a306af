package conversation

import (
	"time"

	"inbox-srv/internal/conversation/query"
	"inbox-srv/internal/model"
)

// SearchInput - one search request against a mailbox
type SearchInput struct {
	MailboxSlug string
	Filter      query.Filter
}

// Plan - everything needed to fetch a page, computed once per request
type Plan struct {
	Filter          query.Filter
	Where           query.Where
	Ordering        query.Ordering
	Cursor          query.Cursor
	Limit           int
	Matches         map[int64]string
	Settings        query.Settings
	MetadataEnabled bool
}

// PageOutput - one page of results
type PageOutput struct {
	Results    []ConversationSummary
	NextCursor *string
}

// SearchOutput - page plus the base predicates for count / id list
type SearchOutput struct {
	Results         []ConversationSummary
	NextCursor      *string
	Limit           int
	Where           query.Where
	MetadataEnabled bool
	AssignedToIDs   []string
}

// CustomerSummary - platform customer attached to a conversation
type CustomerSummary struct {
	Email string
	Name  *string
	Value *int64
	IsVIP bool
}

// ConversationSummary - list item returned by search
type ConversationSummary struct {
	ID                 int64
	Slug               string
	Subject            *string
	Status             model.ConversationStatus
	EmailFrom          *string
	AssignedToID       *string
	IssueGroupID       *int64
	CreatedAt          time.Time
	LastMessageAt      *time.Time
	ClosedAt           *time.Time
	IsPrompt           bool
	PlatformCustomer   *CustomerSummary
	MatchedMessageText *string
	RecentMessageText  *string
	RecentMessageAt    *time.Time
	UnreadMessageCount int
}
