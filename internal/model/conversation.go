package model

import "time"

// ConversationStatus is the lifecycle state of a conversation.
type ConversationStatus string

const (
	ConversationStatusOpen   ConversationStatus = "open"
	ConversationStatusClosed ConversationStatus = "closed"
	ConversationStatusSpam   ConversationStatus = "spam"
)

// Conversation is a support conversation row (conversations_conversation).
// A conversation with MergedIntoID set has been absorbed into another one.
type Conversation struct {
	ID                   int64
	Slug                 string
	Subject              *string
	Status               ConversationStatus
	AssignedToID         *string
	EmailFrom            *string
	MergedIntoID         *int64
	CreatedAt            time.Time
	LastMessageAt        *time.Time
	ClosedAt             *time.Time
	LastReadByAssigneeAt *time.Time
	IsPrompt             bool
	IssueGroupID         *int64
	AnonymousSessionID   *string
}
