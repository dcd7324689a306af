package model

import "time"

// MessageRole is the author kind of a message.
type MessageRole string

const (
	MessageRoleUser        MessageRole = "user"
	MessageRoleStaff       MessageRole = "staff"
	MessageRoleAIAssistant MessageRole = "ai_assistant"
	MessageRoleTool        MessageRole = "tool"
)

// Message belongs to exactly one conversation. DeletedAt marks a soft delete.
type Message struct {
	ID                int64
	ConversationID    int64
	Role              MessageRole
	UserID            *string
	CreatedAt         time.Time
	DeletedAt         *time.Time
	ReactionType      *string
	ReactionCreatedAt *time.Time
	CleanedUpText     *string
}
