package model

import "time"

// EventType is the kind of a conversation event.
type EventType string

const (
	EventTypeUpdate                    EventType = "update"
	EventTypeRequestHumanSupport       EventType = "request_human_support"
	EventTypeResolvedByAI              EventType = "resolved_by_ai"
	EventTypeReasoningToggled          EventType = "reasoning_toggled"
	EventTypeAutoClosedDueToInactivity EventType = "auto_closed_due_to_inactivity"
)

// Event records a change on a conversation. Changes carries at least a
// "status" key for status-change events.
type Event struct {
	ID             int64
	ConversationID int64
	Type           EventType
	Changes        map[string]any
	ByUserID       *string
	Reason         *string
	CreatedAt      time.Time
}
