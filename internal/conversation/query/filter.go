package query

import (
	"math"
	"strings"
	"time"

	"inbox-srv/internal/model"
)

// Categories.
const (
	CategoryAll        = "all"
	CategoryMine       = "mine"
	CategoryAssigned   = "assigned"
	CategoryUnassigned = "unassigned"
)

// Sort modes.
const (
	SortNewest       = "newest"
	SortOldest       = "oldest"
	SortHighestValue = "highest_value"
)

// Actor kinds for status-change filters.
const (
	ActorSlackBot = "slack_bot"
	ActorHuman    = "human"
)

// Reasons recorded on status-change events performed through the Slack agent.
const (
	ClosedByAgentReason       = "Closed by agent"
	ReopenedByAgentReason     = "Reopened by agent"
	MarkedAsSpamByAgentReason = "Marked as spam by agent"
)

// Filter names. The first group is conversation-level and is shared with the
// keyword backend.
const (
	NameNotMerged          = "notMerged"
	NameStatus             = "status"
	NameIsAssigned         = "isAssigned"
	NameAssignee           = "assignee"
	NameIsPrompt           = "isPrompt"
	NameCreatedAfter       = "createdAfter"
	NameCreatedBefore      = "createdBefore"
	NameCustomer           = "customer"
	NameAnonymousSessionID = "anonymousSessionId"
	NameIssueGroup         = "issueGroup"

	NameReply             = "reply"
	NameReaction          = "reaction"
	NameEvents            = "events"
	NameClosed            = "closed"
	NameReopened          = "reopened"
	NameMarkedAsSpam      = "markedAsSpam"
	NameHasUnreadMessages = "hasUnreadMessages"
	NameIsVIP             = "isVip"
	NameMinValue          = "minValue"
	NameMaxValue          = "maxValue"
	NameSearch            = "search"
)

// Columns.
const (
	colID                   Column = "c.id"
	colStatus               Column = "c.status"
	colAssignedToID         Column = "c.assigned_to_id"
	colEmailFrom            Column = "c.email_from"
	colMergedIntoID         Column = "c.merged_into_id"
	colCreatedAt            Column = "c.created_at"
	colLastMessageAt        Column = "c.last_message_at"
	colClosedAt             Column = "c.closed_at"
	colLastReadByAssigneeAt Column = "c.last_read_by_assignee_at"
	colIsPrompt             Column = "c.is_prompt"
	colIssueGroupID         Column = "c.issue_group_id"
	colAnonymousSessionID   Column = "c.anonymous_session_id"
	colCustomerValue        Column = "pc.value"

	colMsgConversationID    Column = "m.conversation_id"
	colMsgRole              Column = "m.role"
	colMsgUserID            Column = "m.user_id"
	colMsgCreatedAt         Column = "m.created_at"
	colMsgDeletedAt         Column = "m.deleted_at"
	colMsgReactionType      Column = "m.reaction_type"
	colMsgReactionCreatedAt Column = "m.reaction_created_at"
	colMsgCleanedUpText     Column = "m.cleaned_up_text"

	colEvConversationID Column = "ev.conversation_id"
	colEvType           Column = "ev.type"
	colEvChanges        Column = "ev.changes"
	colEvByUserID       Column = "ev.by_user_id"
	colEvReason         Column = "ev.reason"
	colEvCreatedAt      Column = "ev.created_at"
)

const (
	tableMessages = "messages"
	tableEvents   = "conversation_events"
)

// StatusChangeFilter narrows a status-change existential check.
type StatusChangeFilter struct {
	By        string
	ByUserIDs []string
	Before    *time.Time
	After     *time.Time
}

// Filter is a validated search request. Zero values and empty lists mean
// "not filtered".
type Filter struct {
	Status             []string
	Assignee           []string
	IsAssigned         *bool
	IsPrompt           *bool
	CreatedAfter       *time.Time
	CreatedBefore      *time.Time
	Customer           []string
	AnonymousSessionID string
	IssueGroupID       *int64

	RepliedBy      []string
	RepliedAfter   *time.Time
	RepliedBefore  *time.Time
	ReactionType   string
	ReactionAfter  *time.Time
	ReactionBefore *time.Time
	Events         []string
	Closed         *StatusChangeFilter
	Reopened       *StatusChangeFilter
	MarkedAsSpam   *StatusChangeFilter

	HasUnreadMessages bool
	IsVIP             bool
	MinValueDollars   *float64
	MaxValueDollars   *float64

	Category string
	Search   string
	Sort     string
	Cursor   string
	Limit    int
}

// Settings are the per-mailbox values that shape compilation.
type Settings struct {
	// VIPThreshold is in whole currency units.
	VIPThreshold *int64
	// MetadataEnabled is true when a customer-value source is configured.
	MetadataEnabled bool
}

// Normalize applies category defaults. It returns a copy and never modifies f.
func Normalize(f Filter, currentUserID string) Filter {
	out := f
	out.Search = strings.TrimSpace(f.Search)
	out.Status = append([]string(nil), f.Status...)
	out.Assignee = append([]string(nil), f.Assignee...)

	if out.Category != "" && out.Search == "" && len(out.Status) == 0 {
		out.Status = []string{string(model.ConversationStatusOpen)}
	}
	switch out.Category {
	case CategoryMine:
		if currentUserID != "" {
			out.Assignee = []string{currentUserID}
		}
	case CategoryUnassigned:
		v := false
		out.IsAssigned = &v
	case CategoryAssigned:
		v := true
		out.IsAssigned = &v
	}
	return out
}

// ConversationWhere compiles the predicates that only touch the conversation
// row. The keyword backend receives this subset.
func ConversationWhere(f Filter) Where {
	var w Where
	w.Set(NameNotMerged, IsNull{Expr: colMergedIntoID})
	if len(f.Status) > 0 {
		w.Set(NameStatus, In{Expr: colStatus, Values: f.Status})
	}
	if f.IsAssigned != nil {
		w.Set(NameIsAssigned, IsNull{Expr: colAssignedToID, Not: *f.IsAssigned})
	}
	if len(f.Assignee) > 0 {
		w.Set(NameAssignee, In{Expr: colAssignedToID, Values: f.Assignee})
	}
	if f.IsPrompt != nil {
		w.Set(NameIsPrompt, Eq(colIsPrompt, *f.IsPrompt))
	}
	if f.CreatedAfter != nil {
		w.Set(NameCreatedAfter, Cmp(colCreatedAt, OpGt, *f.CreatedAfter))
	}
	if f.CreatedBefore != nil {
		w.Set(NameCreatedBefore, Cmp(colCreatedAt, OpLt, *f.CreatedBefore))
	}
	if len(f.Customer) > 0 {
		w.Set(NameCustomer, In{Expr: colEmailFrom, Values: f.Customer})
	}
	if f.AnonymousSessionID != "" {
		w.Set(NameAnonymousSessionID, Eq(colAnonymousSessionID, f.AnonymousSessionID))
	}
	if f.IssueGroupID != nil {
		w.Set(NameIssueGroup, Eq(colIssueGroupID, *f.IssueGroupID))
	}
	return w
}

// Compile extends the conversation-level predicates with message, event,
// customer-value and free-text predicates. matchIDs are the conversation ids
// returned by the keyword backend for f.Search.
func Compile(f Filter, base Where, s Settings, matchIDs []int64) Where {
	w := base.Clone()

	if len(f.RepliedBy) > 0 || f.RepliedAfter != nil || f.RepliedBefore != nil {
		where := And{
			Compare{Left: colMsgConversationID, Op: OpEq, Right: colID},
			Eq(colMsgRole, string(model.MessageRoleStaff)),
		}
		if len(f.RepliedBy) > 0 {
			where = append(where, In{Expr: colMsgUserID, Values: f.RepliedBy})
		}
		if f.RepliedAfter != nil {
			where = append(where, Cmp(colMsgCreatedAt, OpGt, *f.RepliedAfter))
		}
		if f.RepliedBefore != nil {
			where = append(where, Cmp(colMsgCreatedAt, OpLt, *f.RepliedBefore))
		}
		w.Set(NameReply, Exists{Table: tableMessages, Alias: "m", Where: where})
	}

	if f.ReactionType != "" {
		where := And{
			Compare{Left: colMsgConversationID, Op: OpEq, Right: colID},
			Eq(colMsgReactionType, f.ReactionType),
			IsNull{Expr: colMsgDeletedAt},
		}
		if f.ReactionAfter != nil {
			where = append(where, Cmp(colMsgReactionCreatedAt, OpGte, *f.ReactionAfter))
		}
		if f.ReactionBefore != nil {
			where = append(where, Cmp(colMsgReactionCreatedAt, OpLte, *f.ReactionBefore))
		}
		w.Set(NameReaction, Exists{Table: tableMessages, Alias: "m", Where: where})
	}

	if len(f.Events) > 0 {
		w.Set(NameEvents, hasEvent(In{Expr: colEvType, Values: f.Events}))
	}
	if f.Closed != nil {
		w.Set(NameClosed, hasStatusChange(model.ConversationStatusClosed, *f.Closed, ClosedByAgentReason))
	}
	if f.Reopened != nil {
		w.Set(NameReopened, hasStatusChange(model.ConversationStatusOpen, *f.Reopened, ReopenedByAgentReason))
	}
	if f.MarkedAsSpam != nil {
		w.Set(NameMarkedAsSpam, hasStatusChange(model.ConversationStatusSpam, *f.MarkedAsSpam, MarkedAsSpamByAgentReason))
	}

	if f.HasUnreadMessages {
		w.Set(NameHasUnreadMessages, HasUnread())
	}

	if f.IsVIP && s.VIPThreshold != nil {
		w.Set(NameIsVIP, Cmp(colCustomerValue, OpGte, *s.VIPThreshold*100))
	}
	if f.MinValueDollars != nil {
		w.Set(NameMinValue, Cmp(colCustomerValue, OpGt, ToMinorUnits(*f.MinValueDollars)))
	}
	if f.MaxValueDollars != nil {
		w.Set(NameMaxValue, Cmp(colCustomerValue, OpLt, ToMinorUnits(*f.MaxValueDollars)))
	}

	if f.Search != "" {
		ids := matchIDs
		if ids == nil {
			ids = []int64{}
		}
		w.Set(NameSearch, Or{
			Cmp(colEmailFrom, OpILike, "%"+EscapeLike(f.Search)+"%"),
			In{Expr: colID, Values: ids},
		})
	}
	return w
}

// HasUnread matches assigned conversations with a user message the assignee
// has not read yet.
func HasUnread() Predicate {
	return And{
		IsNull{Expr: colAssignedToID, Not: true},
		Exists{
			Table: tableMessages,
			Alias: "m",
			Where: And{
				Compare{Left: colMsgConversationID, Op: OpEq, Right: colID},
				Eq(colMsgRole, string(model.MessageRoleUser)),
				IsNull{Expr: colMsgDeletedAt},
				Compare{Left: colMsgCreatedAt, Op: OpGt, Right: Coalesce{colLastReadByAssigneeAt, colCreatedAt}},
			},
		},
	}
}

// RecentMessageWhere selects the visible user and staff messages of the
// outer conversation.
func RecentMessageWhere() Predicate {
	return And{
		Compare{Left: colMsgConversationID, Op: OpEq, Right: colID},
		In{Expr: colMsgRole, Values: []string{string(model.MessageRoleUser), string(model.MessageRoleStaff)}},
		IsNull{Expr: colMsgDeletedAt},
	}
}

// MessageTextMatches is a case-insensitive literal substring match on a
// message's cleaned up text.
func MessageTextMatches(q string) Predicate {
	return And{
		IsNull{Expr: colMsgDeletedAt},
		Cmp(colMsgCleanedUpText, OpILike, "%"+EscapeLike(q)+"%"),
	}
}

// ToMinorUnits converts whole currency units to the stored minor units,
// saturating at the int64 range.
func ToMinorUnits(dollars float64) int64 {
	v := math.Round(dollars * 100)
	switch {
	case math.IsNaN(v):
		return 0
	case v >= math.MaxInt64:
		return math.MaxInt64
	case v <= math.MinInt64:
		return math.MinInt64
	}
	return int64(v)
}

// EscapeLike escapes LIKE wildcards so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func hasEvent(p Predicate) Exists {
	return Exists{
		Table: tableEvents,
		Alias: "ev",
		Where: And{Compare{Left: colEvConversationID, Op: OpEq, Right: colID}, p},
	}
}

func hasStatusChange(status model.ConversationStatus, f StatusChangeFilter, botReason string) Exists {
	where := And{Compare{Left: colEvConversationID, Op: OpEq, Right: colID}}
	if f.By == ActorSlackBot {
		where = append(where, Eq(colEvReason, botReason))
	} else {
		where = append(where, IsNull{Expr: colEvByUserID, Not: true})
	}
	if len(f.ByUserIDs) > 0 {
		where = append(where, In{Expr: colEvByUserID, Values: f.ByUserIDs})
	}
	where = append(where, Cmp(JSONText{Column: colEvChanges, Key: "status"}, OpEq, string(status)))
	if f.Before != nil {
		where = append(where, Cmp(colEvCreatedAt, OpLt, *f.Before))
	}
	if f.After != nil {
		where = append(where, Cmp(colEvCreatedAt, OpGt, *f.After))
	}
	return Exists{Table: tableEvents, Alias: "ev", Where: where}
}
