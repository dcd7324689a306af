package http

import (
	"time"

	"inbox-srv/internal/conversation"
	"inbox-srv/internal/conversation/query"
	"inbox-srv/pkg/paginator"
	"inbox-srv/pkg/response"
)

type statusChangeReq struct {
	By        string     `json:"by" binding:"omitempty,oneof=slack_bot human"`
	ByUserIDs []string   `json:"by_user_ids"`
	Before    *time.Time `json:"before"`
	After     *time.Time `json:"after"`
}

func (r *statusChangeReq) toFilter() *query.StatusChangeFilter {
	if r == nil {
		return nil
	}
	return &query.StatusChangeFilter{
		By:        r.By,
		ByUserIDs: r.ByUserIDs,
		Before:    r.Before,
		After:     r.After,
	}
}

type searchReq struct {
	MailboxSlug  string `json:"-"`
	IncludeTotal bool   `json:"-"`

	Status             []string   `json:"status" binding:"omitempty,dive,oneof=open closed spam"`
	Assignee           []string   `json:"assignee"`
	IsAssigned         *bool      `json:"is_assigned"`
	IsPrompt           *bool      `json:"is_prompt"`
	CreatedAfter       *time.Time `json:"created_after"`
	CreatedBefore      *time.Time `json:"created_before"`
	Customer           []string   `json:"customer"`
	AnonymousSessionID string     `json:"anonymous_session_id"`
	IssueGroupID       *int64     `json:"issue_group_id"`

	RepliedBy      []string         `json:"replied_by"`
	RepliedAfter   *time.Time       `json:"replied_after"`
	RepliedBefore  *time.Time       `json:"replied_before"`
	ReactionType   string           `json:"reaction_type" binding:"max=64"`
	ReactionAfter  *time.Time       `json:"reaction_after"`
	ReactionBefore *time.Time       `json:"reaction_before"`
	Events         []string         `json:"events" binding:"omitempty,dive,oneof=update request_human_support resolved_by_ai reasoning_toggled auto_closed_due_to_inactivity"`
	Closed         *statusChangeReq `json:"closed"`
	Reopened       *statusChangeReq `json:"reopened"`
	MarkedAsSpam   *statusChangeReq `json:"marked_as_spam"`

	HasUnreadMessages bool     `json:"has_unread_messages"`
	IsVIP             bool     `json:"is_vip"`
	MinValueDollars   *float64 `json:"min_value_dollars" binding:"omitempty,min=0,max=92233720368547758"`
	MaxValueDollars   *float64 `json:"max_value_dollars" binding:"omitempty,min=0,max=92233720368547758"`

	Category string `json:"category" binding:"omitempty,oneof=all mine assigned unassigned"`
	Search   string `json:"search" binding:"max=1000"`
	Sort     string `json:"sort" binding:"omitempty,oneof=newest oldest highest_value"`
	Cursor   string `json:"cursor"`
	Limit    int    `json:"limit" binding:"min=0"`
}

func (r searchReq) toInput() conversation.SearchInput {
	return conversation.SearchInput{
		MailboxSlug: r.MailboxSlug,
		Filter: query.Filter{
			Status:             r.Status,
			Assignee:           r.Assignee,
			IsAssigned:         r.IsAssigned,
			IsPrompt:           r.IsPrompt,
			CreatedAfter:       r.CreatedAfter,
			CreatedBefore:      r.CreatedBefore,
			Customer:           r.Customer,
			AnonymousSessionID: r.AnonymousSessionID,
			IssueGroupID:       r.IssueGroupID,
			RepliedBy:          r.RepliedBy,
			RepliedAfter:       r.RepliedAfter,
			RepliedBefore:      r.RepliedBefore,
			ReactionType:       r.ReactionType,
			ReactionAfter:      r.ReactionAfter,
			ReactionBefore:     r.ReactionBefore,
			Events:             r.Events,
			Closed:             r.Closed.toFilter(),
			Reopened:           r.Reopened.toFilter(),
			MarkedAsSpam:       r.MarkedAsSpam.toFilter(),
			HasUnreadMessages:  r.HasUnreadMessages,
			IsVIP:              r.IsVIP,
			MinValueDollars:    r.MinValueDollars,
			MaxValueDollars:    r.MaxValueDollars,
			Category:           r.Category,
			Search:             r.Search,
			Sort:               r.Sort,
			Cursor:             r.Cursor,
			Limit:              r.Limit,
		},
	}
}

type customerResp struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Value *int64  `json:"value"`
	IsVIP bool    `json:"is_vip"`
}

type conversationResp struct {
	ID                 int64              `json:"id"`
	Slug               string             `json:"slug"`
	Subject            *string            `json:"subject"`
	Status             string             `json:"status"`
	EmailFrom          *string            `json:"email_from"`
	AssignedToID       *string            `json:"assigned_to_id"`
	IssueGroupID       *int64             `json:"issue_group_id"`
	CreatedAt          response.DateTime  `json:"created_at"`
	LastMessageAt      *response.DateTime `json:"last_message_at"`
	ClosedAt           *response.DateTime `json:"closed_at"`
	IsPrompt           bool               `json:"is_prompt"`
	PlatformCustomer   *customerResp      `json:"platform_customer"`
	MatchedMessageText *string            `json:"matched_message_text"`
	RecentMessageText  *string            `json:"recent_message_text"`
	RecentMessageAt    *response.DateTime `json:"recent_message_at"`
	UnreadMessageCount int                `json:"unread_message_count"`
}

type searchResp struct {
	Conversations []conversationResp   `json:"conversations"`
	NextCursor    *string              `json:"next_cursor"`
	Paging        paginator.CursorPage `json:"paging"`
	DefaultSort   string               `json:"default_sort"`
	AssignedToIDs []string             `json:"assigned_to_ids"`
	Total         *int64               `json:"total,omitempty"`
}

type countResp struct {
	Total int64 `json:"total"`
}

type idsResp struct {
	IDs []int64 `json:"ids"`
}

func dateTimePtr(t *time.Time) *response.DateTime {
	if t == nil {
		return nil
	}
	d := response.DateTime(*t)
	return &d
}

func newConversationResp(s conversation.ConversationSummary) conversationResp {
	resp := conversationResp{
		ID:                 s.ID,
		Slug:               s.Slug,
		Subject:            s.Subject,
		Status:             string(s.Status),
		EmailFrom:          s.EmailFrom,
		AssignedToID:       s.AssignedToID,
		IssueGroupID:       s.IssueGroupID,
		CreatedAt:          response.DateTime(s.CreatedAt),
		LastMessageAt:      dateTimePtr(s.LastMessageAt),
		ClosedAt:           dateTimePtr(s.ClosedAt),
		IsPrompt:           s.IsPrompt,
		MatchedMessageText: s.MatchedMessageText,
		RecentMessageText:  s.RecentMessageText,
		RecentMessageAt:    dateTimePtr(s.RecentMessageAt),
		UnreadMessageCount: s.UnreadMessageCount,
	}
	if c := s.PlatformCustomer; c != nil {
		resp.PlatformCustomer = &customerResp{
			Email: c.Email,
			Name:  c.Name,
			Value: c.Value,
			IsVIP: c.IsVIP,
		}
	}
	return resp
}

func (h *handler) newSearchResp(o conversation.SearchOutput, total *int64) searchResp {
	items := make([]conversationResp, 0, len(o.Results))
	for _, s := range o.Results {
		items = append(items, newConversationResp(s))
	}

	next := ""
	if o.NextCursor != nil {
		next = *o.NextCursor
	}

	defaultSort := query.SortNewest
	if o.MetadataEnabled {
		defaultSort = query.SortHighestValue
	}

	assigned := o.AssignedToIDs
	if assigned == nil {
		assigned = []string{}
	}

	return searchResp{
		Conversations: items,
		NextCursor:    o.NextCursor,
		Paging:        paginator.NewCursorPage(len(items), o.Limit, next),
		DefaultSort:   defaultSort,
		AssignedToIDs: assigned,
		Total:         total,
	}
}

func (h *handler) newIDsResp(ids []int64) idsResp {
	if ids == nil {
		ids = []int64{}
	}
	return idsResp{IDs: ids}
}
