package query

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool        { return &b }
func int64Ptr(v int64) *int64     { return &v }
func floatPtr(v float64) *float64 { return &v }
func timePtr(t time.Time) *time.Time {
	return &t
}

func renderWhere(w Where) (string, []any) {
	r := NewRenderer()
	return r.Predicate(w.And()), r.Args()
}

func TestNormalize(t *testing.T) {
	tcs := map[string]struct {
		in            Filter
		currentUserID string
		want          Filter
	}{
		"no category leaves status alone": {
			in:   Filter{},
			want: Filter{},
		},
		"category defaults status to open": {
			in:   Filter{Category: CategoryAll},
			want: Filter{Category: CategoryAll, Status: []string{"open"}},
		},
		"empty status list counts as absent": {
			in:   Filter{Category: CategoryAll, Status: []string{}},
			want: Filter{Category: CategoryAll, Status: []string{"open"}},
		},
		"search keeps status unset": {
			in:   Filter{Category: CategoryAll, Search: "refund"},
			want: Filter{Category: CategoryAll, Search: "refund"},
		},
		"explicit status wins": {
			in:   Filter{Category: CategoryAll, Status: []string{"closed"}},
			want: Filter{Category: CategoryAll, Status: []string{"closed"}},
		},
		"mine forces assignee": {
			in:            Filter{Category: CategoryMine, Assignee: []string{"other"}},
			currentUserID: "user_1",
			want:          Filter{Category: CategoryMine, Status: []string{"open"}, Assignee: []string{"user_1"}},
		},
		"mine without user keeps assignee": {
			in:   Filter{Category: CategoryMine, Assignee: []string{"other"}},
			want: Filter{Category: CategoryMine, Status: []string{"open"}, Assignee: []string{"other"}},
		},
		"unassigned": {
			in:   Filter{Category: CategoryUnassigned},
			want: Filter{Category: CategoryUnassigned, Status: []string{"open"}, IsAssigned: boolPtr(false)},
		},
		"assigned": {
			in:   Filter{Category: CategoryAssigned},
			want: Filter{Category: CategoryAssigned, Status: []string{"open"}, IsAssigned: boolPtr(true)},
		},
		"search is trimmed": {
			in:   Filter{Search: "  refund "},
			want: Filter{Search: "refund"},
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			got := Normalize(tc.in, tc.currentUserID)
			assert.Equal(t, tc.want.Status, nilIfEmpty(got.Status))
			assert.Equal(t, tc.want.Assignee, nilIfEmpty(got.Assignee))
			assert.Equal(t, tc.want.IsAssigned, got.IsAssigned)
			assert.Equal(t, tc.want.Search, got.Search)
			assert.Equal(t, tc.want.Category, got.Category)
		})
	}
}

func nilIfEmpty(s []string) []string {
	if len(s) == 0 {
		return nil
	}
	return s
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	in := Filter{Category: CategoryMine, Assignee: []string{"a"}}
	_ = Normalize(in, "me")
	assert.Equal(t, []string{"a"}, in.Assignee)
	assert.Nil(t, in.Status)
}

func TestConversationWhere(t *testing.T) {
	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)

	t.Run("always excludes merged conversations", func(t *testing.T) {
		w := ConversationWhere(Filter{})
		assert.Equal(t, []string{NameNotMerged}, w.Names())
		sql, args := renderWhere(w)
		assert.Equal(t, "c.merged_into_id IS NULL", sql)
		assert.Empty(t, args)
	})

	t.Run("every conversation level filter in order", func(t *testing.T) {
		w := ConversationWhere(Filter{
			Status:             []string{"open"},
			IsAssigned:         boolPtr(true),
			Assignee:           []string{"u1"},
			IsPrompt:           boolPtr(false),
			CreatedAfter:       &created,
			CreatedBefore:      &created,
			Customer:           []string{"a@example.com"},
			AnonymousSessionID: "anon",
			IssueGroupID:       int64Ptr(9),
		})
		assert.Equal(t, []string{
			NameNotMerged, NameStatus, NameIsAssigned, NameAssignee, NameIsPrompt,
			NameCreatedAfter, NameCreatedBefore, NameCustomer, NameAnonymousSessionID, NameIssueGroup,
		}, w.Names())

		sql, args := renderWhere(w)
		assert.Equal(t, "(c.merged_into_id IS NULL AND c.status = ANY($1) AND c.assigned_to_id IS NOT NULL"+
			" AND c.assigned_to_id = ANY($2) AND c.is_prompt = $3 AND c.created_at > $4 AND c.created_at < $5"+
			" AND c.email_from = ANY($6) AND c.anonymous_session_id = $7 AND c.issue_group_id = $8)", sql)
		assert.Len(t, args, 8)
	})

	t.Run("unassigned", func(t *testing.T) {
		w := ConversationWhere(Filter{IsAssigned: boolPtr(false)})
		p, ok := w.Get(NameIsAssigned)
		require.True(t, ok)
		assert.Equal(t, IsNull{Expr: colAssignedToID}, p)
	})
}

func TestConversationWhere_EmptyListsAreNeutral(t *testing.T) {
	empty := Filter{
		Status:   []string{},
		Assignee: []string{},
		Customer: []string{},
	}
	absent := Filter{}

	emptySQL, emptyArgs := renderWhere(Compile(empty, ConversationWhere(empty), Settings{}, nil))
	absentSQL, absentArgs := renderWhere(Compile(absent, ConversationWhere(absent), Settings{}, nil))
	assert.Equal(t, absentSQL, emptySQL)
	assert.Equal(t, absentArgs, emptyArgs)

	withEmptyEvents := Filter{Events: []string{}, RepliedBy: []string{}}
	w := Compile(withEmptyEvents, ConversationWhere(withEmptyEvents), Settings{}, nil)
	assert.Equal(t, []string{NameNotMerged}, w.Names())
}

func TestCompile(t *testing.T) {
	after := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	before := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("reply", func(t *testing.T) {
		f := Filter{RepliedBy: []string{"staff_1"}, RepliedAfter: &after}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		p, ok := w.Get(NameReply)
		require.True(t, ok)

		r := NewRenderer()
		assert.Equal(t, "EXISTS (SELECT 1 FROM messages m WHERE m.conversation_id = c.id AND m.role = $1"+
			" AND m.user_id = ANY($2) AND m.created_at > $3)", r.Predicate(p))
		assert.Equal(t, "staff", r.Args()[0])
	})

	t.Run("reaction bounds are inclusive", func(t *testing.T) {
		f := Filter{ReactionType: "thumbs-down", ReactionAfter: &after, ReactionBefore: &before}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		p, ok := w.Get(NameReaction)
		require.True(t, ok)

		r := NewRenderer()
		assert.Equal(t, "EXISTS (SELECT 1 FROM messages m WHERE m.conversation_id = c.id AND m.reaction_type = $1"+
			" AND m.deleted_at IS NULL AND m.reaction_created_at >= $2 AND m.reaction_created_at <= $3)", r.Predicate(p))
	})

	t.Run("reaction bounds without type are ignored", func(t *testing.T) {
		f := Filter{ReactionAfter: &after}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		assert.False(t, w.Has(NameReaction))
	})

	t.Run("events", func(t *testing.T) {
		f := Filter{Events: []string{"request_human_support"}}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		p, ok := w.Get(NameEvents)
		require.True(t, ok)
		assert.Equal(t, "EXISTS (SELECT 1 FROM conversation_events ev WHERE ev.conversation_id = c.id AND ev.type = ANY($1))",
			NewRenderer().Predicate(p))
	})

	t.Run("closed by slack bot matches reason", func(t *testing.T) {
		f := Filter{Closed: &StatusChangeFilter{By: ActorSlackBot, Before: &before}}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		p, ok := w.Get(NameClosed)
		require.True(t, ok)

		r := NewRenderer()
		assert.Equal(t, "EXISTS (SELECT 1 FROM conversation_events ev WHERE ev.conversation_id = c.id AND ev.reason = $1"+
			" AND ev.changes->>'status' = $2 AND ev.created_at < $3)", r.Predicate(p))
		assert.Equal(t, []any{ClosedByAgentReason, "closed", before}, r.Args())
	})

	t.Run("reopened by human requires actor", func(t *testing.T) {
		f := Filter{Reopened: &StatusChangeFilter{By: ActorHuman, ByUserIDs: []string{"u1"}, After: &after}}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		p, ok := w.Get(NameReopened)
		require.True(t, ok)

		r := NewRenderer()
		assert.Equal(t, "EXISTS (SELECT 1 FROM conversation_events ev WHERE ev.conversation_id = c.id AND ev.by_user_id IS NOT NULL"+
			" AND ev.by_user_id = ANY($1) AND ev.changes->>'status' = $2 AND ev.created_at > $3)", r.Predicate(p))
		assert.Equal(t, "open", r.Args()[1])
	})

	t.Run("marked as spam without actor kind requires actor", func(t *testing.T) {
		f := Filter{MarkedAsSpam: &StatusChangeFilter{}}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		p, ok := w.Get(NameMarkedAsSpam)
		require.True(t, ok)

		r := NewRenderer()
		assert.Equal(t, "EXISTS (SELECT 1 FROM conversation_events ev WHERE ev.conversation_id = c.id AND ev.by_user_id IS NOT NULL"+
			" AND ev.changes->>'status' = $1)", r.Predicate(p))
		assert.Equal(t, []any{"spam"}, r.Args())
	})

	t.Run("unread messages", func(t *testing.T) {
		f := Filter{HasUnreadMessages: true}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		p, ok := w.Get(NameHasUnreadMessages)
		require.True(t, ok)
		assert.Equal(t, "(c.assigned_to_id IS NOT NULL AND EXISTS (SELECT 1 FROM messages m WHERE m.conversation_id = c.id"+
			" AND m.role = $1 AND m.deleted_at IS NULL AND m.created_at > COALESCE(c.last_read_by_assignee_at, c.created_at)))",
			NewRenderer().Predicate(p))
	})

	t.Run("vip requires a threshold", func(t *testing.T) {
		f := Filter{IsVIP: true}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		assert.False(t, w.Has(NameIsVIP))

		w = Compile(f, ConversationWhere(f), Settings{VIPThreshold: int64Ptr(50)}, nil)
		p, ok := w.Get(NameIsVIP)
		require.True(t, ok)
		assert.Equal(t, Cmp(colCustomerValue, OpGte, int64(5000)), p)
	})

	t.Run("value bounds are strict and scaled", func(t *testing.T) {
		f := Filter{MinValueDollars: floatPtr(10), MaxValueDollars: floatPtr(99.99)}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)

		minP, ok := w.Get(NameMinValue)
		require.True(t, ok)
		assert.Equal(t, Cmp(colCustomerValue, OpGt, int64(1000)), minP)

		maxP, ok := w.Get(NameMaxValue)
		require.True(t, ok)
		assert.Equal(t, Cmp(colCustomerValue, OpLt, int64(9999)), maxP)
	})

	t.Run("huge value bounds saturate", func(t *testing.T) {
		f := Filter{MinValueDollars: floatPtr(1e20), MaxValueDollars: floatPtr(1e20)}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)

		minP, ok := w.Get(NameMinValue)
		require.True(t, ok)
		assert.Equal(t, Cmp(colCustomerValue, OpGt, int64(math.MaxInt64)), minP)

		maxP, ok := w.Get(NameMaxValue)
		require.True(t, ok)
		assert.Equal(t, Cmp(colCustomerValue, OpLt, int64(math.MaxInt64)), maxP)
	})

	t.Run("search with matches", func(t *testing.T) {
		f := Filter{Search: "50%_off"}
		w := Compile(f, ConversationWhere(f), Settings{}, []int64{4, 8})
		p, ok := w.Get(NameSearch)
		require.True(t, ok)

		r := NewRenderer()
		assert.Equal(t, "(c.email_from ILIKE $1 OR c.id = ANY($2))", r.Predicate(p))
		assert.Equal(t, `%50\%\_off%`, r.Args()[0])
	})

	t.Run("search without matches keeps the email arm", func(t *testing.T) {
		f := Filter{Search: "bob"}
		w := Compile(f, ConversationWhere(f), Settings{}, nil)
		p, ok := w.Get(NameSearch)
		require.True(t, ok)
		assert.Equal(t, "(c.email_from ILIKE $1 OR FALSE)", NewRenderer().Predicate(p))
	})

	t.Run("does not modify the conversation level mapping", func(t *testing.T) {
		f := Filter{HasUnreadMessages: true, Search: "x"}
		base := ConversationWhere(f)
		full := Compile(f, base, Settings{}, nil)
		assert.Equal(t, []string{NameNotMerged}, base.Names())
		assert.Equal(t, []string{NameNotMerged, NameHasUnreadMessages, NameSearch}, full.Names())
	})
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(5000), ToMinorUnits(50))
	assert.Equal(t, int64(1999), ToMinorUnits(19.99))
	assert.Equal(t, int64(0), ToMinorUnits(0))
	assert.Equal(t, int64(math.MaxInt64), ToMinorUnits(1e20))
	assert.Equal(t, int64(math.MinInt64), ToMinorUnits(-1e20))
	assert.Equal(t, int64(math.MaxInt64), ToMinorUnits(math.Inf(1)))
	assert.Equal(t, int64(0), ToMinorUnits(math.NaN()))
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, `a\%b\_c\\d`, EscapeLike(`a%b_c\d`))
	assert.Equal(t, "plain", EscapeLike("plain"))
}

func TestRecentMessageWhere(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "(m.conversation_id = c.id AND m.role = ANY($1) AND m.deleted_at IS NULL)", r.Predicate(RecentMessageWhere()))
	require.Len(t, r.Args(), 1)
}

func TestMessageTextMatches(t *testing.T) {
	r := NewRenderer()
	assert.Equal(t, "(m.deleted_at IS NULL AND m.cleaned_up_text ILIKE $1)", r.Predicate(MessageTextMatches("100%")))
	assert.Equal(t, []any{`%100\%%`}, r.Args())
}
