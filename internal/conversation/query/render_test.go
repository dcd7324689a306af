package query

import (
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Predicate(t *testing.T) {
	ts := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	tcs := map[string]struct {
		pred     Predicate
		wantSQL  string
		wantArgs []any
	}{
		"literal true": {
			pred:    Literal(true),
			wantSQL: "TRUE",
		},
		"is null": {
			pred:    IsNull{Expr: colMergedIntoID},
			wantSQL: "c.merged_into_id IS NULL",
		},
		"is not null": {
			pred:    IsNull{Expr: colAssignedToID, Not: true},
			wantSQL: "c.assigned_to_id IS NOT NULL",
		},
		"compare": {
			pred:     Cmp(colCreatedAt, OpGt, ts),
			wantSQL:  "c.created_at > $1",
			wantArgs: []any{ts},
		},
		"membership": {
			pred:     In{Expr: colStatus, Values: []string{"open", "spam"}},
			wantSQL:  "c.status = ANY($1)",
			wantArgs: []any{pq.Array([]string{"open", "spam"})},
		},
		"empty membership": {
			pred:    In{Expr: colID, Values: []int64{}},
			wantSQL: "FALSE",
		},
		"empty and": {
			pred:    And{},
			wantSQL: "TRUE",
		},
		"empty or": {
			pred:    Or{},
			wantSQL: "FALSE",
		},
		"single and": {
			pred:    And{IsNull{Expr: colClosedAt}},
			wantSQL: "c.closed_at IS NULL",
		},
		"or of and": {
			pred: Or{
				Cmp(colID, OpLt, int64(3)),
				And{Cmp(colID, OpEq, int64(4)), IsNull{Expr: colClosedAt}},
			},
			wantSQL:  "(c.id < $1 OR (c.id = $2 AND c.closed_at IS NULL))",
			wantArgs: []any{int64(3), int64(4)},
		},
		"coalesce": {
			pred:     Cmp(Coalesce{colLastMessageAt, colCreatedAt}, OpLt, ts),
			wantSQL:  "COALESCE(c.last_message_at, c.created_at) < $1",
			wantArgs: []any{ts},
		},
		"json text": {
			pred:     Cmp(JSONText{Column: colEvChanges, Key: "status"}, OpEq, "closed"),
			wantSQL:  "ev.changes->>'status' = $1",
			wantArgs: []any{"closed"},
		},
		"exists": {
			pred: Exists{
				Table: tableMessages,
				Alias: "m",
				Where: And{
					Compare{Left: colMsgConversationID, Op: OpEq, Right: colID},
					IsNull{Expr: colMsgDeletedAt},
				},
			},
			wantSQL: "EXISTS (SELECT 1 FROM messages m WHERE m.conversation_id = c.id AND m.deleted_at IS NULL)",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := NewRenderer()
			assert.Equal(t, tc.wantSQL, r.Predicate(tc.pred))
			if tc.wantArgs == nil {
				assert.Empty(t, r.Args())
			} else {
				assert.Equal(t, tc.wantArgs, r.Args())
			}
		})
	}
}

func TestRenderer_ArgsAccumulate(t *testing.T) {
	r := NewRenderer()
	first := r.Predicate(Eq(colIsPrompt, true))
	second := r.Predicate(Eq(colAnonymousSessionID, "anon"))
	limit := r.Bind(26)

	assert.Equal(t, "c.is_prompt = $1", first)
	assert.Equal(t, "c.anonymous_session_id = $2", second)
	assert.Equal(t, "$3", limit)
	require.Len(t, r.Args(), 3)
	assert.Equal(t, 26, r.Args()[2])
}

func TestRenderer_OrderBy(t *testing.T) {
	tcs := map[string]struct {
		ordering Ordering
		want     string
	}{
		"recency desc": {
			ordering: Ordering{Direction: Desc},
			want:     "COALESCE(c.last_message_at, c.created_at) DESC, c.id DESC",
		},
		"recency asc": {
			ordering: Ordering{Direction: Asc},
			want:     "COALESCE(c.last_message_at, c.created_at) ASC, c.id ASC",
		},
		"closed at": {
			ordering: Ordering{ByClosedAt: true, Direction: Desc},
			want:     "c.closed_at DESC NULLS LAST, c.id DESC",
		},
		"value prefix": {
			ordering: Ordering{ValuePrefix: true, Direction: Desc},
			want:     "pc.value DESC NULLS LAST, COALESCE(c.last_message_at, c.created_at) DESC, c.id DESC",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			r := NewRenderer()
			assert.Equal(t, tc.want, r.OrderBy(tc.ordering.Terms()))
			assert.Empty(t, r.Args())
		})
	}
}
