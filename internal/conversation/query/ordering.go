package query

import (
	"cmp"
	"time"

	"inbox-srv/internal/model"
)

// Direction of a sort key.
type Direction int

const (
	Desc Direction = iota
	Asc
)

func (d Direction) sql() string {
	if d == Asc {
		return "ASC"
	}
	return "DESC"
}

// after is the operator selecting keys that come later in this direction.
func (d Direction) after() Op {
	if d == Asc {
		return OpGt
	}
	return OpLt
}

// OrderTerm is one ORDER BY entry.
type OrderTerm struct {
	Expr      Expr
	Direction Direction
	NullsLast bool
}

// Ordering strategies, used as metric labels.
const (
	StrategyRecency  = "recency"
	StrategyClosedAt = "closed_at"
	StrategyValue    = "value"
)

// Ordering is the selected sort: an optional customer-value prefix, the sort
// expression and the id tie-break.
type Ordering struct {
	// ByClosedAt sorts by c.closed_at instead of the last activity time.
	ByClosedAt bool
	// Direction applies to the sort expression and the id tie-break.
	Direction Direction
	// ValuePrefix sorts by customer value, highest first, before anything else.
	ValuePrefix bool
}

// SortKey is a row's position in an Ordering.
type SortKey struct {
	Value *int64
	TS    *time.Time
	ID    int64
}

// MetadataEnabled reports whether value ordering may apply to f. Free-text
// search always sorts by recency.
func MetadataEnabled(f Filter, s Settings) bool {
	return f.Search == "" && s.MetadataEnabled
}

// SelectOrdering picks the ordering for a normalized filter.
func SelectOrdering(f Filter, metadataEnabled bool) Ordering {
	o := Ordering{
		ByClosedAt: onlyStatus(f, model.ConversationStatusClosed),
		Direction:  Desc,
	}
	if f.Sort == SortOldest {
		o.Direction = Asc
	}
	o.ValuePrefix = metadataEnabled &&
		(f.Sort == SortHighestValue || f.Sort == "") &&
		onlyStatus(f, model.ConversationStatusOpen)
	return o
}

func onlyStatus(f Filter, s model.ConversationStatus) bool {
	return len(f.Status) == 1 && f.Status[0] == string(s)
}

// Strategy names the ordering for metrics and logs.
func (o Ordering) Strategy() string {
	switch {
	case o.ValuePrefix:
		return StrategyValue
	case o.ByClosedAt:
		return StrategyClosedAt
	default:
		return StrategyRecency
	}
}

// SortExpr is the timestamp expression rows are ordered by.
func (o Ordering) SortExpr() Expr {
	if o.ByClosedAt {
		return colClosedAt
	}
	return Coalesce{colLastMessageAt, colCreatedAt}
}

// SortNullable reports whether SortExpr can be NULL.
func (o Ordering) SortNullable() bool {
	return o.ByClosedAt
}

// Terms is the ORDER BY list.
func (o Ordering) Terms() []OrderTerm {
	terms := make([]OrderTerm, 0, 3)
	if o.ValuePrefix {
		terms = append(terms, OrderTerm{Expr: colCustomerValue, Direction: Desc, NullsLast: true})
	}
	terms = append(terms,
		OrderTerm{Expr: o.SortExpr(), Direction: o.Direction, NullsLast: o.SortNullable()},
		OrderTerm{Expr: colID, Direction: o.Direction},
	)
	return terms
}

// KeyOf computes the sort key of a conversation row. customerValue is the
// joined platform customer's value, nil when there is none.
func (o Ordering) KeyOf(c model.Conversation, customerValue *int64) SortKey {
	k := SortKey{ID: c.ID}
	if o.ValuePrefix && customerValue != nil {
		v := *customerValue
		k.Value = &v
	}
	switch {
	case o.ByClosedAt:
		if c.ClosedAt != nil {
			ts := *c.ClosedAt
			k.TS = &ts
		}
	case c.LastMessageAt != nil:
		ts := *c.LastMessageAt
		k.TS = &ts
	default:
		ts := c.CreatedAt
		k.TS = &ts
	}
	return k
}

// Less reports whether a sorts before b. It agrees with Terms.
func (o Ordering) Less(a, b SortKey) bool {
	return o.compare(a, b) < 0
}

func (o Ordering) compare(a, b SortKey) int {
	if o.ValuePrefix {
		if c := compareNullsLast(a.Value, b.Value, Desc, cmp.Compare[int64]); c != 0 {
			return c
		}
	}
	if c := compareNullsLast(a.TS, b.TS, o.Direction, time.Time.Compare); c != 0 {
		return c
	}
	return directed(cmp.Compare(a.ID, b.ID), o.Direction)
}

func compareNullsLast[T any](a, b *T, d Direction, compare func(T, T) int) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}
	return directed(compare(*a, *b), d)
}

func directed(c int, d Direction) int {
	if d == Desc {
		return -c
	}
	return c
}
