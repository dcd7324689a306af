package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lib/pq"
)

// Renderer turns predicates into Postgres SQL with positional ($n) parameters.
// A Renderer accumulates arguments across calls so several fragments can be
// combined into one statement.
type Renderer struct {
	args []any
}

// NewRenderer starts a renderer with no bound arguments.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Args returns the arguments bound so far, in placeholder order.
func (r *Renderer) Args() []any {
	return r.args
}

// Bind adds v as the next argument and returns its placeholder.
func (r *Renderer) Bind(v any) string {
	r.args = append(r.args, v)
	return "$" + strconv.Itoa(len(r.args))
}

// Predicate renders p.
func (r *Renderer) Predicate(p Predicate) string {
	switch p := p.(type) {
	case Literal:
		if p {
			return "TRUE"
		}
		return "FALSE"
	case Compare:
		return r.Expr(p.Left) + " " + string(p.Op) + " " + r.Expr(p.Right)
	case In:
		values, n := arrayOf(p.Values)
		if n == 0 {
			return "FALSE"
		}
		return r.Expr(p.Expr) + " = ANY(" + r.Bind(values) + ")"
	case IsNull:
		if p.Not {
			return r.Expr(p.Expr) + " IS NOT NULL"
		}
		return r.Expr(p.Expr) + " IS NULL"
	case Exists:
		var b strings.Builder
		b.WriteString("EXISTS (SELECT 1 FROM ")
		b.WriteString(p.Table)
		b.WriteString(" ")
		b.WriteString(p.Alias)
		if len(p.Where) > 0 {
			b.WriteString(" WHERE ")
			b.WriteString(r.join([]Predicate(p.Where), " AND "))
		}
		b.WriteString(")")
		return b.String()
	case And:
		switch len(p) {
		case 0:
			return "TRUE"
		case 1:
			return r.Predicate(p[0])
		}
		return "(" + r.join(p, " AND ") + ")"
	case Or:
		switch len(p) {
		case 0:
			return "FALSE"
		case 1:
			return r.Predicate(p[0])
		}
		return "(" + r.join(p, " OR ") + ")"
	default:
		panic(fmt.Sprintf("query: unknown predicate %T", p))
	}
}

// Expr renders e.
func (r *Renderer) Expr(e Expr) string {
	switch e := e.(type) {
	case Column:
		return string(e)
	case Param:
		return r.Bind(e.Value)
	case Coalesce:
		parts := make([]string, len(e))
		for i, a := range e {
			parts[i] = r.Expr(a)
		}
		return "COALESCE(" + strings.Join(parts, ", ") + ")"
	case JSONText:
		return string(e.Column) + "->>'" + strings.ReplaceAll(e.Key, "'", "''") + "'"
	default:
		panic(fmt.Sprintf("query: unknown expression %T", e))
	}
}

// OrderBy renders an ORDER BY list without the keyword.
func (r *Renderer) OrderBy(terms []OrderTerm) string {
	parts := make([]string, len(terms))
	for i, t := range terms {
		s := r.Expr(t.Expr) + " " + t.Direction.sql()
		if t.NullsLast {
			s += " NULLS LAST"
		}
		parts[i] = s
	}
	return strings.Join(parts, ", ")
}

func (r *Renderer) join(ps []Predicate, sep string) string {
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = r.Predicate(p)
	}
	return strings.Join(parts, sep)
}

func arrayOf(values any) (any, int) {
	switch v := values.(type) {
	case []string:
		return pq.Array(v), len(v)
	case []int64:
		return pq.Array(v), len(v)
	case nil:
		return nil, 0
	default:
		panic(fmt.Sprintf("query: unsupported list type %T", values))
	}
}
