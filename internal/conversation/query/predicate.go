package query

// Op is a binary comparison operator.
type Op string

const (
	OpEq    Op = "="
	OpNe    Op = "<>"
	OpLt    Op = "<"
	OpLte   Op = "<="
	OpGt    Op = ">"
	OpGte   Op = ">="
	OpILike Op = "ILIKE"
)

// Expr is a scalar expression: a column, a bound parameter or a function of them.
type Expr interface {
	isExpr()
}

// Column references a qualified column such as "c.status".
type Column string

// Param is a value bound as a query parameter.
type Param struct {
	Value any
}

// Coalesce returns the first non-null argument.
type Coalesce []Expr

// JSONText extracts a text field from a jsonb column (col->>'key').
type JSONText struct {
	Column Column
	Key    string
}

func (Column) isExpr()   {}
func (Param) isExpr()    {}
func (Coalesce) isExpr() {}
func (JSONText) isExpr() {}

// Predicate is a boolean condition. The set of variants is closed.
type Predicate interface {
	isPredicate()
}

// Compare is Left Op Right.
type Compare struct {
	Left  Expr
	Op    Op
	Right Expr
}

// In is membership of Expr in Values, which must be []string or []int64.
// An empty list matches nothing.
type In struct {
	Expr   Expr
	Values any
}

// IsNull tests Expr for NULL, or for NOT NULL when Not is set.
type IsNull struct {
	Expr Expr
	Not  bool
}

// Exists is a correlated existence check over Table aliased as Alias.
type Exists struct {
	Table string
	Alias string
	Where And
}

// And is a conjunction. An empty And is true.
type And []Predicate

// Or is a disjunction. An empty Or is false.
type Or []Predicate

// Literal is a constant TRUE or FALSE.
type Literal bool

func (Compare) isPredicate() {}
func (In) isPredicate()      {}
func (IsNull) isPredicate()  {}
func (Exists) isPredicate()  {}
func (And) isPredicate()     {}
func (Or) isPredicate()      {}
func (Literal) isPredicate() {}

// Eq is shorthand for col = value.
func Eq(col Column, value any) Compare {
	return Compare{Left: col, Op: OpEq, Right: Param{Value: value}}
}

// Cmp is shorthand for left op value.
func Cmp(left Expr, op Op, value any) Compare {
	return Compare{Left: left, Op: op, Right: Param{Value: value}}
}
