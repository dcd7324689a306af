package query

// Keyset builds the predicate selecting rows strictly after c in ordering o.
// It mirrors Terms: each key is compared in its own direction with NULLS LAST,
// so a NULL cursor key ties only with NULL rows and a non-NULL cursor key is
// followed by every NULL row. A nil cursor selects everything.
func Keyset(o Ordering, c Cursor) Predicate {
	if c == nil {
		return Literal(true)
	}
	k := c.Key()

	keys := make([]keysetKey, 0, 3)
	if o.ValuePrefix {
		keys = append(keys, keysetKey{expr: colCustomerValue, dir: Desc, nullable: true, value: ptrValue(k.Value)})
	}
	keys = append(keys,
		keysetKey{expr: o.SortExpr(), dir: o.Direction, nullable: o.SortNullable(), value: ptrValue(k.TS)},
		keysetKey{expr: colID, dir: o.Direction, value: k.ID},
	)

	// (k1 after) OR (k1 tie AND k2 after) OR (k1 tie AND k2 tie AND k3 after) ...
	var (
		or   Or
		ties And
	)
	for _, key := range keys {
		if after := key.after(); after != nil {
			branch := append(append(And{}, ties...), after)
			if len(branch) == 1 {
				or = append(or, after)
			} else {
				or = append(or, branch)
			}
		}
		ties = append(ties, key.tie())
	}
	return or
}

type keysetKey struct {
	expr     Expr
	dir      Direction
	nullable bool
	// value is nil when the cursor key is NULL.
	value any
}

// after selects rows whose key sorts strictly after the cursor key, or nil
// when nothing can.
func (k keysetKey) after() Predicate {
	if k.value == nil {
		return nil
	}
	cmp := Cmp(k.expr, k.dir.after(), k.value)
	if !k.nullable {
		return cmp
	}
	return Or{cmp, IsNull{Expr: k.expr}}
}

func (k keysetKey) tie() Predicate {
	if k.value == nil {
		return IsNull{Expr: k.expr}
	}
	return Cmp(k.expr, OpEq, k.value)
}

func ptrValue[T any](p *T) any {
	if p == nil {
		return nil
	}
	return *p
}
