package query

// Where is an insertion-ordered mapping from filter name to predicate.
// All entries combine with AND. The zero value is an empty mapping.
type Where struct {
	names []string
	preds map[string]Predicate
}

// Set stores p under name. An existing name keeps its position.
func (w *Where) Set(name string, p Predicate) {
	if w.preds == nil {
		w.preds = make(map[string]Predicate)
	}
	if _, ok := w.preds[name]; !ok {
		w.names = append(w.names, name)
	}
	w.preds[name] = p
}

// Get returns the predicate stored under name.
func (w Where) Get(name string) (Predicate, bool) {
	p, ok := w.preds[name]
	return p, ok
}

// Has reports whether name is present.
func (w Where) Has(name string) bool {
	_, ok := w.preds[name]
	return ok
}

// Names returns the filter names in insertion order.
func (w Where) Names() []string {
	out := make([]string, len(w.names))
	copy(out, w.names)
	return out
}

// Len is the number of entries.
func (w Where) Len() int {
	return len(w.names)
}

// Predicates returns the predicates in insertion order.
func (w Where) Predicates() []Predicate {
	out := make([]Predicate, 0, len(w.names))
	for _, n := range w.names {
		out = append(out, w.preds[n])
	}
	return out
}

// And is the conjunction of every entry.
func (w Where) And() And {
	return And(w.Predicates())
}

// Clone returns an independent copy that can be extended without touching w.
func (w Where) Clone() Where {
	c := Where{
		names: make([]string, len(w.names)),
		preds: make(map[string]Predicate, len(w.preds)),
	}
	copy(c.names, w.names)
	for k, v := range w.preds {
		c.preds[k] = v
	}
	return c
}
