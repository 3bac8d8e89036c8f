package query

// Predicate pairs an expression with the minimal set of symbols that must
// be bound before the expression can be evaluated. Predicates are
// immutable once parsed.
//
// Example:
//
//	WHERE x.age > 17
//	→ Predicate{Dependencies: {x}, Expr: x.age > 17}
type Predicate struct {
	// Dependencies is the minimal symbol set the expression needs bound.
	Dependencies SymbolSet
	// Expr is the expression itself. Read-only.
	Expr Expression
}

// NewPredicate builds a predicate over the given expression and
// dependency symbols.
func NewPredicate(expr Expression, deps ...Symbol) Predicate {
	return Predicate{Dependencies: NewSymbolSet(deps...), Expr: expr}
}

// Key returns a stable fingerprint for the predicate: the dependency set
// plus the expression text. Two predicates with the same key are the same
// predicate for coverage tracking.
func (p Predicate) Key() string {
	return p.Dependencies.Key() + "|" + p.Expr.String()
}

// CoveredBy reports whether every dependency of the predicate is bound by
// the given symbols, i.e. whether the predicate could be evaluated now.
func (p Predicate) CoveredBy(available SymbolSet) bool {
	return available.ContainsAll(p.Dependencies)
}

// Selections is the set of predicates attached to a query graph. It has
// set semantics (no duplicate predicates by Key) but keeps a stable
// insertion order so plan shapes are reproducible.
type Selections struct {
	order []Predicate
	seen  map[string]struct{}
}

// NewSelections builds a selection set, dropping duplicates while
// preserving first-seen order.
func NewSelections(predicates ...Predicate) Selections {
	s := Selections{seen: make(map[string]struct{}, len(predicates))}
	for _, p := range predicates {
		key := p.Key()
		if _, dup := s.seen[key]; dup {
			continue
		}
		s.seen[key] = struct{}{}
		s.order = append(s.order, p)
	}
	return s
}

// All returns the predicates in stable (insertion) order. The returned
// slice must not be modified.
func (s Selections) All() []Predicate {
	return s.order
}

// Len returns the number of distinct predicates.
func (s Selections) Len() int {
	return len(s.order)
}

// Contains reports whether an equal predicate is in the set.
func (s Selections) Contains(p Predicate) bool {
	_, ok := s.seen[p.Key()]
	return ok
}
