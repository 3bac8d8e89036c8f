package plan

import "github.com/orneryd/vegvisir/pkg/query"

// Solved records which predicates and pattern elements a plan's subtree
// already accounts for. It is an immutable value: the With* methods
// return new records and never touch the receiver, so a child's record
// can be shared structurally by many candidate parents during search.
//
// Predicates are tracked by their stable fingerprint (query.Predicate.Key)
// rather than by pointer, so two structurally equal predicates count as
// the same coverage obligation.
type Solved struct {
	predicates map[string]struct{}
	elements   query.SymbolSet
}

// NewSolved returns an empty coverage record.
func NewSolved() Solved {
	return Solved{predicates: map[string]struct{}{}, elements: query.NewSymbolSet()}
}

// SolvesPredicate reports whether the predicate is already covered.
func (s Solved) SolvesPredicate(p query.Predicate) bool {
	_, ok := s.predicates[p.Key()]
	return ok
}

// Elements returns the pattern-element symbols covered so far.
func (s Solved) Elements() query.SymbolSet {
	return s.elements
}

// WithPredicates returns a new record that additionally covers the given
// predicates.
func (s Solved) WithPredicates(preds ...query.Predicate) Solved {
	merged := make(map[string]struct{}, len(s.predicates)+len(preds))
	for k := range s.predicates {
		merged[k] = struct{}{}
	}
	for _, p := range preds {
		merged[p.Key()] = struct{}{}
	}
	return Solved{predicates: merged, elements: s.elements}
}

// WithElements returns a new record that additionally covers the given
// pattern-element symbols.
func (s Solved) WithElements(symbols ...query.Symbol) Solved {
	return Solved{
		predicates: s.predicates,
		elements:   s.elements.Union(query.NewSymbolSet(symbols...)),
	}
}

// Union returns a record covering everything either record covers.
func (s Solved) Union(other Solved) Solved {
	merged := make(map[string]struct{}, len(s.predicates)+len(other.predicates))
	for k := range s.predicates {
		merged[k] = struct{}{}
	}
	for k := range other.predicates {
		merged[k] = struct{}{}
	}
	return Solved{predicates: merged, elements: s.elements.Union(other.elements)}
}

// CoversSelections reports whether every predicate in the selection set
// is covered.
func (s Solved) CoversSelections(sel query.Selections) bool {
	for _, p := range sel.All() {
		if !s.SolvesPredicate(p) {
			return false
		}
	}
	return true
}

// PredicateCount returns how many distinct predicates are covered.
func (s Solved) PredicateCount() int {
	return len(s.predicates)
}
