// Package query defines the planner's input model: symbols, predicate
// expressions, and the query graph.
//
// A query graph is the parsed, pre-planning representation of a pattern
// query - which variables it introduces, how they are related, and which
// predicates must hold. Parsing and semantic analysis happen upstream;
// this package only models their output.
//
// Everything in this package is a read-only value once constructed. The
// planner never mutates a query graph; it only reads it while searching
// for an operator tree that covers it.
package query

import (
	"sort"
	"strings"
)

// Symbol identifies a pattern variable (a node or relationship name)
// introduced by a query. Symbols compare by name and carry no plan state.
//
// Example:
//
//	MATCH (a:Person)-[r:KNOWS]->(b)
//	→ symbols "a", "r", "b"
type Symbol string

// SymbolSet is an immutable set of symbols with deterministic iteration.
//
// Determinism matters: plan shapes, table keys, and test expectations all
// depend on symbol sets ordering the same way on every run. Sorted() and
// Key() always produce the same output for the same membership.
type SymbolSet struct {
	members map[Symbol]struct{}
}

// NewSymbolSet builds a set from the given symbols.
func NewSymbolSet(symbols ...Symbol) SymbolSet {
	m := make(map[Symbol]struct{}, len(symbols))
	for _, s := range symbols {
		m[s] = struct{}{}
	}
	return SymbolSet{members: m}
}

// Len returns the number of symbols in the set.
func (s SymbolSet) Len() int {
	return len(s.members)
}

// IsEmpty reports whether the set has no members.
func (s SymbolSet) IsEmpty() bool {
	return len(s.members) == 0
}

// Contains reports whether sym is a member.
func (s SymbolSet) Contains(sym Symbol) bool {
	_, ok := s.members[sym]
	return ok
}

// ContainsAll reports whether every member of other is also in s.
// An empty other is contained in every set.
func (s SymbolSet) ContainsAll(other SymbolSet) bool {
	for sym := range other.members {
		if !s.Contains(sym) {
			return false
		}
	}
	return true
}

// Union returns a new set holding the members of both sets. Neither
// receiver nor argument is modified.
func (s SymbolSet) Union(other SymbolSet) SymbolSet {
	m := make(map[Symbol]struct{}, len(s.members)+len(other.members))
	for sym := range s.members {
		m[sym] = struct{}{}
	}
	for sym := range other.members {
		m[sym] = struct{}{}
	}
	return SymbolSet{members: m}
}

// Add returns a new set with sym included.
func (s SymbolSet) Add(sym Symbol) SymbolSet {
	m := make(map[Symbol]struct{}, len(s.members)+1)
	for member := range s.members {
		m[member] = struct{}{}
	}
	m[sym] = struct{}{}
	return SymbolSet{members: m}
}

// Overlaps reports whether the two sets share at least one symbol.
func (s SymbolSet) Overlaps(other SymbolSet) bool {
	small, large := s, other
	if large.Len() < small.Len() {
		small, large = large, small
	}
	for sym := range small.members {
		if large.Contains(sym) {
			return true
		}
	}
	return false
}

// Equal reports whether both sets have exactly the same members.
func (s SymbolSet) Equal(other SymbolSet) bool {
	if len(s.members) != len(other.members) {
		return false
	}
	return s.ContainsAll(other)
}

// Sorted returns the members in lexical order.
func (s SymbolSet) Sorted() []Symbol {
	out := make([]Symbol, 0, len(s.members))
	for sym := range s.members {
		out = append(out, sym)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Key returns a canonical string for the set, usable as a map key.
// Two sets produce the same key exactly when they are Equal.
func (s SymbolSet) Key() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, sym := range sorted {
		parts[i] = string(sym)
	}
	return strings.Join(parts, "\x1f")
}

// String renders the set for diagnostics, e.g. "{a, b, r}".
func (s SymbolSet) String() string {
	sorted := s.Sorted()
	parts := make([]string, len(sorted))
	for i, sym := range sorted {
		parts[i] = string(sym)
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
