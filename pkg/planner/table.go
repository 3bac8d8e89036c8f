package planner

import (
	"github.com/orneryd/vegvisir/pkg/plan"
	"github.com/orneryd/vegvisir/pkg/query"
)

// Table is the search state: a mapping from solved symbol set to the
// single best plan achieving exactly that set under the current cost
// model.
//
// Invariants:
//   - At most one plan per distinct solved symbol set.
//   - When two plans would land on the same set, only the cheaper one is
//     retained; on a cost tie the earlier insertion wins, so table
//     contents are deterministic for a deterministic generator order.
//
// Candidates entering the table have all applicable predicates already
// applied (the driver folds SelectCovered over every candidate), so two
// plans with the same available symbols carry the same predicate
// coverage and are directly comparable by cost.
//
// Obsolete plans are simply dropped; they are plain values with no
// resources to release.
type Table struct {
	entries map[string]tableEntry
	order   []string // insertion order of keys, for deterministic iteration
}

type tableEntry struct {
	plan plan.Plan
	cost Cost
}

// NewTable returns an empty plan table.
func NewTable() *Table {
	return &Table{entries: make(map[string]tableEntry)}
}

// Len returns the number of distinct solved symbol sets.
func (t *Table) Len() int {
	return len(t.entries)
}

// Add offers a candidate to the table. It keeps the candidate only if no
// plan exists for the same solved symbol set or the candidate is strictly
// cheaper than the incumbent. Returns whether the table changed.
//
// Costing failures abort with the cost model's error unchanged.
func (t *Table) Add(ctx *Context, p plan.Plan) (bool, error) {
	cost, err := ctx.Cost.Cost(p)
	if err != nil {
		return false, err
	}

	key := p.Available().Key()
	current, exists := t.entries[key]
	if exists && current.cost <= cost {
		return false, nil // incumbent stays; ties keep the earlier plan
	}
	if !exists {
		t.order = append(t.order, key)
	}
	t.entries[key] = tableEntry{plan: p, cost: cost}
	return true, nil
}

// Get returns the best plan whose available symbols are exactly the
// given set.
func (t *Table) Get(symbols query.SymbolSet) (plan.Plan, bool) {
	entry, ok := t.entries[symbols.Key()]
	if !ok {
		return nil, false
	}
	return entry.plan, true
}

// Plans returns every plan in first-insertion order of its symbol set.
// The slice is fresh; callers may reorder it freely.
func (t *Table) Plans() []plan.Plan {
	out := make([]plan.Plan, 0, len(t.order))
	for _, key := range t.order {
		out = append(out, t.entries[key].plan)
	}
	return out
}
