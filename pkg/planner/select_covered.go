package planner

import (
	"github.com/orneryd/vegvisir/pkg/plan"
	"github.com/orneryd/vegvisir/pkg/query"
)

// SelectCovered applies every predicate of the query graph that p can
// newly evaluate: dependencies fully bound by p's available symbols and
// not already recorded in p's solved set.
//
// If no predicate qualifies, p itself is returned (same value, not
// wrapped). Otherwise a single Selection carries all qualifying
// predicates in the order they appear in the selection set, and the
// result's solved record covers them, so a later round never reapplies
// them. Applying SelectCovered twice therefore yields the same plan as
// applying it once.
func SelectCovered(p plan.Plan, qg *query.Graph) (plan.Plan, error) {
	var applicable []query.Predicate
	for _, pred := range qg.Selections.All() {
		if p.Solved().SolvesPredicate(pred) {
			continue
		}
		if !pred.CoveredBy(p.Available()) {
			continue
		}
		applicable = append(applicable, pred)
	}

	if len(applicable) == 0 {
		return p, nil
	}
	return plan.NewSelection(applicable, p)
}
