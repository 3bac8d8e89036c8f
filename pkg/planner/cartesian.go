package planner

import (
	"github.com/orneryd/vegvisir/pkg/plan"
	"github.com/orneryd/vegvisir/pkg/query"
)

// CartesianMerge is the convergence-driven fallback generator that joins
// disconnected plan fragments by unconstrained pairing when no cheaper
// structured join applies.
//
// Starting from every distinct plan in the table, it repeatedly forms a
// CartesianProduct for every unordered pair and commits the single
// *worst* (highest-cost) pairing, replacing both constituents, until no
// pairs remain. Only the products it built are reported; plans that were
// never merged are not new candidates.
//
// Worst-first is a greedy heuristic, not globally optimal: resolving the
// most expensive pairing earliest keeps it from being folded into ever
// larger intermediate products in later rounds, and bounds the work at
// one merge per round for at most n-1 rounds. On a cost tie the pair
// encountered first in enumeration order wins, so the merge order - and
// with it the plan shape - is deterministic.
func CartesianMerge(ctx *Context, table *Table, qg *query.Graph) ([]plan.Plan, error) {
	if ctx.DisableCartesianProduct {
		return nil, nil
	}
	usable := table.Plans()
	if len(usable) < 2 {
		return nil, nil
	}

	converge := IterateUntilConverged(
		func(plans []plan.Plan) ([]plan.Plan, error) {
			return mergeWorstPair(ctx, plans)
		},
		samePlans,
	)
	final, err := converge(usable)
	if err != nil {
		return nil, err
	}

	var products []plan.Plan
	for _, p := range final {
		if _, ok := p.(*plan.CartesianProduct); ok {
			products = append(products, p)
		}
	}
	return products, nil
}

// mergeWorstPair performs one convergence step: cost every pairwise
// product, commit the most expensive one, and return the reduced plan
// set. With fewer than two plans the input is returned unchanged, which
// the fixed-point driver detects as convergence.
func mergeWorstPair(ctx *Context, plans []plan.Plan) ([]plan.Plan, error) {
	if len(plans) < 2 {
		return plans, nil
	}

	worstLeft, worstRight := -1, -1
	var worstCost Cost
	var worst plan.Plan
	for i := 0; i < len(plans); i++ {
		for j := i + 1; j < len(plans); j++ {
			candidate := plan.NewCartesianProduct(plans[i], plans[j])
			cost, err := ctx.Cost.Cost(candidate)
			if err != nil {
				return nil, err
			}
			// Strictly-greater keeps the first pair on ties.
			if worstLeft < 0 || cost > worstCost {
				worstLeft, worstRight = i, j
				worstCost, worst = cost, candidate
			}
		}
	}

	next := make([]plan.Plan, 0, len(plans)-1)
	for k, p := range plans {
		if k == worstLeft || k == worstRight {
			continue
		}
		next = append(next, p)
	}
	return append(next, worst), nil
}

func samePlans(a, b []plan.Plan) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

var _ Generator = CartesianMerge
