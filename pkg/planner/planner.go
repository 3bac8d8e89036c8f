// Package planner turns a query graph into a cost-ranked logical plan.
//
// The planner is a combinatorial search over operator orderings. It keeps
// a table of the best known plan per solved symbol set and, each round,
// asks every registered candidate generator for plans reachable from the
// current search frontier. Candidates get their applicable predicates
// applied (SelectCovered), then merge into the table where only the
// cheapest plan per solved set survives. The search stops when one plan
// covers every pattern element and every predicate of the query graph, or
// fails with ErrNoViablePlan when no generator can make further progress.
//
// Planning is single-threaded, synchronous, and side-effect-free over
// immutable inputs. Generators are pure functions of (Context, Table,
// Graph); within a round they all observe the same table snapshot because
// candidates are collected first and installed after. There is no
// cancellation inside planning - a caller-level timeout around the whole
// Plan call is the right layering.
//
// # ELI12 (Explain Like I'm 12)
//
// Imagine planning a road trip with friends who each know different
// shortcuts. Every round, everyone proposes routes from wherever the
// group has already mapped. You write each proposal on a whiteboard, but
// for any two routes reaching the same places you only keep the cheaper
// one. When a single route visits everything on the list, that's your
// trip. If nobody can propose anything new and the list isn't covered,
// the trip is impossible - and the planner says so instead of guessing.
package planner

import (
	"fmt"

	"github.com/orneryd/vegvisir/pkg/plan"
	"github.com/orneryd/vegvisir/pkg/query"
)

// Generator proposes new logical plans reachable from the current search
// frontier. Generators are pure: they read the context, table, and query
// graph and return candidates without mutating anything.
//
// Returning an empty slice means "nothing new from here"; returning an
// error aborts planning with that error unchanged.
type Generator func(*Context, *Table, *query.Graph) ([]plan.Plan, error)

// DefaultGenerators returns the registered generator list: leaf access
// patterns first, then the cartesian-merge fallback. A production planner
// adds more generators (expand, hash join, ...) behind the same
// signature.
func DefaultGenerators() []Generator {
	return []Generator{
		ArgumentLeaves,
		AllNodesScanLeaves,
		NodeByLabelScanLeaves,
		NodeIndexSeekLeaves,
		CartesianMerge,
	}
}

// Plan searches for the cheapest logical plan covering qg.
//
// Returns the single best plan whose available symbols include every
// symbol the graph demands and whose solved record covers every
// predicate. Failure modes are distinct:
//
//   - ErrNoViablePlan: the search reached a fixed point without covering
//     the graph (e.g. patterns no registered generator can access).
//   - ErrPredicateUnsolved: the symbol goal was reached but a predicate
//     stayed unapplied. This means the predicate's dependencies can never
//     all be bound - a defect in the query graph or the generator set,
//     reported rather than silently dropped.
//   - Cost model errors propagate unchanged; the planner never
//     substitutes default costs, as that would make plan choices
//     unreproducible.
func Plan(ctx *Context, qg *query.Graph) (plan.Plan, error) {
	if err := validateHints(ctx, qg); err != nil {
		return nil, err
	}

	generators := ctx.Generators
	if generators == nil {
		generators = DefaultGenerators()
	}
	maxRounds := ctx.MaxRounds
	if maxRounds <= 0 {
		maxRounds = DefaultMaxRounds
	}

	goal := qg.Symbols()
	table := NewTable()

	for round := 0; round < maxRounds; round++ {
		// Collect every candidate against this round's snapshot before
		// installing any of them, so all generators see the same table.
		var candidates []plan.Plan
		for _, generate := range generators {
			proposed, err := generate(ctx, table, qg)
			if err != nil {
				return nil, err
			}
			for _, p := range proposed {
				covered, err := SelectCovered(p, qg)
				if err != nil {
					return nil, err
				}
				candidates = append(candidates, covered)
			}
		}

		progress := false
		for _, p := range candidates {
			added, err := table.Add(ctx, p)
			if err != nil {
				return nil, err
			}
			progress = progress || added
		}

		if best, ok := table.Get(goal); ok {
			if !best.Solved().CoversSelections(qg.Selections) {
				return nil, unsolvedPredicateError(best, qg)
			}
			return best, nil
		}

		if !progress {
			return nil, fmt.Errorf("%w: stuck at %d partial plans covering %s of %s",
				ErrNoViablePlan, table.Len(), coveredSymbols(table).String(), goal.String())
		}
	}

	return nil, fmt.Errorf("%w: no convergence after %d rounds", ErrNoViablePlan, maxRounds)
}

// validateHints rejects hints that reference indexes the catalog does not
// know, matching the database's behavior for USING INDEX on a missing
// index.
func validateHints(ctx *Context, qg *query.Graph) error {
	for _, h := range qg.Hints {
		if h.Type != query.HintUsingIndex {
			continue
		}
		if ctx.Catalog == nil {
			return fmt.Errorf("%w: %s (no catalog available)", ErrHintIndexNotFound, h.String())
		}
		if _, ok := ctx.Catalog.IndexFor(h.Label, h.Property); !ok {
			return fmt.Errorf("%w: %s (index on :%s(%s) does not exist)",
				ErrHintIndexNotFound, h.String(), h.Label, h.Property)
		}
	}
	return nil
}

func unsolvedPredicateError(best plan.Plan, qg *query.Graph) error {
	for _, pred := range qg.Selections.All() {
		if !best.Solved().SolvesPredicate(pred) {
			return fmt.Errorf("%w: %q needs %s which the query graph never binds together",
				ErrPredicateUnsolved, pred.Expr.String(), pred.Dependencies.String())
		}
	}
	return ErrPredicateUnsolved
}

func coveredSymbols(table *Table) query.SymbolSet {
	covered := query.NewSymbolSet()
	for _, p := range table.Plans() {
		covered = covered.Union(p.Available())
	}
	return covered
}
