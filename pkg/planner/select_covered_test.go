package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orneryd/vegvisir/pkg/plan"
	"github.com/orneryd/vegvisir/pkg/query"
)

func TestSelectCoveredWrapsApplicablePredicate(t *testing.T) {
	// Query graph with predicate x.age > 17 over a plan exposing x:
	// the result is a Selection over the base plan, solved records the
	// predicate, available symbols are unchanged.
	qg := query.NewGraph("x").WithSelections(query.NewSelections(agePred()))
	base := plan.NewAllNodesScan("x")

	result, err := SelectCovered(base, qg)
	require.NoError(t, err)

	sel, ok := result.(*plan.Selection)
	require.True(t, ok, "expected a Selection, got %T", result)
	assert.Equal(t, []query.Predicate{agePred()}, sel.Predicates)
	assert.True(t, result.Solved().SolvesPredicate(agePred()))
	assert.True(t, result.Available().Equal(base.Available()),
		"selection must not change available symbols")
}

func TestSelectCoveredLeavesPartialDependenciesAlone(t *testing.T) {
	// Predicate needs {x, y} but the plan binds only {x}: the base plan
	// comes back untouched, same identity.
	qg := query.NewGraph("x", "y").
		WithSelections(query.NewSelections(rawPred("x.name = y.name", "x", "y")))
	base := plan.NewAllNodesScan("x")

	result, err := SelectCovered(base, qg)
	require.NoError(t, err)

	assert.Same(t, base, result, "partially covered predicate must not be applied")
}

func TestSelectCoveredIsIdempotent(t *testing.T) {
	qg := query.NewGraph("x").WithSelections(query.NewSelections(agePred()))
	base := plan.NewAllNodesScan("x")

	once, err := SelectCovered(base, qg)
	require.NoError(t, err)
	twice, err := SelectCovered(once, qg)
	require.NoError(t, err)

	assert.Same(t, once, twice, "second application must be a no-op")
}

func TestSelectCoveredSkipsAlreadySolvedPredicates(t *testing.T) {
	// An index seek consumed the predicate at the leaf; even though the
	// dependencies are satisfied, the predicate must not be re-applied.
	pred := namePred("x", "Alice")
	qg := query.NewGraph("x").WithSelections(query.NewSelections(pred))
	seek := plan.NewNodeIndexSeek("x", "Person", "name", pred)

	result, err := SelectCovered(seek, qg)
	require.NoError(t, err)

	assert.Same(t, plan.Plan(seek), result, "solved predicate must be skipped")
}

func TestSelectCoveredAppliesAllQualifyingInSelectionOrder(t *testing.T) {
	first := rawPred("x.a > 1", "x")
	second := rawPred("x.b > 2", "x")
	needsBoth := rawPred("x.c = y.c", "x", "y")
	qg := query.NewGraph("x", "y").
		WithSelections(query.NewSelections(first, second, needsBoth))
	base := plan.NewAllNodesScan("x")

	result, err := SelectCovered(base, qg)
	require.NoError(t, err)

	sel, ok := result.(*plan.Selection)
	require.True(t, ok)
	require.Len(t, sel.Predicates, 2, "only fully covered predicates apply")
	assert.Equal(t, first.Key(), sel.Predicates[0].Key())
	assert.Equal(t, second.Key(), sel.Predicates[1].Key())
	assert.False(t, result.Solved().SolvesPredicate(needsBoth))
}
