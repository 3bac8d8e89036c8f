package plan

import (
	"strings"
	"testing"

	"github.com/orneryd/vegvisir/pkg/query"
)

func agePredicate() query.Predicate {
	return query.NewPredicate(query.Comparison{
		Variable: "x", Property: "age", Operator: ">", Value: 17,
	}, "x")
}

func TestLeafAvailableSymbols(t *testing.T) {
	if got := NewAllNodesScan("x").Available(); !got.Equal(query.NewSymbolSet("x")) {
		t.Errorf("AllNodesScan binds %s, want {x}", got)
	}
	if got := NewNodeByLabelScan("x", "Person").Available(); !got.Equal(query.NewSymbolSet("x")) {
		t.Errorf("NodeByLabelScan binds %s, want {x}", got)
	}
	args := query.NewSymbolSet("a", "b")
	if got := NewArgument(args).Available(); !got.Equal(args) {
		t.Errorf("Argument binds %s, want %s", got, args)
	}
}

func TestNodeIndexSeekSolvesItsPredicate(t *testing.T) {
	pred := query.NewPredicate(query.Comparison{
		Variable: "x", Property: "name", Operator: "=", Value: "Alice",
	}, "x")

	seek := NewNodeIndexSeek("x", "Person", "name", pred)

	if !seek.Solved().SolvesPredicate(pred) {
		t.Error("Index seek must record its equality predicate as solved")
	}
	if !seek.Available().Equal(query.NewSymbolSet("x")) {
		t.Errorf("Seek binds %s, want {x}", seek.Available())
	}
}

func TestSelectionRequiresCoveredDependencies(t *testing.T) {
	base := NewAllNodesScan("x")
	needsXY := query.NewPredicate(query.Raw{Text: "x.name = y.name"}, "x", "y")

	_, err := NewSelection([]query.Predicate{needsXY}, base)
	if err == nil {
		t.Fatal("Expected error building Selection over uncovered dependencies")
	}
	if !strings.Contains(err.Error(), "needs") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestSelectionRequiresPredicates(t *testing.T) {
	if _, err := NewSelection(nil, NewAllNodesScan("x")); err == nil {
		t.Fatal("Expected error building empty Selection")
	}
}

func TestSelectionSolvedAndAvailable(t *testing.T) {
	base := NewAllNodesScan("x")
	pred := agePredicate()

	sel, err := NewSelection([]query.Predicate{pred}, base)
	if err != nil {
		t.Fatalf("Failed to build selection: %v", err)
	}

	if !sel.Solved().SolvesPredicate(pred) {
		t.Error("Selection must record its predicates as solved")
	}
	if !sel.Available().Equal(base.Available()) {
		t.Error("Selection must not change available symbols")
	}
	if len(sel.Children()) != 1 || sel.Children()[0] != Plan(base) {
		t.Error("Selection must keep its child")
	}
	// The child is untouched: plans are immutable values.
	if base.Solved().SolvesPredicate(pred) {
		t.Error("Building a Selection must not mutate the child's solved record")
	}
}

func TestCartesianProductUnions(t *testing.T) {
	left, err := NewSelection([]query.Predicate{agePredicate()}, NewAllNodesScan("x"))
	if err != nil {
		t.Fatalf("Failed to build selection: %v", err)
	}
	right := NewNodeByLabelScan("y", "City")

	product := NewCartesianProduct(left, right)

	if !product.Available().Equal(query.NewSymbolSet("x", "y")) {
		t.Errorf("Product binds %s, want {x, y}", product.Available())
	}
	if !product.Solved().SolvesPredicate(agePredicate()) {
		t.Error("Product solved record must union both children")
	}
	if product.Left() != Plan(left) || product.Right() != Plan(right) {
		t.Error("Product must keep both children")
	}
}

func TestSolvedCoversSelections(t *testing.T) {
	pred := agePredicate()
	sel := query.NewSelections(pred)

	empty := NewSolved()
	if empty.CoversSelections(sel) {
		t.Error("Empty record must not cover a non-empty selection set")
	}
	if !empty.WithPredicates(pred).CoversSelections(sel) {
		t.Error("Record with the predicate must cover the selection set")
	}
	if empty.PredicateCount() != 0 {
		t.Error("WithPredicates must not mutate the receiver")
	}
}
