package query

import "testing"

func agePredicate() Predicate {
	return NewPredicate(Comparison{
		Variable: "x", Property: "age", Operator: ">", Value: 17,
	}, "x")
}

func TestPredicateCoveredBy(t *testing.T) {
	pred := NewPredicate(Raw{Text: "x.name = y.name"}, "x", "y")

	if pred.CoveredBy(NewSymbolSet("x")) {
		t.Error("Predicate needing {x, y} must not be covered by {x}")
	}
	if !pred.CoveredBy(NewSymbolSet("x", "y")) {
		t.Error("Predicate needing {x, y} must be covered by {x, y}")
	}
	if !pred.CoveredBy(NewSymbolSet("x", "y", "z")) {
		t.Error("Superset must cover the dependencies")
	}
}

func TestPredicateKeyStable(t *testing.T) {
	if agePredicate().Key() != agePredicate().Key() {
		t.Error("Structurally equal predicates must share a key")
	}

	other := NewPredicate(Comparison{
		Variable: "x", Property: "age", Operator: ">", Value: 18,
	}, "x")
	if agePredicate().Key() == other.Key() {
		t.Error("Different expressions must have different keys")
	}
}

func TestSelectionsDeduplicate(t *testing.T) {
	s := NewSelections(agePredicate(), agePredicate())

	if s.Len() != 1 {
		t.Fatalf("Expected 1 distinct predicate, got %d", s.Len())
	}
}

func TestSelectionsPreserveInsertionOrder(t *testing.T) {
	first := NewPredicate(Raw{Text: "first"}, "a")
	second := NewPredicate(Raw{Text: "second"}, "b")
	third := NewPredicate(Raw{Text: "third"}, "c")

	s := NewSelections(first, second, third)

	all := s.All()
	if len(all) != 3 {
		t.Fatalf("Expected 3 predicates, got %d", len(all))
	}
	if all[0].Key() != first.Key() || all[1].Key() != second.Key() || all[2].Key() != third.Key() {
		t.Error("Selections must keep insertion order")
	}
}

func TestExpressionRendering(t *testing.T) {
	cases := []struct {
		expr Expression
		want string
	}{
		{Comparison{Variable: "x", Property: "age", Operator: ">", Value: 17}, "x.age > 17"},
		{Comparison{Variable: "n", Property: "name", Operator: "=", Value: "Alice"}, "n.name = 'Alice'"},
		{HasLabel{Variable: "n", Label: "Person"}, "n:Person"},
		{Raw{Text: "x.a + y.b < 10"}, "x.a + y.b < 10"},
	}
	for _, c := range cases {
		if got := c.expr.String(); got != c.want {
			t.Errorf("Expected %q, got %q", c.want, got)
		}
	}
}

func TestGraphSymbols(t *testing.T) {
	qg := NewGraph("a", "b").
		WithArguments("s").
		WithRelationship(PatternRelationship{Name: "r", Start: "a", End: "b", RelType: "KNOWS"})

	want := NewSymbolSet("a", "b", "r", "s")
	if !qg.Symbols().Equal(want) {
		t.Errorf("Expected %s, got %s", want, qg.Symbols())
	}
}

func TestGraphLabels(t *testing.T) {
	qg := NewGraph("a").WithLabel("a", "Person")

	label, ok := qg.Label("a")
	if !ok || label != "Person" {
		t.Errorf("Expected Person label for a, got %q (ok=%v)", label, ok)
	}
	if _, ok := qg.Label("missing"); ok {
		t.Error("Did not expect a label for an unknown symbol")
	}
}

func TestHintString(t *testing.T) {
	idx := Hint{Type: HintUsingIndex, Variable: "n", Label: "Person", Property: "name"}
	if idx.String() != "USING INDEX n:Person(name)" {
		t.Errorf("Unexpected hint rendering: %s", idx.String())
	}
	scan := Hint{Type: HintUsingScan, Variable: "n", Label: "Person"}
	if scan.String() != "USING SCAN n:Person" {
		t.Errorf("Unexpected hint rendering: %s", scan.String())
	}
}
