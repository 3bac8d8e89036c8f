package query

import "testing"

func TestSymbolSetMembership(t *testing.T) {
	s := NewSymbolSet("a", "b")

	if !s.Contains("a") || !s.Contains("b") {
		t.Errorf("Expected members a and b in %s", s)
	}
	if s.Contains("c") {
		t.Errorf("Did not expect c in %s", s)
	}
	if s.Len() != 2 {
		t.Errorf("Expected 2 members, got %d", s.Len())
	}
}

func TestSymbolSetContainsAll(t *testing.T) {
	s := NewSymbolSet("a", "b", "c")

	if !s.ContainsAll(NewSymbolSet("a", "c")) {
		t.Error("Expected {a, c} to be contained")
	}
	if s.ContainsAll(NewSymbolSet("a", "d")) {
		t.Error("Did not expect {a, d} to be contained")
	}
	if !s.ContainsAll(NewSymbolSet()) {
		t.Error("Empty set must be contained in every set")
	}
}

func TestSymbolSetUnionDoesNotMutate(t *testing.T) {
	a := NewSymbolSet("a")
	b := NewSymbolSet("b")

	union := a.Union(b)

	if union.Len() != 2 {
		t.Errorf("Expected union of 2, got %d", union.Len())
	}
	if a.Len() != 1 || b.Len() != 1 {
		t.Error("Union must not mutate its inputs")
	}
}

func TestSymbolSetKeyIsCanonical(t *testing.T) {
	first := NewSymbolSet("x", "y", "z")
	second := NewSymbolSet("z", "x", "y")

	if first.Key() != second.Key() {
		t.Errorf("Same membership must give same key: %q vs %q", first.Key(), second.Key())
	}
	if first.Key() == NewSymbolSet("x", "y").Key() {
		t.Error("Different membership must give different keys")
	}
}

func TestSymbolSetOverlaps(t *testing.T) {
	if !NewSymbolSet("a", "b").Overlaps(NewSymbolSet("b", "c")) {
		t.Error("Expected overlap on b")
	}
	if NewSymbolSet("a").Overlaps(NewSymbolSet("b")) {
		t.Error("Did not expect overlap")
	}
}

func TestSymbolSetEqual(t *testing.T) {
	if !NewSymbolSet("a", "b").Equal(NewSymbolSet("b", "a")) {
		t.Error("Order must not matter for equality")
	}
	if NewSymbolSet("a").Equal(NewSymbolSet("a", "b")) {
		t.Error("Subset is not equality")
	}
}

func TestSymbolSetString(t *testing.T) {
	got := NewSymbolSet("b", "a").String()
	if got != "{a, b}" {
		t.Errorf("Expected {a, b}, got %s", got)
	}
}
