package plan

import (
	"strings"
	"testing"

	"github.com/orneryd/vegvisir/pkg/query"
)

func TestFormatRendersOperatorTree(t *testing.T) {
	base := NewNodeByLabelScan("x", "Person")
	sel, err := NewSelection([]query.Predicate{agePredicate()}, base)
	if err != nil {
		t.Fatalf("Failed to build selection: %v", err)
	}

	out := Format(sel, nil)

	for _, want := range []string{"Query Plan", "Selection", "NodeByLabelScan", "x.age > 17"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q:\n%s", want, out)
		}
	}
}

func TestFormatIncludesRowEstimates(t *testing.T) {
	scan := NewAllNodesScan("n")
	rows := func(Plan) (float64, bool) { return 42, true }

	out := Format(scan, rows)

	if !strings.Contains(out, "Estimated Rows: 42") {
		t.Errorf("Expected row estimate in output:\n%s", out)
	}
}

func TestDescribe(t *testing.T) {
	cases := []struct {
		p    Plan
		want string
	}{
		{NewAllNodesScan("n"), "Scan all nodes as n"},
		{NewNodeByLabelScan("n", "Person"), "Scan all :Person nodes as n"},
		{NewCartesianProduct(NewAllNodesScan("a"), NewAllNodesScan("b")), "Cross product of inputs"},
	}
	for _, c := range cases {
		if got := Describe(c.p); got != c.want {
			t.Errorf("Expected %q, got %q", c.want, got)
		}
	}
}
