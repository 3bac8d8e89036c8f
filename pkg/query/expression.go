package query

import (
	"fmt"
	"strings"
)

// Expression is a predicate expression attached to a query graph. The
// planner never evaluates expressions - it only needs stable identity
// (String) to track which predicates a plan has already applied, so the
// variants here stay deliberately small. Evaluation belongs to the
// execution layer.
type Expression interface {
	// String renders the expression in Cypher-like syntax. Two
	// expressions with the same String are treated as the same
	// predicate content.
	String() string
}

// Comparison compares a property of a pattern variable against a literal,
// e.g. x.age > 17.
type Comparison struct {
	Variable Symbol
	Property string
	Operator string // "=", "<>", "<", "<=", ">", ">="
	Value    any
}

func (c Comparison) String() string {
	return fmt.Sprintf("%s.%s %s %s", c.Variable, c.Property, c.Operator, renderLiteral(c.Value))
}

// HasLabel checks a pattern variable for a label, e.g. x:Person.
type HasLabel struct {
	Variable Symbol
	Label    string
}

func (h HasLabel) String() string {
	return fmt.Sprintf("%s:%s", h.Variable, h.Label)
}

// Raw wraps an expression the planner has no structured form for. The
// text is treated as opaque predicate content.
type Raw struct {
	Text string
}

func (r Raw) String() string {
	return r.Text
}

func renderLiteral(v any) string {
	switch val := v.(type) {
	case string:
		return "'" + strings.ReplaceAll(val, "'", "\\'") + "'"
	case nil:
		return "null"
	default:
		return fmt.Sprintf("%v", val)
	}
}
