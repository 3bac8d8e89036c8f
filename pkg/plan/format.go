package plan

import (
	"fmt"
	"strings"

	"github.com/orneryd/vegvisir/pkg/query"
)

// RowEstimator supplies estimated row counts for the formatted output.
// The planner package's cardinality estimator satisfies this through a
// small adapter; Format callers without estimates pass nil.
type RowEstimator func(Plan) (float64, bool)

// Describe returns a one-line human-readable description of the operator,
// matching the phrasing of EXPLAIN output.
func Describe(p Plan) string {
	switch op := p.(type) {
	case *AllNodesScan:
		return fmt.Sprintf("Scan all nodes as %s", op.Variable)
	case *NodeByLabelScan:
		return fmt.Sprintf("Scan all :%s nodes as %s", op.Label, op.Variable)
	case *NodeIndexSeek:
		return fmt.Sprintf("Index seek on :%s(%s) as %s", op.Label, op.Property, op.Variable)
	case *Argument:
		return fmt.Sprintf("Bind arguments %s", op.Symbols.String())
	case *Selection:
		exprs := make([]string, len(op.Predicates))
		for i, pred := range op.Predicates {
			exprs[i] = pred.Expr.String()
		}
		return "Filter: " + truncate(strings.Join(exprs, " AND "), 50)
	case *CartesianProduct:
		return "Cross product of inputs"
	default:
		return p.Operator()
	}
}

// Format renders the plan tree as the box diagram EXPLAIN prints.
//
// Example output:
//
//	+--------------------------------------------------------------+
//	| Query Plan                                                   |
//	+--------------------------------------------------------------+
//	| +- Selection (Filter: x.age > 17)                            |
//	|   |   Identifiers: {x}                                       |
//	|   +- NodeByLabelScan (Scan all :Person nodes as x)           |
//	+--------------------------------------------------------------+
func Format(p Plan, rows RowEstimator) string {
	var sb strings.Builder

	rule := fmt.Sprintf("+-%s-+\n", strings.Repeat("-", 60))
	sb.WriteString(rule)
	sb.WriteString(fmt.Sprintf("| %-60s |\n", "Query Plan"))
	sb.WriteString(rule)
	formatOperator(&sb, p, 0, rows)
	sb.WriteString(rule)

	return sb.String()
}

func formatOperator(sb *strings.Builder, p Plan, depth int, rows RowEstimator) {
	if p == nil {
		return
	}

	indent := strings.Repeat("  ", depth)
	prefix := "+-"
	if depth > 0 {
		prefix = "|" + indent + "+-"
	}

	line := fmt.Sprintf("%s %s", prefix, p.Operator())
	if desc := Describe(p); desc != "" && desc != p.Operator() {
		line += fmt.Sprintf(" (%s)", truncate(desc, 40))
	}
	sb.WriteString(fmt.Sprintf("| %-60s |\n", line))

	detail := fmt.Sprintf("%s|   Identifiers: %s", indent, formatSymbols(p.Available()))
	if rows != nil {
		if est, ok := rows(p); ok {
			detail += fmt.Sprintf(", Estimated Rows: %.0f", est)
		}
	}
	sb.WriteString(fmt.Sprintf("| %-60s |\n", detail))

	for _, child := range p.Children() {
		formatOperator(sb, child, depth+1, rows)
	}
}

func formatSymbols(s query.SymbolSet) string {
	return truncate(s.String(), 40)
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
