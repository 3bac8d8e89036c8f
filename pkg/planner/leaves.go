package planner

import (
	"github.com/orneryd/vegvisir/pkg/catalog"
	"github.com/orneryd/vegvisir/pkg/plan"
	"github.com/orneryd/vegvisir/pkg/query"
)

// Leaf generators seed the search with one singleton plan per access
// pattern: arguments from an outer plan, full scans, label scans, and
// index seeks. They are idempotent - the table deduplicates by solved
// symbol set - so the driver can safely run them every round.

// ArgumentLeaves plans the symbols an outer query already binds.
func ArgumentLeaves(ctx *Context, table *Table, qg *query.Graph) ([]plan.Plan, error) {
	if qg.Arguments.IsEmpty() {
		return nil, nil
	}
	return []plan.Plan{plan.NewArgument(qg.Arguments)}, nil
}

// AllNodesScanLeaves plans a full node scan per pattern node. The scan is
// the universal fallback; when a label scan or seek also exists for the
// same variable the table keeps whichever costs less.
func AllNodesScanLeaves(ctx *Context, table *Table, qg *query.Graph) ([]plan.Plan, error) {
	var out []plan.Plan
	for _, v := range qg.PatternNodes.Sorted() {
		if qg.Arguments.Contains(v) {
			continue
		}
		if seekForced(ctx, qg, v) {
			continue
		}
		out = append(out, plan.NewAllNodesScan(v))
	}
	return out, nil
}

// NodeByLabelScanLeaves plans a label scan per labeled pattern node.
func NodeByLabelScanLeaves(ctx *Context, table *Table, qg *query.Graph) ([]plan.Plan, error) {
	var out []plan.Plan
	for _, v := range qg.PatternNodes.Sorted() {
		if qg.Arguments.Contains(v) {
			continue
		}
		label, ok := qg.Label(v)
		if !ok {
			continue
		}
		if seekForced(ctx, qg, v) {
			continue
		}
		out = append(out, plan.NewNodeByLabelScan(v, label))
	}
	return out, nil
}

// NodeIndexSeekLeaves plans an index seek for every equality predicate
// over a labeled pattern node whose label/property has an index in state
// Online. Populating and Failed indexes are unusable for seeks; the scan
// leaves cover those variables instead. The seek consumes its predicate,
// so the predicate is recorded as solved at the leaf.
//
// USING SCAN hints suppress seeks for their variable; USING INDEX hints
// restrict seeks to the hinted label/property.
func NodeIndexSeekLeaves(ctx *Context, table *Table, qg *query.Graph) ([]plan.Plan, error) {
	if ctx.Catalog == nil {
		return nil, nil
	}
	var out []plan.Plan
	for _, v := range qg.PatternNodes.Sorted() {
		if qg.Arguments.Contains(v) {
			continue
		}
		for _, seek := range seekableIndexes(ctx.Catalog, qg, v) {
			out = append(out, seek)
		}
	}
	return out, nil
}

// seekableIndexes returns every viable NodeIndexSeek for a variable.
func seekableIndexes(cat catalog.Catalog, qg *query.Graph, v query.Symbol) []*plan.NodeIndexSeek {
	label, ok := qg.Label(v)
	if !ok {
		return nil
	}
	if scanForced(qg, v) {
		return nil
	}

	var out []*plan.NodeIndexSeek
	for _, pred := range qg.Selections.All() {
		cmp, ok := pred.Expr.(query.Comparison)
		if !ok || cmp.Operator != "=" || cmp.Variable != v {
			continue
		}
		if !pred.Dependencies.Equal(query.NewSymbolSet(v)) {
			continue
		}
		if !hintAllowsIndex(qg, v, label, cmp.Property) {
			continue
		}
		desc, ok := cat.IndexFor(label, cmp.Property)
		if !ok || desc.State != catalog.StateOnline {
			continue
		}
		out = append(out, plan.NewNodeIndexSeek(v, label, cmp.Property, pred))
	}
	return out
}

// seekForced reports whether a USING INDEX hint pins the variable to an
// index seek. The hint only takes effect when a viable seek actually
// exists - a hint cannot conjure an access path the catalog cannot serve.
func seekForced(ctx *Context, qg *query.Graph, v query.Symbol) bool {
	hinted := false
	for _, h := range qg.Hints {
		if h.Type == query.HintUsingIndex && h.Variable == v {
			hinted = true
			break
		}
	}
	if !hinted || ctx.Catalog == nil {
		return false
	}
	return len(seekableIndexes(ctx.Catalog, qg, v)) > 0
}

// scanForced reports whether a USING SCAN hint forbids seeks for the
// variable.
func scanForced(qg *query.Graph, v query.Symbol) bool {
	for _, h := range qg.Hints {
		if h.Type == query.HintUsingScan && h.Variable == v {
			return true
		}
	}
	return false
}

// hintAllowsIndex reports whether USING INDEX hints (if any exist for the
// variable) permit the given label/property. Without hints everything is
// permitted.
func hintAllowsIndex(qg *query.Graph, v query.Symbol, label, property string) bool {
	restricted := false
	for _, h := range qg.Hints {
		if h.Type != query.HintUsingIndex || h.Variable != v {
			continue
		}
		restricted = true
		if h.Label == label && h.Property == property {
			return true
		}
	}
	return !restricted
}
