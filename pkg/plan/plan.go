// Package plan defines the logical operator tree the planner produces.
//
// A logical plan describes *what* computation must occur, independent of
// physical execution strategy. The operator vocabulary follows Neo4j's
// EXPLAIN output (AllNodesScan, NodeByLabelScan, NodeIndexSeek, Selection,
// CartesianProduct, ...), so a plan printed by this package reads the same
// as a plan printed by a Neo4j-compatible database.
//
// Plans are pure values. Combining two plans with an operator allocates a
// new node; no plan is ever mutated after construction. Ownership is
// tree-shaped: every non-root plan is exclusively owned by its parent, so
// there is no sharing and there are no cycles.
//
// Two attributes drive the planner's bookkeeping:
//
//   - Available(): every symbol bound if this plan executes. Always the
//     union of the children's available symbols plus whatever the
//     operator itself introduces.
//   - Solved(): the predicates and pattern elements this plan (including
//     its whole subtree) already accounts for. Used to guarantee a
//     predicate is applied at most once across the tree.
//
// # ELI12 (Explain Like I'm 12)
//
// A logical plan is a recipe written as a tree. The leaves say where
// ingredients come from ("scan every :Person node"), the middle says what
// to do with them ("keep only the ones older than 17"), and the root is
// the finished dish. The planner's job (in the planner package) is to try
// many recipes and keep the cheapest one - this package just defines what
// a recipe looks like.
package plan

import "github.com/orneryd/vegvisir/pkg/query"

// Plan is a node of the logical operator tree.
//
// Implementations are immutable values. Children() returns the operator's
// 0, 1, or 2 inputs; the returned slice must not be modified.
type Plan interface {
	// Operator returns the operator name in Neo4j EXPLAIN vocabulary,
	// e.g. "NodeByLabelScan".
	Operator() string

	// Available returns every symbol bound once this plan has executed.
	Available() query.SymbolSet

	// Solved returns the coverage record for this plan's subtree.
	Solved() Solved

	// Children returns the child plans, outermost last to execute.
	Children() []Plan
}
