package query

import "fmt"

// PatternRelationship is a relationship pattern between two pattern
// nodes, e.g. (a)-[r:KNOWS]->(b). The relationship name is itself a
// symbol a plan must eventually bind.
type PatternRelationship struct {
	Name    Symbol
	Start   Symbol
	End     Symbol
	RelType string // empty means any type
}

// Symbols returns the symbols the relationship pattern introduces or
// references: the relationship itself and both endpoints.
func (r PatternRelationship) Symbols() SymbolSet {
	return NewSymbolSet(r.Name, r.Start, r.End)
}

// HintType distinguishes the planner hints a query can carry.
type HintType int

const (
	// HintUsingIndex forces an index seek for a variable, as in
	// USING INDEX n:Person(name).
	HintUsingIndex HintType = iota
	// HintUsingScan forces a label scan for a variable, suppressing
	// index seeks, as in USING SCAN n:Person.
	HintUsingScan
)

// Hint is a user-supplied planning directive attached to the query graph.
// Hints narrow the planner's leaf choices; they never add capabilities
// the catalog does not have.
type Hint struct {
	Type     HintType
	Variable Symbol
	Label    string
	Property string // only for HintUsingIndex
}

// String renders the hint in Cypher's USING syntax.
func (h Hint) String() string {
	switch h.Type {
	case HintUsingIndex:
		return fmt.Sprintf("USING INDEX %s:%s(%s)", h.Variable, h.Label, h.Property)
	case HintUsingScan:
		return fmt.Sprintf("USING SCAN %s:%s", h.Variable, h.Label)
	default:
		return "UNKNOWN HINT"
	}
}

// Graph is the query graph: the pattern variables, relationship patterns,
// and predicates still to be solved, plus any symbols supplied as
// arguments from an outer query. Immutable input to the planner.
type Graph struct {
	// PatternNodes are the node variables the pattern introduces.
	PatternNodes SymbolSet
	// NodeLabels maps a pattern node to its label, when the pattern
	// names one. Nodes without an entry are unlabeled.
	NodeLabels map[Symbol]string
	// PatternRelationships are the relationship patterns between nodes.
	PatternRelationships []PatternRelationship
	// Selections are the predicates that must hold.
	Selections Selections
	// Arguments are symbols already bound by an outer plan (correlated
	// subqueries, OPTIONAL MATCH arguments).
	Arguments SymbolSet
	// Hints are user planning directives.
	Hints []Hint
}

// NewGraph builds a query graph over the given pattern nodes.
func NewGraph(nodes ...Symbol) *Graph {
	return &Graph{
		PatternNodes: NewSymbolSet(nodes...),
		NodeLabels:   map[Symbol]string{},
	}
}

// WithLabel returns the graph with a label recorded for a pattern node.
// Builder-style: intended for construction only, before planning starts.
func (g *Graph) WithLabel(node Symbol, label string) *Graph {
	g.NodeLabels[node] = label
	return g
}

// WithSelections returns the graph with its predicate set replaced.
func (g *Graph) WithSelections(s Selections) *Graph {
	g.Selections = s
	return g
}

// WithRelationship returns the graph with a relationship pattern added.
func (g *Graph) WithRelationship(rel PatternRelationship) *Graph {
	g.PatternRelationships = append(g.PatternRelationships, rel)
	return g
}

// WithArguments returns the graph with argument symbols recorded.
func (g *Graph) WithArguments(args ...Symbol) *Graph {
	g.Arguments = NewSymbolSet(args...)
	return g
}

// WithHint returns the graph with a planner hint added.
func (g *Graph) WithHint(h Hint) *Graph {
	g.Hints = append(g.Hints, h)
	return g
}

// Label returns the label recorded for a pattern node, if any.
func (g *Graph) Label(node Symbol) (string, bool) {
	label, ok := g.NodeLabels[node]
	return label, ok
}

// Symbols returns every symbol a complete plan for this graph must bind:
// pattern nodes, relationship names and endpoints, and arguments.
func (g *Graph) Symbols() SymbolSet {
	all := g.PatternNodes.Union(g.Arguments)
	for _, rel := range g.PatternRelationships {
		all = all.Union(rel.Symbols())
	}
	return all
}
