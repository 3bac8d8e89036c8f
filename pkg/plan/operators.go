package plan

import (
	"fmt"

	"github.com/orneryd/vegvisir/pkg/query"
)

// AllNodesScan reads every node in the store and binds it to Variable.
// The fallback leaf when no label or index narrows the access.
type AllNodesScan struct {
	Variable query.Symbol
	solved   Solved
}

// NewAllNodesScan builds an all-nodes scan leaf for the variable.
func NewAllNodesScan(v query.Symbol) *AllNodesScan {
	return &AllNodesScan{Variable: v, solved: NewSolved().WithElements(v)}
}

func (p *AllNodesScan) Operator() string           { return "AllNodesScan" }
func (p *AllNodesScan) Available() query.SymbolSet { return query.NewSymbolSet(p.Variable) }
func (p *AllNodesScan) Solved() Solved             { return p.solved }
func (p *AllNodesScan) Children() []Plan           { return nil }

// NodeByLabelScan reads every node carrying Label and binds it to
// Variable.
type NodeByLabelScan struct {
	Variable query.Symbol
	Label    string
	solved   Solved
}

// NewNodeByLabelScan builds a label-scan leaf.
func NewNodeByLabelScan(v query.Symbol, label string) *NodeByLabelScan {
	return &NodeByLabelScan{Variable: v, Label: label, solved: NewSolved().WithElements(v)}
}

func (p *NodeByLabelScan) Operator() string           { return "NodeByLabelScan" }
func (p *NodeByLabelScan) Available() query.SymbolSet { return query.NewSymbolSet(p.Variable) }
func (p *NodeByLabelScan) Solved() Solved             { return p.solved }
func (p *NodeByLabelScan) Children() []Plan           { return nil }

// NodeIndexSeek looks Variable up through the index on Label(Property).
// The seek consumes the equality predicate that selected the index, so
// that predicate is recorded as solved and is never re-applied as a
// Selection higher in the tree.
type NodeIndexSeek struct {
	Variable  query.Symbol
	Label     string
	Property  string
	Predicate query.Predicate
	solved    Solved
}

// NewNodeIndexSeek builds an index-seek leaf solving the given equality
// predicate.
func NewNodeIndexSeek(v query.Symbol, label, property string, pred query.Predicate) *NodeIndexSeek {
	return &NodeIndexSeek{
		Variable:  v,
		Label:     label,
		Property:  property,
		Predicate: pred,
		solved:    NewSolved().WithElements(v).WithPredicates(pred),
	}
}

func (p *NodeIndexSeek) Operator() string           { return "NodeIndexSeek" }
func (p *NodeIndexSeek) Available() query.SymbolSet { return query.NewSymbolSet(p.Variable) }
func (p *NodeIndexSeek) Solved() Solved             { return p.solved }
func (p *NodeIndexSeek) Children() []Plan           { return nil }

// Argument binds symbols already provided by an outer plan. It reads
// nothing from the store.
type Argument struct {
	Symbols query.SymbolSet
	solved  Solved
}

// NewArgument builds an argument leaf over the given symbols.
func NewArgument(symbols query.SymbolSet) *Argument {
	return &Argument{Symbols: symbols, solved: NewSolved().WithElements(symbols.Sorted()...)}
}

func (p *Argument) Operator() string           { return "Argument" }
func (p *Argument) Available() query.SymbolSet { return p.Symbols }
func (p *Argument) Solved() Solved             { return p.solved }
func (p *Argument) Children() []Plan           { return nil }

// Selection filters its child's rows by a conjunction of predicates
// (Neo4j's Filter operator). The predicate list keeps the order the
// predicates appear in the query graph's selection set, so plan shapes
// are reproducible; order does not affect correctness since all listed
// predicates must hold.
type Selection struct {
	Predicates []query.Predicate
	child      Plan
	solved     Solved
}

// NewSelection wraps child in a filter over the given predicates. It
// fails if any predicate's dependencies are not fully bound by the
// child's available symbols - a Selection must never be built over a
// child that cannot evaluate it.
func NewSelection(predicates []query.Predicate, child Plan) (*Selection, error) {
	if len(predicates) == 0 {
		return nil, fmt.Errorf("selection requires at least one predicate")
	}
	for _, p := range predicates {
		if !p.CoveredBy(child.Available()) {
			return nil, fmt.Errorf("selection over %s: predicate %q needs %s but child binds only %s",
				child.Operator(), p.Expr.String(), p.Dependencies.String(), child.Available().String())
		}
	}
	return &Selection{
		Predicates: predicates,
		child:      child,
		solved:     child.Solved().WithPredicates(predicates...),
	}, nil
}

func (p *Selection) Operator() string           { return "Selection" }
func (p *Selection) Available() query.SymbolSet { return p.child.Available() }
func (p *Selection) Solved() Solved             { return p.solved }
func (p *Selection) Children() []Plan           { return []Plan{p.child} }

// CartesianProduct pairs every row of its left child with every row of
// its right child - a join with no join predicate. Its available symbols
// are the union of both children's.
type CartesianProduct struct {
	left  Plan
	right Plan
}

// NewCartesianProduct builds an unconstrained pairing of the two plans.
func NewCartesianProduct(left, right Plan) *CartesianProduct {
	return &CartesianProduct{left: left, right: right}
}

func (p *CartesianProduct) Operator() string { return "CartesianProduct" }

func (p *CartesianProduct) Available() query.SymbolSet {
	return p.left.Available().Union(p.right.Available())
}

func (p *CartesianProduct) Solved() Solved {
	return p.left.Solved().Union(p.right.Solved())
}

func (p *CartesianProduct) Children() []Plan { return []Plan{p.left, p.right} }

// Left returns the left child.
func (p *CartesianProduct) Left() Plan { return p.left }

// Right returns the right child.
func (p *CartesianProduct) Right() Plan { return p.right }
