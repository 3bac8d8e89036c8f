package planner

import (
	"fmt"
	"math"

	"github.com/orneryd/vegvisir/pkg/catalog"
	"github.com/orneryd/vegvisir/pkg/plan"
)

// RowDefaults are the row estimates used when the catalog has no count
// for an access path. The constants match the estimates EXPLAIN prints
// for the same operators.
type RowDefaults struct {
	// AllNodes is the assumed total node count.
	AllNodes float64
	// LabelScan is the assumed per-label node count.
	LabelScan float64
	// IndexSeek is the assumed result size of an index lookup.
	IndexSeek float64
	// Selectivity is the fraction of rows a single predicate keeps.
	Selectivity float64
}

// DefaultRowDefaults returns the standard estimates.
func DefaultRowDefaults() RowDefaults {
	return RowDefaults{
		AllNodes:    10000,
		LabelScan:   1000,
		IndexSeek:   10,
		Selectivity: 0.1,
	}
}

// HeuristicEstimator estimates row counts from catalog counts where
// available and RowDefaults otherwise. It is deliberately simple - a
// placeholder for a statistics-backed estimator - but it is deterministic
// and catalog-aware, which is all the search needs to rank candidates
// sensibly.
type HeuristicEstimator struct {
	Catalog  catalog.Catalog // may be nil
	Defaults RowDefaults
}

// EstimatedRows implements CardinalityEstimator.
func (e *HeuristicEstimator) EstimatedRows(p plan.Plan) (float64, error) {
	switch op := p.(type) {
	case *plan.AllNodesScan:
		if e.Catalog != nil {
			if n, ok := e.Catalog.NodeCount(); ok {
				return float64(n), nil
			}
		}
		return e.Defaults.AllNodes, nil
	case *plan.NodeByLabelScan:
		if e.Catalog != nil {
			if n, ok := e.Catalog.LabelCount(op.Label); ok {
				return float64(n), nil
			}
		}
		return e.Defaults.LabelScan, nil
	case *plan.NodeIndexSeek:
		return e.Defaults.IndexSeek, nil
	case *plan.Argument:
		return 1, nil
	case *plan.Selection:
		childRows, err := e.EstimatedRows(op.Children()[0])
		if err != nil {
			return 0, err
		}
		return childRows * math.Pow(e.Defaults.Selectivity, float64(len(op.Predicates))), nil
	case *plan.CartesianProduct:
		leftRows, err := e.EstimatedRows(op.Left())
		if err != nil {
			return 0, err
		}
		rightRows, err := e.EstimatedRows(op.Right())
		if err != nil {
			return 0, err
		}
		return leftRows * rightRows, nil
	default:
		return 0, fmt.Errorf("no row estimate for operator %s", p.Operator())
	}
}

// HeuristicCostModel derives cost from estimated rows: each operator
// contributes work proportional to the rows it touches, with per-operator
// multipliers for how expensive each touch is (a label scan reads node
// plus properties, a seek does one index lookup plus node reads, and so
// on). The cost of a tree is the sum over all its operators.
type HeuristicCostModel struct {
	Estimator CardinalityEstimator
}

// Cost implements CostModel.
func (m *HeuristicCostModel) Cost(p plan.Plan) (Cost, error) {
	total := Cost(0)
	for _, child := range p.Children() {
		childCost, err := m.Cost(child)
		if err != nil {
			return 0, err
		}
		total += childCost
	}

	rows, err := m.Estimator.EstimatedRows(p)
	if err != nil {
		return 0, err
	}

	switch p.(type) {
	case *plan.AllNodesScan, *plan.NodeByLabelScan:
		total += Cost(rows * 2) // read node + properties
	case *plan.NodeIndexSeek:
		total += Cost(rows + 1) // index lookup + node reads
	case *plan.Argument:
		total += 1
	case *plan.Selection:
		total += Cost(rows) // property access per surviving row
	case *plan.CartesianProduct:
		total += Cost(rows) // one output row per pairing
	default:
		total += Cost(rows)
	}
	return total, nil
}
