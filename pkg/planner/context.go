package planner

import (
	"github.com/orneryd/vegvisir/pkg/catalog"
	"github.com/orneryd/vegvisir/pkg/config"
	"github.com/orneryd/vegvisir/pkg/plan"
)

// DefaultMaxRounds is the safety valve on planning rounds. Every
// productive round adds at least one table entry, so a healthy search
// finishes far earlier; the valve only catches generator bugs.
const DefaultMaxRounds = 64

// Cost is the estimated execution expense of a plan. Costs are totally
// ordered; when two candidates cost the same, the planner breaks the tie
// deterministically by insertion order, never by map iteration or other
// nondeterminism.
type Cost float64

// CostModel ranks plans by estimated execution expense. Implementations
// must be pure and cheap; an error (e.g. missing statistics) aborts
// planning and reaches the caller unchanged.
type CostModel interface {
	Cost(p plan.Plan) (Cost, error)
}

// CardinalityEstimator estimates how many rows a plan produces.
type CardinalityEstimator interface {
	EstimatedRows(p plan.Plan) (float64, error)
}

// Context carries everything a generator may consult: the cost model,
// the cardinality estimator, the schema/statistics catalog, and tuning
// knobs. The context is threaded explicitly through every generator call
// so generators stay pure and testable in isolation - there is no
// ambient planning state.
type Context struct {
	// Cost ranks candidate plans. Required.
	Cost CostModel

	// Cardinality estimates row counts. Required when the default cost
	// model is used.
	Cardinality CardinalityEstimator

	// Catalog answers index-existence, index-state, and count queries.
	// May be nil; leaf generators then plan scans only.
	Catalog catalog.Catalog

	// Generators overrides the registered generator list. Nil means
	// DefaultGenerators().
	Generators []Generator

	// MaxRounds caps planning rounds; zero means DefaultMaxRounds.
	MaxRounds int

	// DisableCartesianProduct turns off the cartesian-merge fallback,
	// for hosts that would rather fail than plan unconstrained joins.
	DisableCartesianProduct bool
}

// NewContext builds a context over the given catalog with the heuristic
// estimator and cost model. Pass nil for a catalog-free context.
func NewContext(cat catalog.Catalog) *Context {
	estimator := &HeuristicEstimator{Catalog: cat, Defaults: DefaultRowDefaults()}
	return &Context{
		Cost:        &HeuristicCostModel{Estimator: estimator},
		Cardinality: estimator,
		Catalog:     cat,
	}
}

// NewContextWithConfig builds a context whose estimator defaults and
// search limits come from a planning configuration.
func NewContextWithConfig(cat catalog.Catalog, cfg config.PlanningConfig) *Context {
	estimator := &HeuristicEstimator{
		Catalog: cat,
		Defaults: RowDefaults{
			AllNodes:    cfg.AllNodesRows,
			LabelScan:   cfg.LabelScanRows,
			IndexSeek:   cfg.IndexSeekRows,
			Selectivity: cfg.FilterSelectivity,
		},
	}
	return &Context{
		Cost:                    &HeuristicCostModel{Estimator: estimator},
		Cardinality:             estimator,
		Catalog:                 cat,
		MaxRounds:               cfg.MaxRounds,
		DisableCartesianProduct: !cfg.CartesianEnabled,
	}
}
