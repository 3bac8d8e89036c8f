package planner

import "errors"

// Planning failures are tagged sentinel errors so callers can match on
// the condition with errors.Is instead of parsing messages.
var (
	// ErrNoViablePlan means the search reached a fixed point without a
	// plan covering the whole query graph. A caller-level policy (e.g.
	// re-planning with relaxed constraints) may react; the planner never
	// retries on its own.
	ErrNoViablePlan = errors.New("no viable plan for query graph")

	// ErrPredicateUnsolved means the symbol goal was reached but a
	// predicate was never applied. Distinct from ErrNoViablePlan: this
	// is a planning-logic defect, not a missing access path.
	ErrPredicateUnsolved = errors.New("predicate left unsolved at planning goal")

	// ErrHintIndexNotFound means a USING INDEX hint references an index
	// the catalog does not know about.
	ErrHintIndexNotFound = errors.New("no index found for hint")
)
