package planner

// IterateUntilConverged builds a fixed-point driver over step: the
// returned function applies step repeatedly until step(value) equals
// value under equal, then returns that fixed point.
//
// Precondition: step must be monotonically reducing in some well-founded
// measure (CartesianMerge shrinks its plan-slice length by one per
// application) or the driver will not terminate. Callers are responsible
// for that property; the driver does not re-derive termination.
func IterateUntilConverged[T any](step func(T) (T, error), equal func(T, T) bool) func(T) (T, error) {
	return func(initial T) (T, error) {
		current := initial
		for {
			next, err := step(current)
			if err != nil {
				var zero T
				return zero, err
			}
			if equal(next, current) {
				return current, nil
			}
			current = next
		}
	}
}
