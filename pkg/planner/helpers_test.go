package planner

import (
	"fmt"

	"github.com/orneryd/vegvisir/pkg/plan"
	"github.com/orneryd/vegvisir/pkg/query"
)

// fixtureCost is a cost model with explicit per-symbol-set costs, so
// tests control merge order exactly. Plans without a fixture entry fail,
// which doubles as the "missing statistics" failure mode.
type fixtureCost map[string]Cost

func (f fixtureCost) Cost(p plan.Plan) (Cost, error) {
	c, ok := f[p.Available().Key()]
	if !ok {
		return 0, fmt.Errorf("no cost fixture for %s", p.Available())
	}
	return c, nil
}

func setKey(symbols ...query.Symbol) string {
	return query.NewSymbolSet(symbols...).Key()
}

func rawPred(text string, deps ...query.Symbol) query.Predicate {
	return query.NewPredicate(query.Raw{Text: text}, deps...)
}

func agePred() query.Predicate {
	return query.NewPredicate(query.Comparison{
		Variable: "x", Property: "age", Operator: ">", Value: 17,
	}, "x")
}

func namePred(v query.Symbol, name string) query.Predicate {
	return query.NewPredicate(query.Comparison{
		Variable: v, Property: "name", Operator: "=", Value: name,
	}, v)
}

// fixtureContext builds a context around a fixture cost model; the
// estimator is unused by tests that rank with fixtures.
func fixtureContext(costs fixtureCost) *Context {
	return &Context{Cost: costs}
}
