// Package main provides the Vegvisir CLI entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/orneryd/vegvisir/pkg/catalog"
	"github.com/orneryd/vegvisir/pkg/config"
	"github.com/orneryd/vegvisir/pkg/plan"
	"github.com/orneryd/vegvisir/pkg/planner"
	"github.com/orneryd/vegvisir/pkg/query"
)

var (
	version = "0.1.0"
	commit  = "dev"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vegvisir",
		Short: "Vegvisir - Cost-Based Logical Query Planner for Property Graphs",
		Long: `Vegvisir turns a declarative query graph into a cost-ranked tree
of logical operators, the way a graph database's query planner does.

Features:
  • Neo4j-compatible operator vocabulary (NodeByLabelScan, Selection, ...)
  • Pluggable candidate generators and cost model
  • Index-aware leaf planning with ONLINE/POPULATING/FAILED state gating
  • USING INDEX / USING SCAN planner hints
  • Persisted schema/statistics catalog on BadgerDB`,
	}

	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Vegvisir v%s (%s)\n", version, commit)
		},
	})

	planCmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan a query graph and print the chosen logical plan",
		Long: `Plan loads a query-graph fixture (YAML), runs the planner against an
optional catalog, and prints the chosen plan as an EXPLAIN-style tree.

Example fixture:

  nodes: [x]
  labels:
    x: Person
  predicates:
    - variable: x
      property: age
      op: ">"
      value: 17`,
		RunE: runPlan,
	}
	planCmd.Flags().String("graph", "", "path to the query-graph fixture (YAML, required)")
	planCmd.Flags().String("catalog", "", "path to a catalog fixture (YAML)")
	planCmd.Flags().String("data", "", "path to a persisted BadgerDB catalog directory")
	planCmd.Flags().String("config", "", "path to a Vegvisir config file (YAML)")
	_ = planCmd.MarkFlagRequired("graph")
	rootCmd.AddCommand(planCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPlan(cmd *cobra.Command, args []string) error {
	graphPath, _ := cmd.Flags().GetString("graph")
	catalogPath, _ := cmd.Flags().GetString("catalog")
	dataDir, _ := cmd.Flags().GetString("data")
	configPath, _ := cmd.Flags().GetString("config")

	cfg := config.LoadFromEnv()
	if configPath != "" {
		loaded, err := config.LoadFromFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	qg, err := loadGraphFixture(graphPath)
	if err != nil {
		return err
	}

	cat, closeCat, err := openCatalog(catalogPath, dataDir)
	if err != nil {
		return err
	}
	if closeCat != nil {
		defer closeCat()
	}

	ctx := planner.NewContextWithConfig(cat, cfg.Planning)
	best, err := planner.Plan(ctx, qg)
	if err != nil {
		return err
	}

	rows := func(p plan.Plan) (float64, bool) {
		est, err := ctx.Cardinality.EstimatedRows(p)
		if err != nil {
			return 0, false
		}
		return est, true
	}
	fmt.Print(plan.Format(best, rows))

	if cost, err := ctx.Cost.Cost(best); err == nil {
		fmt.Printf("Estimated cost: %.1f\n", float64(cost))
	}
	return nil
}

// graphFixture is the YAML shape of a query-graph file.
type graphFixture struct {
	Nodes         []string          `yaml:"nodes"`
	Labels        map[string]string `yaml:"labels"`
	Arguments     []string          `yaml:"arguments"`
	Relationships []struct {
		Name  string `yaml:"name"`
		Start string `yaml:"start"`
		End   string `yaml:"end"`
		Type  string `yaml:"type"`
	} `yaml:"relationships"`
	Predicates []predicateFixture `yaml:"predicates"`
	Hints      []struct {
		Type     string `yaml:"type"` // "index" or "scan"
		Variable string `yaml:"variable"`
		Label    string `yaml:"label"`
		Property string `yaml:"property"`
	} `yaml:"hints"`
}

// predicateFixture is one predicate: either a structured comparison
// (variable/property/op/value) or a raw expression with explicit
// dependencies.
type predicateFixture struct {
	Variable string   `yaml:"variable"`
	Property string   `yaml:"property"`
	Op       string   `yaml:"op"`
	Value    any      `yaml:"value"`
	Raw      string   `yaml:"raw"`
	Depends  []string `yaml:"depends"`
}

func loadGraphFixture(path string) (*query.Graph, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read graph fixture: %w", err)
	}
	var fx graphFixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse graph fixture %s: %w", path, err)
	}

	nodes := make([]query.Symbol, len(fx.Nodes))
	for i, n := range fx.Nodes {
		nodes[i] = query.Symbol(n)
	}
	qg := query.NewGraph(nodes...)

	for v, label := range fx.Labels {
		qg.WithLabel(query.Symbol(v), label)
	}
	if len(fx.Arguments) > 0 {
		argSyms := make([]query.Symbol, len(fx.Arguments))
		for i, a := range fx.Arguments {
			argSyms[i] = query.Symbol(a)
		}
		qg.WithArguments(argSyms...)
	}
	for _, rel := range fx.Relationships {
		qg.WithRelationship(query.PatternRelationship{
			Name:    query.Symbol(rel.Name),
			Start:   query.Symbol(rel.Start),
			End:     query.Symbol(rel.End),
			RelType: rel.Type,
		})
	}

	preds := make([]query.Predicate, 0, len(fx.Predicates))
	for i, pf := range fx.Predicates {
		pred, err := pf.toPredicate()
		if err != nil {
			return nil, fmt.Errorf("predicate %d: %w", i, err)
		}
		preds = append(preds, pred)
	}
	qg.WithSelections(query.NewSelections(preds...))

	for _, h := range fx.Hints {
		hint := query.Hint{
			Variable: query.Symbol(h.Variable),
			Label:    h.Label,
			Property: h.Property,
		}
		switch h.Type {
		case "index":
			hint.Type = query.HintUsingIndex
		case "scan":
			hint.Type = query.HintUsingScan
		default:
			return nil, fmt.Errorf("unknown hint type %q (want \"index\" or \"scan\")", h.Type)
		}
		qg.WithHint(hint)
	}

	return qg, nil
}

func (pf predicateFixture) toPredicate() (query.Predicate, error) {
	if pf.Raw != "" {
		if len(pf.Depends) == 0 {
			return query.Predicate{}, fmt.Errorf("raw predicate %q needs depends", pf.Raw)
		}
		deps := make([]query.Symbol, len(pf.Depends))
		for i, d := range pf.Depends {
			deps[i] = query.Symbol(d)
		}
		return query.NewPredicate(query.Raw{Text: pf.Raw}, deps...), nil
	}
	if pf.Variable == "" || pf.Property == "" || pf.Op == "" {
		return query.Predicate{}, fmt.Errorf("predicate needs variable, property, and op (or raw + depends)")
	}
	expr := query.Comparison{
		Variable: query.Symbol(pf.Variable),
		Property: pf.Property,
		Operator: pf.Op,
		Value:    pf.Value,
	}
	return query.NewPredicate(expr, query.Symbol(pf.Variable)), nil
}

// catalogFixture is the YAML shape of a catalog file.
type catalogFixture struct {
	NodeCount   int64            `yaml:"node_count"`
	LabelCounts map[string]int64 `yaml:"label_counts"`
	Indexes     []struct {
		Label    string `yaml:"label"`
		Property string `yaml:"property"`
		State    string `yaml:"state"` // ONLINE, POPULATING, FAILED
	} `yaml:"indexes"`
}

// openCatalog loads the catalog the planner consults. A YAML fixture and
// a persisted BadgerDB directory are both supported; the fixture wins if
// both are given.
func openCatalog(fixturePath, dataDir string) (catalog.Catalog, func(), error) {
	if fixturePath != "" {
		cat, err := loadCatalogFixture(fixturePath)
		return cat, nil, err
	}
	if dataDir != "" {
		cat, err := catalog.NewBadgerCatalog(dataDir)
		if err != nil {
			return nil, nil, err
		}
		return cat, func() { _ = cat.Close() }, nil
	}
	return nil, nil, nil
}

func loadCatalogFixture(path string) (catalog.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog fixture: %w", err)
	}
	var fx catalogFixture
	if err := yaml.Unmarshal(data, &fx); err != nil {
		return nil, fmt.Errorf("failed to parse catalog fixture %s: %w", path, err)
	}

	cat := catalog.NewMemoryCatalog()
	if fx.NodeCount > 0 {
		cat.SetNodeCount(fx.NodeCount)
	}
	for label, n := range fx.LabelCounts {
		cat.SetLabelCount(label, n)
	}
	for _, idx := range fx.Indexes {
		state, err := catalog.ParseIndexState(idx.State)
		if err != nil {
			return nil, fmt.Errorf("index :%s(%s): %w", idx.Label, idx.Property, err)
		}
		cat.PutIndex(catalog.IndexDescriptor{
			Label:    idx.Label,
			Property: idx.Property,
			State:    state,
		})
	}
	return cat, nil
}
