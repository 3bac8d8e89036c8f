// Package catalog exposes the schema and statistics facts the planner
// consumes: which property indexes exist, what state they are in, and
// coarse node counts for cardinality estimation.
//
// This is a read-only boundary. Index administration (creating, dropping,
// or populating indexes) and statistics collection live in the database
// kernel; the planner only ever asks "is there an ONLINE index on
// :Person(name)?" and "roughly how many :Person nodes are there?".
//
// Two implementations are provided: MemoryCatalog for tests and embedded
// use, and BadgerCatalog for a snapshot persisted on disk.
package catalog

import "fmt"

// IndexState is the lifecycle state of a property index.
//
// Only an Online index can serve seeks. A Populating index is still being
// built and a Failed index is unusable - the planner must fall back to a
// scan for both.
type IndexState int

const (
	// StateOnline means the index is fully populated and usable.
	StateOnline IndexState = iota
	// StatePopulating means the index is still being built.
	StatePopulating
	// StateFailed means index population failed; see database logs.
	StateFailed
)

// String renders the state in the conventional uppercase form.
func (s IndexState) String() string {
	switch s {
	case StateOnline:
		return "ONLINE"
	case StatePopulating:
		return "POPULATING"
	case StateFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("IndexState(%d)", int(s))
	}
}

// ParseIndexState converts the uppercase string form back to a state.
func ParseIndexState(s string) (IndexState, error) {
	switch s {
	case "ONLINE":
		return StateOnline, nil
	case "POPULATING":
		return StatePopulating, nil
	case "FAILED":
		return StateFailed, nil
	default:
		return 0, fmt.Errorf("unknown index state: %q", s)
	}
}

// IndexDescriptor describes a single-property index.
type IndexDescriptor struct {
	Label    string     `json:"label" yaml:"label"`
	Property string     `json:"property" yaml:"property"`
	State    IndexState `json:"state" yaml:"-"`
}

// Key returns the canonical "Label:property" key for the descriptor.
func (d IndexDescriptor) Key() string {
	return d.Label + ":" + d.Property
}

// Catalog is the planner's view of schema and statistics.
//
// Implementations must be safe for concurrent readers. Counts are
// estimates; a count of 0 with ok=false means "unknown", which callers
// treat as "use a default".
type Catalog interface {
	// IndexFor returns the index on label/property, if one exists.
	IndexFor(label, property string) (IndexDescriptor, bool)

	// Indexes returns every known index descriptor.
	Indexes() []IndexDescriptor

	// NodeCount returns the total node count, if known.
	NodeCount() (int64, bool)

	// LabelCount returns the count of nodes carrying label, if known.
	LabelCount(label string) (int64, bool)
}
