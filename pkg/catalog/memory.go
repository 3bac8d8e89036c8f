package catalog

import (
	"sort"
	"sync"
)

// MemoryCatalog is an in-memory Catalog. It is the implementation tests
// and embedded hosts use; mutators exist so a host can keep the snapshot
// current as its schema changes.
//
// Example:
//
//	cat := catalog.NewMemoryCatalog()
//	cat.PutIndex(catalog.IndexDescriptor{
//		Label: "Person", Property: "name", State: catalog.StateOnline,
//	})
//	cat.SetLabelCount("Person", 1500)
//	cat.SetNodeCount(10000)
type MemoryCatalog struct {
	mu          sync.RWMutex
	indexes     map[string]IndexDescriptor // key: "Label:property"
	labelCounts map[string]int64
	nodeCount   int64
	hasCount    bool
}

// NewMemoryCatalog returns an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		indexes:     make(map[string]IndexDescriptor),
		labelCounts: make(map[string]int64),
	}
}

// PutIndex records (or replaces) an index descriptor.
func (c *MemoryCatalog) PutIndex(d IndexDescriptor) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.indexes[d.Key()] = d
}

// SetNodeCount records the total node count.
func (c *MemoryCatalog) SetNodeCount(n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.nodeCount = n
	c.hasCount = true
}

// SetLabelCount records the node count for a label.
func (c *MemoryCatalog) SetLabelCount(label string, n int64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.labelCounts[label] = n
}

// IndexFor implements Catalog.
func (c *MemoryCatalog) IndexFor(label, property string) (IndexDescriptor, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.indexes[label+":"+property]
	return d, ok
}

// Indexes implements Catalog. Descriptors are returned in key order.
func (c *MemoryCatalog) Indexes() []IndexDescriptor {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]IndexDescriptor, 0, len(c.indexes))
	for _, d := range c.indexes {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// NodeCount implements Catalog.
func (c *MemoryCatalog) NodeCount() (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.nodeCount, c.hasCount
}

// LabelCount implements Catalog.
func (c *MemoryCatalog) LabelCount(label string) (int64, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	n, ok := c.labelCounts[label]
	return n, ok
}
