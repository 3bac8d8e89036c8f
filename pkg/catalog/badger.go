package catalog

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// Key prefixes for BadgerDB storage organization.
// Using single-byte prefixes for efficiency.
const (
	prefixIndex      = byte(0x01) // index:Label:property -> JSON(indexRecord)
	prefixLabelCount = byte(0x02) // labelcount:Label -> JSON(int64)
	prefixNodeCount  = byte(0x03) // nodecount -> JSON(int64)
)

// indexRecord is the persisted form of an IndexDescriptor. The state is
// stored as its string form so the on-disk format survives reordering of
// the IndexState constants.
type indexRecord struct {
	Label    string `json:"label"`
	Property string `json:"property"`
	State    string `json:"state"`
}

// BadgerCatalog is a Catalog persisted on BadgerDB.
//
// A planner host writes schema facts (index descriptors, counts) into the
// catalog whenever they change; the planner reads them back across
// restarts without re-deriving anything from the store.
//
// Key Structure:
//   - Indexes:      0x01 + "Label:property" -> JSON(indexRecord)
//   - Label counts: 0x02 + "Label"          -> JSON(int64)
//   - Node count:   0x03                    -> JSON(int64)
//
// Example:
//
//	cat, err := catalog.NewBadgerCatalog("./data/catalog")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer cat.Close()
//
//	cat.PutIndex(catalog.IndexDescriptor{
//		Label: "Person", Property: "name", State: catalog.StateOnline,
//	})
//
// Thread Safety:
//
//	Safe for concurrent use from multiple goroutines; BadgerDB
//	transactions provide isolation.
type BadgerCatalog struct {
	db *badger.DB
}

// NewBadgerCatalog opens (or creates) a persisted catalog in dataDir.
func NewBadgerCatalog(dataDir string) (*BadgerCatalog, error) {
	return newBadgerCatalog(badger.DefaultOptions(dataDir))
}

// NewBadgerCatalogInMemory creates an in-memory catalog with BadgerDB
// semantics. Data is lost on Close; intended for tests.
func NewBadgerCatalogInMemory() (*BadgerCatalog, error) {
	return newBadgerCatalog(badger.DefaultOptions("").WithInMemory(true))
}

func newBadgerCatalog(opts badger.Options) (*BadgerCatalog, error) {
	// Quiet logger and small buffers: a catalog holds schema facts, not
	// data, so the default 64MB memtables are wasted RAM.
	opts = opts.
		WithLogger(nil).
		WithMemTableSize(16 << 20).
		WithNumMemtables(2)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog database: %w", err)
	}
	return &BadgerCatalog{db: db}, nil
}

// Close releases the underlying database.
func (c *BadgerCatalog) Close() error {
	return c.db.Close()
}

// PutIndex records (or replaces) an index descriptor.
func (c *BadgerCatalog) PutIndex(d IndexDescriptor) error {
	rec := indexRecord{Label: d.Label, Property: d.Property, State: d.State.String()}
	value, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode index descriptor: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(prefixedKey(prefixIndex, d.Key()), value)
	})
}

// SetNodeCount records the total node count.
func (c *BadgerCatalog) SetNodeCount(n int64) error {
	return c.putInt64(prefixedKey(prefixNodeCount, ""), n)
}

// SetLabelCount records the node count for a label.
func (c *BadgerCatalog) SetLabelCount(label string, n int64) error {
	return c.putInt64(prefixedKey(prefixLabelCount, label), n)
}

// IndexFor implements Catalog. Read errors surface as "no index": the
// planner treats an unreadable catalog entry the same as an absent one
// and falls back to a scan.
func (c *BadgerCatalog) IndexFor(label, property string) (IndexDescriptor, bool) {
	var desc IndexDescriptor
	found := false
	_ = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(prefixedKey(prefixIndex, label+":"+property))
		if err != nil {
			return nil
		}
		return item.Value(func(value []byte) error {
			d, err := decodeIndexRecord(value)
			if err != nil {
				return nil
			}
			desc = d
			found = true
			return nil
		})
	})
	return desc, found
}

// Indexes implements Catalog. Descriptors come back in key order because
// BadgerDB iterates keys in byte order.
func (c *BadgerCatalog) Indexes() []IndexDescriptor {
	var out []IndexDescriptor
	_ = c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte{prefixIndex}
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Rewind(); it.Valid(); it.Next() {
			err := it.Item().Value(func(value []byte) error {
				d, err := decodeIndexRecord(value)
				if err == nil {
					out = append(out, d)
				}
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	return out
}

// NodeCount implements Catalog.
func (c *BadgerCatalog) NodeCount() (int64, bool) {
	return c.getInt64(prefixedKey(prefixNodeCount, ""))
}

// LabelCount implements Catalog.
func (c *BadgerCatalog) LabelCount(label string) (int64, bool) {
	return c.getInt64(prefixedKey(prefixLabelCount, label))
}

func (c *BadgerCatalog) putInt64(key []byte, n int64) error {
	value, err := json.Marshal(n)
	if err != nil {
		return fmt.Errorf("failed to encode count: %w", err)
	}
	return c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(key, value)
	})
}

func (c *BadgerCatalog) getInt64(key []byte) (int64, bool) {
	var n int64
	found := false
	_ = c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(key)
		if err != nil {
			return nil
		}
		return item.Value(func(value []byte) error {
			if err := json.Unmarshal(value, &n); err == nil {
				found = true
			}
			return nil
		})
	})
	return n, found
}

func decodeIndexRecord(value []byte) (IndexDescriptor, error) {
	var rec indexRecord
	if err := json.Unmarshal(value, &rec); err != nil {
		return IndexDescriptor{}, fmt.Errorf("failed to decode index descriptor: %w", err)
	}
	state, err := ParseIndexState(rec.State)
	if err != nil {
		return IndexDescriptor{}, err
	}
	return IndexDescriptor{Label: rec.Label, Property: rec.Property, State: state}, nil
}

func prefixedKey(prefix byte, key string) []byte {
	out := make([]byte, 0, len(key)+1)
	out = append(out, prefix)
	out = append(out, key...)
	return out
}
