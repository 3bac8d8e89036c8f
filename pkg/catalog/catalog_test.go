package catalog

import "testing"

func TestMemoryCatalogIndexes(t *testing.T) {
	cat := NewMemoryCatalog()
	cat.PutIndex(IndexDescriptor{Label: "Person", Property: "name", State: StateOnline})
	cat.PutIndex(IndexDescriptor{Label: "City", Property: "code", State: StatePopulating})

	desc, ok := cat.IndexFor("Person", "name")
	if !ok {
		t.Fatal("Expected index on :Person(name)")
	}
	if desc.State != StateOnline {
		t.Errorf("Expected ONLINE, got %s", desc.State)
	}

	if _, ok := cat.IndexFor("Person", "age"); ok {
		t.Error("Did not expect an index on :Person(age)")
	}

	all := cat.Indexes()
	if len(all) != 2 {
		t.Fatalf("Expected 2 indexes, got %d", len(all))
	}
	// Key order: "City:code" sorts before "Person:name".
	if all[0].Label != "City" || all[1].Label != "Person" {
		t.Errorf("Expected deterministic key order, got %v", all)
	}
}

func TestMemoryCatalogCounts(t *testing.T) {
	cat := NewMemoryCatalog()

	if _, ok := cat.NodeCount(); ok {
		t.Error("Unset node count must report unknown")
	}
	if _, ok := cat.LabelCount("Person"); ok {
		t.Error("Unset label count must report unknown")
	}

	cat.SetNodeCount(10000)
	cat.SetLabelCount("Person", 1500)

	if n, ok := cat.NodeCount(); !ok || n != 10000 {
		t.Errorf("Expected node count 10000, got %d (ok=%v)", n, ok)
	}
	if n, ok := cat.LabelCount("Person"); !ok || n != 1500 {
		t.Errorf("Expected Person count 1500, got %d (ok=%v)", n, ok)
	}
}

func TestIndexStateStrings(t *testing.T) {
	cases := []struct {
		state IndexState
		want  string
	}{
		{StateOnline, "ONLINE"},
		{StatePopulating, "POPULATING"},
		{StateFailed, "FAILED"},
	}
	for _, c := range cases {
		if got := c.state.String(); got != c.want {
			t.Errorf("Expected %s, got %s", c.want, got)
		}
		parsed, err := ParseIndexState(c.want)
		if err != nil {
			t.Errorf("Failed to parse %s: %v", c.want, err)
		}
		if parsed != c.state {
			t.Errorf("Round trip mismatch for %s", c.want)
		}
	}

	if _, err := ParseIndexState("OFFLINE"); err == nil {
		t.Error("Expected error for unknown state")
	}
}
