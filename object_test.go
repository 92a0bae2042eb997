package doctree

import "testing"

func buildObject(a *Arena, pairs ...string) *Node {
	n := NewObject(a)
	o := n.AsObject()
	for i := 0; i+1 < len(pairs); i += 2 {
		o.Append(a.Strdup(pairs[i]), NumberFromInt64(a, int64(i)))
	}
	return n
}

func TestObjectInsertionOrderPreserved(t *testing.T) {
	a := NewArena()
	n := buildObject(a, "z", "", "a", "", "m", "")
	var got []string
	n.AsObject().ForEach(func(key []byte, _ *Node) {
		got = append(got, string(key))
	})
	want := []string{"z", "a", "m"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("order[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestObjectGetBuildsSnapshotAndSurvivesAppend(t *testing.T) {
	a := NewArena()
	n := buildObject(a, "a", "", "b", "", "c", "")
	o := n.AsObject()
	if e := o.Get([]byte("b")); e == nil {
		t.Fatal("Get(b) missed")
	}
	// Snapshot is now built; a raw Append after it is invisible to Get
	// until the snapshot is invalidated and rebuilt.
	o.Append(a.Strdup("d"), Zero())
	if e := o.Get([]byte("d")); e != nil {
		t.Fatal("Get(d) should not see an entry appended after snapshot build")
	}
	// Set on a genuinely new key goes through the Append+invalidate path.
	o.Set([]byte("e"), Zero())
	if e := o.Get([]byte("d")); e == nil {
		t.Fatal("Get(d) should see the entry once Set forces a snapshot rebuild")
	}
	if e := o.Get([]byte("e")); e == nil {
		t.Fatal("Get(e) missed")
	}
}

func TestObjectFindBuildsTreeAndCrossInvalidatesSnapshot(t *testing.T) {
	a := NewArena()
	n := buildObject(a, "a", "", "b", "", "c", "")
	o := n.AsObject()

	if o.Get([]byte("a")) == nil {
		t.Fatal("Get(a) missed")
	}
	if o.Find([]byte("b")) == nil {
		t.Fatal("Find(b) missed")
	}
	// Find must have discarded the snapshot built by Get, and building the
	// tree must not have lost any entries.
	for _, k := range []string{"a", "b", "c"} {
		if o.Find([]byte(k)) == nil {
			t.Fatalf("Find(%s) missed after tree rebuild", k)
		}
	}
}

func TestObjectInsertKeepsTreeCurrent(t *testing.T) {
	a := NewArena()
	n := buildObject(a, "m", "")
	o := n.AsObject()
	o.Find([]byte("m")) // build the tree
	o.Insert(a.Strdup("a"), Zero())
	o.Insert(a.Strdup("z"), Zero())
	for _, k := range []string{"m", "a", "z"} {
		if o.Find([]byte(k)) == nil {
			t.Fatalf("Find(%s) missed after Insert", k)
		}
	}
}

func TestObjectRemoveAllCombinationsOfChildren(t *testing.T) {
	a := NewArena()
	keys := []string{"d", "b", "f", "a", "c", "e", "g"}
	n := NewObject(a)
	o := n.AsObject()
	for _, k := range keys {
		o.Append(a.Strdup(k), Zero())
	}
	o.Find([]byte("d")) // build tree

	// Remove a leaf, a one-child node, and the two-children root in turn,
	// checking the remaining keys are still all findable after each.
	toRemove := []string{"a", "b", "d"}
	remaining := map[string]bool{"d": true, "b": true, "f": true, "a": true, "c": true, "e": true, "g": true}
	for _, k := range toRemove {
		if !o.Remove([]byte(k)) {
			t.Fatalf("Remove(%s) reported miss", k)
		}
		delete(remaining, k)
		for rk := range remaining {
			if o.Find([]byte(rk)) == nil {
				t.Fatalf("Find(%s) missed after removing %s", rk, k)
			}
		}
		if o.Find([]byte(k)) != nil {
			t.Fatalf("Find(%s) still hits after removal", k)
		}
	}
}

func TestObjectScanReverseFindsLastDuplicate(t *testing.T) {
	a := NewArena()
	n := NewObject(a)
	o := n.AsObject()
	first := NumberFromInt64(a, 1)
	second := NumberFromInt64(a, 2)
	o.Append(a.Strdup("k"), first)
	o.Append(a.Strdup("k"), second)
	if o.Scan([]byte("k")).Value != first {
		t.Fatal("Scan should return the first matching entry")
	}
	if o.ScanReverse([]byte("k")).Value != second {
		t.Fatal("ScanReverse should return the last matching entry")
	}
}

func TestObjectMapAndNodeToInterface(t *testing.T) {
	a := NewArena()
	n := mustParse(t, `{"a": 1, "b": [true, null, "x"], "c": {"d": 2.5}}`)
	m := n.AsObject().Map(a)
	if m["a"] != 1.0 {
		t.Fatalf("m[a] = %v, want 1.0", m["a"])
	}
	b, ok := m["b"].([]any)
	if !ok || len(b) != 3 {
		t.Fatalf("m[b] = %v, want 3-element slice", m["b"])
	}
	if b[0] != true || b[1] != nil || b[2] != "x" {
		t.Fatalf("m[b] contents = %v", b)
	}
	c, ok := m["c"].(map[string]any)
	if !ok || c["d"] != 2.5 {
		t.Fatalf("m[c] = %v", m["c"])
	}
}
