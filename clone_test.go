package doctree

import "testing"

func TestCloneIntoFreshArenaSurvivesSourceDrop(t *testing.T) {
	src := NewArena()
	n := ParseString(src, `{"a": [1, 2, {"b": "x"}], "c": null}`)
	if n.IsError() {
		t.Fatalf("unexpected parse error: %s", n.Error())
	}

	dst := NewArena()
	clone := n.Clone(dst)

	// Drop every reference to src; only clone's bytes should matter now.
	src = nil
	_ = src

	out := DumpCompact(clone)
	want := `{"a":[1,2,{"b":"x"}],"c":null}`
	if string(out) != want {
		t.Fatalf("clone compact = %s, want %s", out, want)
	}
}

func TestCloneIsIndependentFromSource(t *testing.T) {
	a := NewArena()
	n := ParseString(a, `{"a": 1}`)
	clone := n.Clone(a)

	clone.AsObject().Set([]byte("a"), NumberFromInt64(a, 99))
	orig := n.AsObject().Scan([]byte("a"))
	if ToInt64Node(orig.Value, -1) != 1 {
		t.Fatal("mutating the clone should not affect the original")
	}
}
