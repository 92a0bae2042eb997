package doctree

import "testing"

func TestTryToBoolPolicy(t *testing.T) {
	cases := []struct {
		s    string
		v    bool
		ok   bool
	}{
		{"true", true, true},
		{"TRUE", true, true},
		{"yes", true, true},
		{"YES", true, true},
		{"1", true, true},
		{"false", false, true},
		{"no", false, true},
		{"0", false, true},
		{"maybe", false, false},
		{"", false, false},
	}
	for _, c := range cases {
		v, ok := TryToBool(c.s)
		if v != c.v || ok != c.ok {
			t.Errorf("TryToBool(%q) = (%v,%v), want (%v,%v)", c.s, v, ok, c.v, c.ok)
		}
	}
}

func TestToBoolDefaulting(t *testing.T) {
	if ToBool("0", true) != false {
		t.Fatal("\"0\" must always be false regardless of default")
	}
	if ToBool("garbage", true) != true {
		t.Fatal("unrecognized text should fall back to the caller default")
	}
}

func TestNumericConversionRequiresWholeString(t *testing.T) {
	if _, ok := TryToInt("123abc"); ok {
		t.Fatal("partial numeric parse should fail")
	}
	if v, ok := TryToInt("123"); !ok || v != 123 {
		t.Fatalf("TryToInt(123) = (%d,%v)", v, ok)
	}
}

func TestNumericConversionOverflowYieldsDefault(t *testing.T) {
	if ToInt32("99999999999999", -1) != -1 {
		t.Fatal("overflowing int32 parse should yield the default")
	}
}

func TestStringArrayOfScalarAndArray(t *testing.T) {
	a := NewArena()
	n := mustParse(t, `["a", "b", "c"]`)
	got := StringArrayOf(a, n)
	want := []string{"a", "b", "c"}
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	scalar := mustParse(t, `"solo"`)
	got = StringArrayOf(a, scalar)
	if len(got) != 1 || got[0] != "solo" {
		t.Fatalf("scalar StringArrayOf = %v", got)
	}
}

func TestFloatArrayOfCoercesNonNumeric(t *testing.T) {
	n := mustParse(t, `[1, "x", 2.5, null]`)
	got := FloatArrayOf(n)
	want := []float64{1, 0, 2.5, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
