package doctree

import "testing"

func TestArenaAllocIsolation(t *testing.T) {
	a := NewArenaSize(64)
	x := a.Alloc(8)
	y := a.Alloc(8)
	for i := range x {
		x[i] = 0xAA
	}
	for i := range y {
		y[i] = 0xBB
	}
	for _, b := range x {
		if b != 0xAA {
			t.Fatal("writing into y corrupted x")
		}
	}
}

func TestArenaGrowsAcrossChunks(t *testing.T) {
	a := NewArenaSize(16)
	slices := make([][]byte, 600) // more bytes than one minimum-size chunk holds
	for i := range slices {
		slices[i] = a.Dup([]byte{byte(i)})
	}
	for i, s := range slices {
		if s[0] != byte(i) {
			t.Fatalf("slice %d corrupted: got %d", i, s[0])
		}
	}
}

func TestArenaStrdupf(t *testing.T) {
	a := NewArena()
	b := a.Strdupf("n=%d s=%s", 7, "x")
	if string(b) != "n=7 s=x" {
		t.Fatalf("Strdupf = %q", b)
	}
}

func TestArenaSplitWithEscape(t *testing.T) {
	a := NewArena()
	cases := []struct {
		in   string
		want []string
	}{
		{"a.b.c", []string{"a", "b", "c"}},
		{`a\.b.c`, []string{"a.b", "c"}},
		{"", []string{""}},
		{"a", []string{"a"}},
	}
	for _, c := range cases {
		got := a.SplitWithEscape('.', '\\', c.in)
		if len(got) != len(c.want) {
			t.Fatalf("SplitWithEscape(%q) = %v, want %v", c.in, got, c.want)
		}
		for i := range got {
			if got[i] != c.want[i] {
				t.Fatalf("SplitWithEscape(%q)[%d] = %q, want %q", c.in, i, got[i], c.want[i])
			}
		}
	}
}
