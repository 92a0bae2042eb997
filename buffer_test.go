package doctree

import "testing"

func TestBufferAppendAndLength(t *testing.T) {
	b := NewBuffer(4)
	b.AppendString("ab")
	b.AppendByte('c')
	b.AppendBytes([]byte("de"))
	b.Appendf("-%d", 7)
	if string(b.Data()) != "abcde-7" {
		t.Fatalf("Data() = %q", b.Data())
	}
	if b.Length() != len("abcde-7") {
		t.Fatalf("Length() = %d", b.Length())
	}
}

func TestBufferResizeGrowAndShrink(t *testing.T) {
	b := NewBuffer(0)
	b.AppendString("abc")
	b.Resize(5)
	if b.Length() != 5 {
		t.Fatalf("Length() after grow = %d, want 5", b.Length())
	}
	if string(b.Data()[:3]) != "abc" {
		t.Fatalf("Resize grow corrupted existing data: %q", b.Data())
	}
	b.ShrinkBy(2)
	if b.Length() != 3 {
		t.Fatalf("Length() after ShrinkBy = %d, want 3", b.Length())
	}
	b.Resize(1)
	if b.Length() != 1 || b.Data()[0] != 'a' {
		t.Fatalf("Resize shrink = %q", b.Data())
	}
}

func TestBufferAcquireReleaseRoundTrip(t *testing.T) {
	b := AcquireBuffer()
	b.AppendString("hello")
	b.Release()

	b2 := AcquireBuffer()
	if b2.Length() != 0 {
		t.Fatalf("reacquired buffer should start empty, got length %d", b2.Length())
	}
	b2.Release()
}
