package doctree

import "testing"

func buildArray(a *Arena, n int) *Node {
	node := NewArray(a)
	arr := node.AsArray()
	for i := 0; i < n; i++ {
		arr.Append(NumberFromInt64(a, int64(i)))
	}
	return node
}

func TestArrayNthAndScanIndexAgree(t *testing.T) {
	a := NewArena()
	node := buildArray(a, 10)
	arr := node.AsArray()
	for i := 0; i < 10; i++ {
		nth := ToInt64Node(arr.Nth(i), -1)
		scan := ToInt64Node(arr.ScanIndex(i), -1)
		if nth != int64(i) || scan != int64(i) {
			t.Fatalf("index %d: Nth=%d ScanIndex=%d, want %d", i, nth, scan, i)
		}
	}
}

func TestArrayOutOfRange(t *testing.T) {
	a := NewArena()
	node := buildArray(a, 3)
	arr := node.AsArray()
	if arr.Nth(-1) != nil || arr.Nth(3) != nil {
		t.Fatal("Nth out of range should return nil")
	}
	if arr.ScanIndex(-1) != nil || arr.ScanIndex(3) != nil {
		t.Fatal("ScanIndex out of range should return nil")
	}
}

func TestArrayTableInvalidatedByMutation(t *testing.T) {
	a := NewArena()
	node := buildArray(a, 3)
	arr := node.AsArray()
	_ = arr.Nth(2) // builds the table

	arr.Append(NumberFromInt64(a, 99))
	if ToInt64Node(arr.Nth(3), -1) != 99 {
		t.Fatal("Nth(3) should see the newly appended element")
	}

	e := arr.First()
	arr.Erase(e)
	if arr.Count() != 3 {
		t.Fatalf("count after erase = %d, want 3", arr.Count())
	}
	if ToInt64Node(arr.Nth(0), -1) != 1 {
		t.Fatal("Nth(0) should reflect the erase")
	}
}

func TestArrayClear(t *testing.T) {
	a := NewArena()
	node := buildArray(a, 5)
	arr := node.AsArray()
	arr.Clear()
	if arr.Count() != 0 || arr.First() != nil || arr.Last() != nil {
		t.Fatal("Clear should empty the array")
	}
}
