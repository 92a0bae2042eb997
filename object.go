package doctree

import "bytes"

// Object is the container view of a TagObject node: a doubly linked list of
// entries in insertion order, plus two mutually exclusive lazily built
// lookup indexes — a sorted snapshot for Get and an ordered tree for Find.
// At most one of the two is ever active; activating one discards the
// other. This mirrors the OrderedMap idea of pairing an ordered key list
// with a lookup structure, generalized to two alternative lookup
// structures instead of one map.
type Object struct {
	node *Node

	head, tail *ObjectEntry
	count      int

	snapshot []*ObjectEntry // sorted by key; active iff non-nil
	tree     *treeNode      // ordered BST by key; active iff non-nil
}

// ObjectEntry is one key/value pair of an Object's linked list. treeLeft/
// treeRight/treeParent are an intrusive map hook: the entry doubles as the
// node of the tree index when that index is active.
type ObjectEntry struct {
	KeyBytes []byte
	Value    *Node
	Prev     *ObjectEntry
	Next     *ObjectEntry

	treeLeft, treeRight, treeParent *ObjectEntry
}

type treeNode = ObjectEntry

// NewObject allocates an empty object node.
func NewObject(a *Arena) *Node {
	obj := &Object{}
	n := &Node{Tag: TagObject, obj: obj}
	obj.node = n
	return n
}

// Count returns the number of entries, or 0 for a nil object.
func (o *Object) Count() int {
	if o == nil {
		return 0
	}
	return o.count
}

// First returns the first entry in insertion order, or nil if empty.
func (o *Object) First() *ObjectEntry {
	if o == nil {
		return nil
	}
	return o.head
}

// Last returns the last entry in insertion order, or nil if empty.
func (o *Object) Last() *ObjectEntry {
	if o == nil {
		return nil
	}
	return o.tail
}

// Append links a new entry at the tail in O(1). It sets the child's parent
// but touches neither lookup index, which is the point: bulk construction
// (the parser, or callers who never look up by key) pays nothing for
// indexes it will never use.
func (o *Object) Append(key []byte, value *Node) *ObjectEntry {
	e := &ObjectEntry{KeyBytes: key, Value: value}
	value.Parent = o.node
	if o.tail == nil {
		o.head, o.tail = e, e
	} else {
		e.Prev = o.tail
		o.tail.Next = e
		o.tail = e
	}
	o.count++
	return e
}

// Scan walks from the head and returns the first entry with an exactly
// equal key. O(n); builds no index.
func (o *Object) Scan(key []byte) *ObjectEntry {
	if o == nil {
		return nil
	}
	for e := o.head; e != nil; e = e.Next {
		if bytes.Equal(e.KeyBytes, key) {
			return e
		}
	}
	return nil
}

// ScanReverse walks from the tail and returns the last entry with an
// exactly equal key.
func (o *Object) ScanReverse(key []byte) *ObjectEntry {
	if o == nil {
		return nil
	}
	for e := o.tail; e != nil; e = e.Prev {
		if bytes.Equal(e.KeyBytes, key) {
			return e
		}
	}
	return nil
}

// Get looks the key up via the sorted snapshot index, building it on first
// use (discarding the tree index if one was active: the two indexes are
// mutually exclusive, and building one always retires the other). Appends
// made since the snapshot was last built are invisible until the snapshot
// is invalidated (by Set/Remove) and rebuilt.
// Behavior on duplicate keys is unspecified beyond "some matching entry";
// callers wanting determinism should use Scan/ScanReverse.
func (o *Object) Get(key []byte) *ObjectEntry {
	if o == nil {
		return nil
	}
	if o.tree != nil {
		o.tree = nil
	}
	if o.snapshot == nil {
		o.buildSnapshot()
	}
	lo, hi := 0, len(o.snapshot)
	for lo < hi {
		mid := (lo + hi) / 2
		c := bytes.Compare(o.snapshot[mid].KeyBytes, key)
		switch {
		case c == 0:
			return o.snapshot[mid]
		case c < 0:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return nil
}

func (o *Object) buildSnapshot() {
	o.snapshot = make([]*ObjectEntry, 0, o.count)
	for e := o.head; e != nil; e = e.Next {
		o.snapshot = append(o.snapshot, e)
	}
	sortEntriesByKey(o.snapshot)
}

func sortEntriesByKey(s []*ObjectEntry) {
	// Small, dependency-free insertion sort is fine: object arity in
	// practice is small, and this runs once per snapshot build.
	for i := 1; i < len(s); i++ {
		for j := i; j > 0 && bytes.Compare(s[j-1].KeyBytes, s[j].KeyBytes) > 0; j-- {
			s[j-1], s[j] = s[j], s[j-1]
		}
	}
}

// Find looks the key up via the ordered tree index, building it on first
// use (discarding the snapshot index if one was active). Find-based Insert
// keeps the tree current; plain Append leaves it stale. Find does not
// rebuild an existing tree, so entries appended after the build stay
// invisible to Find until a Get discards the tree and a later Find builds
// a new one.
func (o *Object) Find(key []byte) *ObjectEntry {
	if o == nil {
		return nil
	}
	if o.snapshot != nil {
		o.snapshot = nil
	}
	if o.tree == nil {
		o.buildTree()
	}
	n := o.tree
	for n != nil {
		c := bytes.Compare(key, n.KeyBytes)
		switch {
		case c == 0:
			return n
		case c < 0:
			n = n.treeLeft
		default:
			n = n.treeRight
		}
	}
	return nil
}

func (o *Object) buildTree() {
	o.tree = nil
	for e := o.head; e != nil; e = e.Next {
		e.treeLeft, e.treeRight, e.treeParent = nil, nil, nil
		o.treeInsert(e)
	}
}

func (o *Object) treeInsert(e *ObjectEntry) {
	if o.tree == nil {
		o.tree = e
		return
	}
	n := o.tree
	for {
		c := bytes.Compare(e.KeyBytes, n.KeyBytes)
		if c < 0 {
			if n.treeLeft == nil {
				n.treeLeft = e
				e.treeParent = n
				return
			}
			n = n.treeLeft
		} else {
			if n.treeRight == nil {
				n.treeRight = e
				e.treeParent = n
				return
			}
			n = n.treeRight
		}
	}
}

// treeErase removes e from the tree index using the standard transplant-
// based BST delete (CLRS): a node with one or zero children is spliced
// out directly; a node with two children is replaced by its in-order
// successor.
func (o *Object) treeErase(e *ObjectEntry) {
	switch {
	case e.treeLeft == nil:
		o.treeTransplant(e, e.treeRight)
	case e.treeRight == nil:
		o.treeTransplant(e, e.treeLeft)
	default:
		succ := e.treeRight
		for succ.treeLeft != nil {
			succ = succ.treeLeft
		}
		if succ.treeParent != e {
			o.treeTransplant(succ, succ.treeRight)
			succ.treeRight = e.treeRight
			succ.treeRight.treeParent = succ
		}
		o.treeTransplant(e, succ)
		succ.treeLeft = e.treeLeft
		succ.treeLeft.treeParent = succ
	}
	e.treeLeft, e.treeRight, e.treeParent = nil, nil, nil
}

// treeTransplant replaces the subtree rooted at u with the subtree rooted
// at v within u's parent (or at the tree root).
func (o *Object) treeTransplant(u, v *ObjectEntry) {
	switch {
	case u.treeParent == nil:
		o.tree = v
	case u == u.treeParent.treeLeft:
		u.treeParent.treeLeft = v
	default:
		u.treeParent.treeRight = v
	}
	if v != nil {
		v.treeParent = u.treeParent
	}
}

// Set replaces the value of the first entry matching key, preserving its
// position, or appends a new entry if key is absent. Either invalidates the
// snapshot (if active) or keeps the tree current by inserting the new
// entry (if active) — Set never leaves both indexes active.
func (o *Object) Set(key []byte, value *Node) *ObjectEntry {
	if e := o.Scan(key); e != nil {
		e.Value = value
		value.Parent = o.node
		return e
	}
	e := o.Append(key, value)
	if o.snapshot != nil {
		o.snapshot = nil
	}
	if o.tree != nil {
		o.treeInsert(e)
	}
	return e
}

// Insert is Set's Find-maintaining counterpart: it keeps the tree index up
// to date, building it first if necessary, so Find-based lookups never see
// a stale tree after an Insert.
func (o *Object) Insert(key []byte, value *Node) *ObjectEntry {
	if o.tree == nil && o.snapshot == nil {
		o.buildTree()
	}
	return o.Set(key, value)
}

// Remove deletes the first entry matching key. If the snapshot was active
// it is dropped; if the tree was active the entry is erased from it.
func (o *Object) Remove(key []byte) bool {
	e := o.Scan(key)
	if e == nil {
		return false
	}
	if e.Prev != nil {
		e.Prev.Next = e.Next
	} else {
		o.head = e.Next
	}
	if e.Next != nil {
		e.Next.Prev = e.Prev
	} else {
		o.tail = e.Prev
	}
	o.count--
	if e.Value != nil {
		e.Value.Parent = nil
	}
	if o.snapshot != nil {
		o.snapshot = nil
	}
	if o.tree != nil {
		o.treeErase(e)
	}
	e.Prev, e.Next = nil, nil
	return true
}

// Map renders the subtree as a plain map[string]any, decoding string
// values and keys. Duplicate keys collapse to their last occurrence, as
// Go's own map assignment would. Grounded on parsed_object.go's
// Object.Map, which does the same walk-and-assign into a map[string]any.
func (o *Object) Map(a *Arena) map[string]any {
	out := make(map[string]any, o.count)
	for e := o.head; e != nil; e = e.Next {
		out[string(Decode(a, e.KeyBytes))] = nodeToInterface(a, e.Value)
	}
	return out
}

// ForEach calls fn for every entry in insertion order.
func (o *Object) ForEach(fn func(key []byte, value *Node)) {
	if o == nil {
		return
	}
	for e := o.head; e != nil; e = e.Next {
		fn(e.KeyBytes, e.Value)
	}
}

func nodeToInterface(a *Arena, n *Node) any {
	switch n.Type() {
	case TagObject:
		return n.AsObject().Map(a)
	case TagArray:
		arr := n.AsArray()
		out := make([]any, 0, arr.Count())
		for e := arr.First(); e != nil; e = e.Next {
			out = append(out, nodeToInterface(a, e.Value))
		}
		return out
	case TagString:
		return string(Decode(a, n.ValueBytes))
	case TagNull:
		return nil
	case TagBoolTrue:
		return true
	case TagBoolFalse:
		return false
	case TagZero:
		return 0.0
	case TagNumber, TagDecimal:
		f, _ := ToFloat(n, 0)
		return f
	default:
		return nil
	}
}
