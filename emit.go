package doctree

import "io"

// emit.go implements the emitter family: two parallel recursive walks,
// estimateNode for sizing and emitNode for writing. emitNode is shared
// across compact/pretty output and all three sinks, parameterized by which
// accumulator it writes to. estimateNode is a separate walk that adds up
// the same layout directly on a countAcc; the two walks share no code.
//
// String payloads are already stored encoded (escapes preserved from parse
// or from a copy-and-escape builder), so emitting a string is just
// quote + UTF-8-filtered payload + quote; no re-encoding happens here.

const defaultIndentStep = 2

func literalBytes(t Tag) []byte {
	switch t {
	case TagBoolTrue:
		return []byte("true")
	case TagBoolFalse:
		return []byte("false")
	case TagNull:
		return []byte("null")
	case TagZero:
		return []byte("0")
	default:
		return nil
	}
}

func scalarBytes(n *Node) []byte {
	if lit := literalBytes(n.Tag); lit != nil {
		return lit
	}
	return n.ValueBytes
}

// estimateNode walks n computing a safe upper bound on its compact or
// pretty encoding, per acc, without touching UTF-8 validity (the estimate
// is an upper bound; actual output can only be shorter).
func estimateNode(acc *countAcc, n *Node, pretty bool, depth, step int) {
	if n == nil || n.IsError() {
		return
	}
	switch n.Tag {
	case TagObject:
		estimateObject(acc, n.obj, pretty, depth, step)
	case TagArray:
		estimateArray(acc, n.arr, pretty, depth, step)
	case TagString:
		acc.n += 2 + len(n.ValueBytes)
	default:
		acc.n += len(scalarBytes(n))
	}
}

func estimateObject(acc *countAcc, o *Object, pretty bool, depth, step int) {
	if o.Count() == 0 {
		acc.n += 2
		return
	}
	if !pretty {
		acc.n += 2
		first := true
		for e := o.First(); e != nil; e = e.Next {
			if !first {
				acc.n++ // comma
			}
			first = false
			acc.n += 1 + len(e.KeyBytes) + 1 + 1 // "key":
			estimateNode(acc, e.Value, false, depth, step)
		}
		return
	}
	acc.n += 1 // '{'
	first := true
	for e := o.First(); e != nil; e = e.Next {
		if !first {
			acc.n++ // comma
		}
		first = false
		acc.n += 1 + (depth+1)*step        // '\n' + indent
		acc.n += 1 + len(e.KeyBytes) + 1 + 2 // "key": (colon+space)
		estimateNode(acc, e.Value, true, depth+1, step)
	}
	acc.n += 1 + depth*step // closing '\n' + indent
	acc.n += 1              // '}'
}

func estimateArray(acc *countAcc, a *Array, pretty bool, depth, step int) {
	if a.Count() == 0 {
		acc.n += 2
		return
	}
	if !pretty {
		acc.n += 2
		first := true
		for e := a.First(); e != nil; e = e.Next {
			if !first {
				acc.n++
			}
			first = false
			estimateNode(acc, e.Value, false, depth, step)
		}
		return
	}
	acc.n += 1
	first := true
	for e := a.First(); e != nil; e = e.Next {
		if !first {
			acc.n++
		}
		first = false
		acc.n += 1 + (depth+1)*step
		estimateNode(acc, e.Value, true, depth+1, step)
	}
	acc.n += 1 + depth*step
	acc.n += 1
}

// emitNode is estimateNode's writing twin.
func emitNode(acc accumulator, n *Node, pretty bool, depth, step int) {
	if n == nil || n.IsError() {
		return
	}
	switch n.Tag {
	case TagObject:
		emitObject(acc, n.obj, pretty, depth, step)
	case TagArray:
		emitArray(acc, n.arr, pretty, depth, step)
	case TagString:
		acc.byte('"')
		emitFilteredString(acc, n.ValueBytes)
		acc.byte('"')
	default:
		acc.bytes(scalarBytes(n))
	}
}

func emitFilteredString(acc accumulator, v []byte) {
	scratch := make([]byte, 0, len(v))
	acc.bytes(FilterUTF8(scratch, v))
}

func writeIndent(acc accumulator, depth, step int) {
	acc.byte('\n')
	for i := 0; i < depth*step; i++ {
		acc.byte(' ')
	}
}

func emitObject(acc accumulator, o *Object, pretty bool, depth, step int) {
	if o.Count() == 0 {
		acc.bytes([]byte("{}"))
		return
	}
	if !pretty {
		acc.byte('{')
		first := true
		for e := o.First(); e != nil; e = e.Next {
			if !first {
				acc.byte(',')
			}
			first = false
			acc.byte('"')
			acc.bytes(e.KeyBytes)
			acc.byte('"')
			acc.byte(':')
			emitNode(acc, e.Value, false, depth, step)
		}
		acc.byte('}')
		return
	}
	acc.byte('{')
	first := true
	for e := o.First(); e != nil; e = e.Next {
		if !first {
			acc.byte(',')
		}
		first = false
		writeIndent(acc, depth+1, step)
		acc.byte('"')
		acc.bytes(e.KeyBytes)
		acc.bytes([]byte(`": `))
		emitNode(acc, e.Value, true, depth+1, step)
	}
	writeIndent(acc, depth, step)
	acc.byte('}')
}

func emitArray(acc accumulator, a *Array, pretty bool, depth, step int) {
	if a.Count() == 0 {
		acc.bytes([]byte("[]"))
		return
	}
	if !pretty {
		acc.byte('[')
		first := true
		for e := a.First(); e != nil; e = e.Next {
			if !first {
				acc.byte(',')
			}
			first = false
			emitNode(acc, e.Value, false, depth, step)
		}
		acc.byte(']')
		return
	}
	acc.byte('[')
	first := true
	for e := a.First(); e != nil; e = e.Next {
		if !first {
			acc.byte(',')
		}
		first = false
		writeIndent(acc, depth+1, step)
		emitNode(acc, e.Value, true, depth+1, step)
	}
	writeIndent(acc, depth, step)
	acc.byte(']')
}

func normalizeStep(step int) int {
	if step <= 0 {
		return defaultIndentStep
	}
	return step
}

// EstimateCompact returns a safe upper bound (exact when every string
// payload is valid UTF-8) on the compact encoding of n, including the
// trailing NUL a memory sink's caller should budget for.
func EstimateCompact(n *Node) int {
	acc := &countAcc{}
	estimateNode(acc, n, false, 0, 0)
	return acc.n + 1
}

// EstimatePretty is EstimateCompact's pretty-printed counterpart; step<=0
// means the default of 2 spaces.
func EstimatePretty(n *Node, step int) int {
	acc := &countAcc{}
	estimateNode(acc, n, true, 0, normalizeStep(step))
	return acc.n + 1
}

// DumpCompact renders n as compact JSON into a pooled Buffer and returns
// a freshly allocated copy of its bytes. The buffer goes back to the pool
// before returning; the returned slice does not alias it and may be
// retained.
func DumpCompact(n *Node) []byte {
	b := AcquireBuffer()
	defer b.Release()
	b.Init(EstimateCompact(n))
	emitNode(&bufAcc{b: b}, n, false, 0, 0)
	out := make([]byte, b.Length())
	copy(out, b.Data())
	return out
}

// DumpPretty is DumpCompact's pretty-printed counterpart.
func DumpPretty(n *Node, step int) []byte {
	step = normalizeStep(step)
	b := AcquireBuffer()
	defer b.Release()
	b.Init(EstimatePretty(n, step))
	emitNode(&bufAcc{b: b}, n, true, 0, step)
	out := make([]byte, b.Length())
	copy(out, b.Data())
	return out
}

// EmitCompactToBuffer appends n's compact encoding to buf.
func EmitCompactToBuffer(buf *Buffer, n *Node) {
	emitNode(&bufAcc{b: buf}, n, false, 0, 0)
}

// EmitPrettyToBuffer appends n's pretty encoding to buf.
func EmitPrettyToBuffer(buf *Buffer, n *Node, step int) {
	emitNode(&bufAcc{b: buf}, n, true, 0, normalizeStep(step))
}

// EmitCompactToMemory writes n's compact encoding into dst, which must be
// at least EstimateCompact(n) bytes (callers following the contract get
// exactly estimate-1 bytes back whenever every string payload is valid
// UTF-8). Returns the number of bytes written; if dst is too small, the
// return value can exceed len(dst), signaling truncation occurred.
func EmitCompactToMemory(dst []byte, n *Node) int {
	acc := &memAcc{dst: dst}
	emitNode(acc, n, false, 0, 0)
	return acc.pos
}

// EmitPrettyToMemory is EmitCompactToMemory's pretty-printed counterpart.
func EmitPrettyToMemory(dst []byte, n *Node, step int) int {
	acc := &memAcc{dst: dst}
	emitNode(acc, n, true, 0, normalizeStep(step))
	return acc.pos
}

// EmitCompactToStream writes n's compact encoding directly to w.
func EmitCompactToStream(w io.Writer, n *Node) error {
	acc := &streamAcc{w: w}
	emitNode(acc, n, false, 0, 0)
	return acc.err
}

// EmitPrettyToStream is EmitCompactToStream's pretty-printed counterpart.
func EmitPrettyToStream(w io.Writer, n *Node, step int) error {
	acc := &streamAcc{w: w}
	emitNode(acc, n, true, 0, normalizeStep(step))
	return acc.err
}
