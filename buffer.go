package doctree

import (
	"fmt"
	"sync"
)

// bufferPool recycles the backing slices of Buffer: emitters are called
// repeatedly on a hot path and a fresh allocation per call would dominate
// otherwise-cheap compact encodes.
var bufferPool = sync.Pool{
	New: func() any {
		return &Buffer{data: make([]byte, 0, 512)}
	},
}

// Buffer is a growable byte buffer supporting the operations an emitter
// needs: Init, AppendByte, AppendBytes, AppendString, Appendf, Length,
// Data, Resize, ShrinkBy, Destroy.
type Buffer struct {
	data []byte
}

// NewBuffer returns a Buffer with at least cap bytes of initial capacity.
func NewBuffer(cap int) *Buffer {
	b := &Buffer{}
	b.Init(cap)
	return b
}

// AcquireBuffer returns a pooled Buffer ready for use. Pair with Release.
func AcquireBuffer() *Buffer {
	return bufferPool.Get().(*Buffer)
}

// Release returns b to the pool. b must not be used afterward.
func (b *Buffer) Release() {
	if b == nil {
		return
	}
	b.data = b.data[:0]
	if cap(b.data) <= 1<<20 {
		bufferPool.Put(b)
	}
}

// Init resets the buffer and ensures at least cap bytes of capacity.
func (b *Buffer) Init(cap int) {
	if cap > 0 && builtinCap(b.data) < cap {
		b.data = make([]byte, 0, cap)
		return
	}
	b.data = b.data[:0]
}

func builtinCap(b []byte) int { return cap(b) }

// AppendByte appends a single byte.
func (b *Buffer) AppendByte(c byte) {
	b.data = append(b.data, c)
}

// AppendBytes appends p verbatim.
func (b *Buffer) AppendBytes(p []byte) {
	b.data = append(b.data, p...)
}

// AppendString appends s verbatim.
func (b *Buffer) AppendString(s string) {
	b.data = append(b.data, s...)
}

// Appendf formats according to format and appends the result.
func (b *Buffer) Appendf(format string, args ...any) {
	b.data = append(b.data, fmt.Sprintf(format, args...)...)
}

// Length returns the number of bytes currently held.
func (b *Buffer) Length() int { return len(b.data) }

// Data returns the buffer's current contents. The slice aliases the
// buffer's internal storage and is invalidated by any further mutation.
func (b *Buffer) Data() []byte { return b.data }

// Resize grows or truncates the logical length to n, zero-filling on
// growth.
func (b *Buffer) Resize(n int) {
	if n <= len(b.data) {
		b.data = b.data[:n]
		return
	}
	for len(b.data) < n {
		b.data = append(b.data, 0)
	}
}

// ShrinkBy reduces the logical length by k bytes.
func (b *Buffer) ShrinkBy(k int) {
	n := len(b.data) - k
	if n < 0 {
		n = 0
	}
	b.data = b.data[:n]
}

// Destroy is a no-op under Go's garbage collector; it exists so callers
// have somewhere to put cleanup without special-casing this
// implementation, and to pair visually with the pooled Release.
func (b *Buffer) Destroy() {}
