package doctree

import (
	"fmt"

	"github.com/klauspost/cpuid/v2"
)

// defaultChunkSize is how large each arena chunk is by default. It reads
// cpuid.CPU.Cache.L1D once to pick a chunk size that is a small multiple of
// the L1 data cache, which keeps bump-allocation inside a chunk mostly
// cache resident.
var defaultChunkSize = computeDefaultChunkSize()

func computeDefaultChunkSize() int {
	const fallback = 64 << 10
	l1 := cpuid.CPU.Cache.L1D
	if l1 <= 0 {
		return fallback
	}
	size := l1 * 4
	if size < 4096 {
		return fallback
	}
	return size
}

// Arena is a bump allocator: the byte payloads (keys, string and number
// text) that the parser and the builders in this package copy are carved
// out of an Arena and live exactly as long as the Arena does. Nodes and
// container entries themselves are ordinary Go values. There is no
// per-allocation free; the whole pool is reclaimed at once when the Arena
// is dropped.
//
// An Arena is not safe for concurrent use.
type Arena struct {
	chunks    [][]byte
	cur       []byte
	chunkSize int
}

// NewArena creates an Arena with the default chunk size.
func NewArena() *Arena {
	return NewArenaSize(defaultChunkSize)
}

// NewArenaSize creates an Arena whose backing chunks are at least chunkSize
// bytes. A small chunkSize is rounded up to a sane minimum.
func NewArenaSize(chunkSize int) *Arena {
	if chunkSize < 256 {
		chunkSize = 256
	}
	return &Arena{chunkSize: chunkSize}
}

// Alloc returns an n-byte slice from the arena. Contents are not zeroed.
func (a *Arena) Alloc(n int) []byte {
	if n == 0 {
		return nil
	}
	if n > len(a.cur) {
		a.grow(n)
	}
	b := a.cur[:n:n]
	a.cur = a.cur[n:]
	return b
}

// Zalloc returns an n-byte, zero-filled slice from the arena.
func (a *Arena) Zalloc(n int) []byte {
	b := a.Alloc(n)
	for i := range b {
		b[i] = 0
	}
	return b
}

// Dup copies b into a new arena-owned slice.
func (a *Arena) Dup(b []byte) []byte {
	if len(b) == 0 {
		return nil
	}
	out := a.Alloc(len(b))
	copy(out, b)
	return out
}

// Strdup copies s into a new arena-owned byte slice.
func (a *Arena) Strdup(s string) []byte {
	return a.Dup([]byte(s))
}

// Strdupf formats according to format and copies the result into the
// arena, using Go's variadic arguments in place of a va_list.
func (a *Arena) Strdupf(format string, args ...any) []byte {
	return a.Strdup(fmt.Sprintf(format, args...))
}

// grow allocates a new chunk at least n bytes long (and at least
// a.chunkSize, so small requests don't thrash chunk allocation).
func (a *Arena) grow(n int) {
	size := a.chunkSize
	if n > size {
		size = n
	}
	chunk := make([]byte, size)
	a.chunks = append(a.chunks, chunk)
	a.cur = chunk
}

// SplitWithEscape splits s on sep, treating an occurrence of sep immediately
// preceded by esc as a literal (non-splitting) character; the escape byte
// itself is dropped from the returned segment. Used by the path evaluator
// to let object keys contain literal dots (escaped as `\.`).
func (a *Arena) SplitWithEscape(sep, esc byte, s string) []string {
	if s == "" {
		return []string{""}
	}
	var out []string
	var cur []byte
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == esc && i+1 < len(s) && s[i+1] == sep {
			cur = append(cur, sep)
			i++
			continue
		}
		if c == sep {
			out = append(out, string(cur))
			cur = cur[:0]
			continue
		}
		cur = append(cur, c)
	}
	out = append(out, string(cur))
	return out
}
