package doctree

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// emit_compressed.go adds a compressed compact-emit sink: the compact
// encoding of n, streamed through a zstd encoder rather than written
// verbatim. Useful for callers persisting or transmitting large trees
// where CPU for compression is cheaper than the bytes saved.

// EmitCompactCompressed writes n's compact encoding to w through a zstd
// encoder, closing the encoder (and so flushing its frame) before
// returning.
func EmitCompactCompressed(w io.Writer, n *Node) error {
	enc, err := zstd.NewWriter(w)
	if err != nil {
		return err
	}
	if err := EmitCompactToStream(enc, n); err != nil {
		enc.Close()
		return err
	}
	return enc.Close()
}

// DumpCompactCompressed is EmitCompactCompressed's in-memory counterpart,
// returning the zstd-compressed bytes of n's compact encoding.
func DumpCompactCompressed(n *Node) ([]byte, error) {
	b := AcquireBuffer()
	defer b.Release()
	enc, err := zstd.NewWriter(&bufferWriter{b: b})
	if err != nil {
		return nil, err
	}
	if err := EmitCompactToStream(enc, n); err != nil {
		enc.Close()
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	out := make([]byte, b.Length())
	copy(out, b.Data())
	return out, nil
}

// bufferWriter adapts a Buffer to io.Writer for the zstd encoder above.
type bufferWriter struct{ b *Buffer }

func (w *bufferWriter) Write(p []byte) (int, error) {
	w.b.AppendBytes(p)
	return len(p), nil
}
