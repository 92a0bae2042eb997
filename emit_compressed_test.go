package doctree

import (
	"bytes"
	"testing"

	"github.com/klauspost/compress/zstd"
)

func TestDumpCompactCompressedRoundTrips(t *testing.T) {
	n := mustParse(t, `{"a":1,"b":[1,2,3],"c":"hello world"}`)
	compressed, err := DumpCompactCompressed(n)
	if err != nil {
		t.Fatalf("DumpCompactCompressed error: %v", err)
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		t.Fatalf("zstd.NewReader error: %v", err)
	}
	defer dec.Close()
	out, err := dec.DecodeAll(compressed, nil)
	if err != nil {
		t.Fatalf("DecodeAll error: %v", err)
	}
	if string(out) != string(DumpCompact(n)) {
		t.Fatalf("decompressed = %s, want %s", out, DumpCompact(n))
	}
}

func TestEmitCompactCompressedToStream(t *testing.T) {
	n := mustParse(t, `[1,2,3]`)
	var buf bytes.Buffer
	if err := EmitCompactCompressed(&buf, n); err != nil {
		t.Fatalf("EmitCompactCompressed error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty compressed output")
	}
}
