package doctree

import (
	"math"
	"strconv"
)

// numformat.go formats a float64 the way most JSON generators do: ES6
// Number-to-string conversion, falling back to 'e' notation outside
// [1e-6, 1e21) and trimming the leading zero padding strconv leaves on
// small negative exponents ("e-09" -> "e-9").
//
// Numbers parsed from text are never renormalized — they round-trip as
// their literal bytes — but builders that construct a number node
// directly from a Go float64 need some canonical text to store, and this
// is that canonical form.

// appendFloat converts f to its canonical JSON number text and appends it
// to dst. It errors on Inf/NaN, which have no JSON number representation.
func appendFloat(dst []byte, f float64) ([]byte, error) {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil, &SyntaxError{Msg: "INF or NaN number has no JSON representation"}
	}
	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 && (abs < 1e-6 || abs >= 1e21) {
		format = 'e'
	}
	dst = strconv.AppendFloat(dst, f, format, -1, 64)
	if format == 'e' {
		n := len(dst)
		if n >= 4 && dst[n-4] == 'e' && dst[n-3] == '-' && dst[n-2] == '0' {
			dst[n-2] = dst[n-1]
			dst = dst[:n-1]
		}
	}
	return dst, nil
}

// floatToString is the non-appending form of appendFloat.
func floatToString(f float64) (string, error) {
	var tmp [32]byte
	v, err := appendFloat(tmp[:0], f)
	if err != nil {
		return "", err
	}
	return string(v), nil
}
