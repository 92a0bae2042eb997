package doctree

import "strconv"

// convert.go implements a numeric/boolean conversion contract (whole-string
// parse required, overflow yields a caller default, "yes"/"no" as
// additional boolean spellings) plus the extractor functions built on top
// of it. See DESIGN.md for why this is implemented directly on strconv
// rather than a third-party numeric parser.

// TryToInt parses s as a base-10 integer. The entire string must parse;
// overflow or a malformed string reports ok=false.
func TryToInt(s string) (v int, ok bool) {
	n, err := strconv.ParseInt(s, 10, strconv.IntSize)
	if err != nil {
		return 0, false
	}
	return int(n), true
}

// ToInt is TryToInt's defaulting counterpart.
func ToInt(s string, def int) int {
	if v, ok := TryToInt(s); ok {
		return v
	}
	return def
}

// TryToInt32 parses s as a base-10 int32.
func TryToInt32(s string) (int32, bool) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ToInt32 is TryToInt32's defaulting counterpart.
func ToInt32(s string, def int32) int32 {
	if v, ok := TryToInt32(s); ok {
		return v
	}
	return def
}

// TryToUint32 parses s as a base-10 uint32.
func TryToUint32(s string) (uint32, bool) {
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(n), true
}

// ToUint32 is TryToUint32's defaulting counterpart.
func ToUint32(s string, def uint32) uint32 {
	if v, ok := TryToUint32(s); ok {
		return v
	}
	return def
}

// TryToInt64 parses s as a base-10 int64.
func TryToInt64(s string) (int64, bool) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToInt64 is TryToInt64's defaulting counterpart.
func ToInt64(s string, def int64) int64 {
	if v, ok := TryToInt64(s); ok {
		return v
	}
	return def
}

// TryToUint64 parses s as a base-10 uint64.
func TryToUint64(s string) (uint64, bool) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// ToUint64 is TryToUint64's defaulting counterpart.
func ToUint64(s string, def uint64) uint64 {
	if v, ok := TryToUint64(s); ok {
		return v
	}
	return def
}

// TryToFloat parses s as a float64. The entire string must parse.
func TryToFloat(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

// ToFloatText is TryToFloat's defaulting counterpart, operating on text
// directly (ToFloat, below, operates on a Node).
func ToFloatText(s string, def float64) float64 {
	if v, ok := TryToFloat(s); ok {
		return v
	}
	return def
}

// TryToBool implements a bespoke boolean policy: case-insensitive
// "true"/"false"/"yes"/"no"/"1"/"0"; anything else fails (returns false,
// false). "0" is always false; it is checked before any generic fallback.
func TryToBool(s string) (bool, bool) {
	switch lowerASCII(s) {
	case "true", "yes", "1":
		return true, true
	case "false", "no", "0":
		return false, true
	default:
		return false, false
	}
}

// ToBool is TryToBool's defaulting counterpart: on failure to recognize
// the text, it returns the caller's chosen default instead of false.
func ToBool(s string, def bool) bool {
	if v, ok := TryToBool(s); ok {
		return v
	}
	return def
}

func lowerASCII(s string) string {
	b := []byte(s)
	changed := false
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
			changed = true
		}
	}
	if !changed {
		return s
	}
	return string(b)
}

// --- Extractors over tree nodes ---

// ScalarToString returns the node's textual view as a string: the encoded
// form for strings (escapes preserved), the literal text for numbers, and
// "true"/"false"/"null" for literals. Returns "" for an object, array, or
// error node.
func ScalarToString(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Tag {
	case TagBoolTrue:
		return "true"
	case TagBoolFalse:
		return "false"
	case TagNull:
		return "null"
	case TagZero:
		return "0"
	case TagString, TagNumber, TagDecimal:
		return string(n.ValueBytes)
	default:
		return ""
	}
}

// ToInt64Node extracts an int64 from a number-like node, defaulting on
// conversion miss.
func ToInt64Node(n *Node, def int64) int64 {
	if n == nil || !n.Tag.IsNumberLike() {
		return def
	}
	return ToInt64(ScalarToString(n), def)
}

// ToUint32Node extracts a uint32 from a number-like node, defaulting on
// conversion miss.
func ToUint32Node(n *Node, def uint32) uint32 {
	if n == nil || !n.Tag.IsNumberLike() {
		return def
	}
	return ToUint32(ScalarToString(n), def)
}

// ToFloat extracts a float64 from a number-like node, defaulting on
// conversion miss.
func ToFloat(n *Node, def float64) (float64, bool) {
	if n == nil || !n.Tag.IsNumberLike() {
		return def, false
	}
	v, ok := TryToFloat(ScalarToString(n))
	if !ok {
		return def, false
	}
	return v, true
}

// ToBoolNode extracts a bool from a bool or string node, defaulting on
// conversion miss.
func ToBoolNode(n *Node, def bool) bool {
	if n == nil {
		return def
	}
	if b, ok := n.BoolValue(); ok {
		return b
	}
	return ToBool(ScalarToString(n), def)
}

// StringArrayOf decodes n into a slice of decoded strings: if n is an
// array, one entry per element (each decoded via its scalar text); if n is
// a scalar, a single-element slice. Returns nil for an object or error
// node.
func StringArrayOf(a *Arena, n *Node) []string {
	if n == nil {
		return nil
	}
	if n.IsArray() {
		arr := n.AsArray()
		out := make([]string, 0, arr.Count())
		for e := arr.First(); e != nil; e = e.Next {
			out = append(out, decodedScalarString(a, e.Value))
		}
		return out
	}
	if n.IsObject() || n.IsError() {
		return nil
	}
	return []string{decodedScalarString(a, n)}
}

func decodedScalarString(a *Arena, n *Node) string {
	if n.IsString() {
		return string(Decode(a, n.ValueBytes))
	}
	return ScalarToString(n)
}

// FloatArrayOf decodes n into a slice of float64s: if n is an array, one
// entry per element, with non-numeric elements coerced to 0.0; if n is a
// scalar, a single-element slice.
func FloatArrayOf(n *Node) []float64 {
	if n == nil {
		return nil
	}
	if n.IsArray() {
		arr := n.AsArray()
		out := make([]float64, 0, arr.Count())
		for e := arr.First(); e != nil; e = e.Next {
			v, _ := ToFloat(e.Value, 0.0)
			out = append(out, v)
		}
		return out
	}
	v, _ := ToFloat(n, 0.0)
	return []float64{v}
}
