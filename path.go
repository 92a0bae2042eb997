package doctree

import (
	"bytes"
	"strconv"
)

// path.go implements the dotted-path evaluator: a path string is split on
// '.' (honoring a '\.' escape for a literal dot inside a key), and each
// segment is applied against the current node in turn. An object segment
// is a scan-matched key; an array segment is either a "key=value"
// predicate (selecting the first element whose object has a scan-matching
// entry at key with scalar text exactly equal to value) or an all-digit
// index evaluated via the array's balanced scan. Any other combination —
// wrong container kind for the segment's shape, or a miss — collapses the
// walk to null for the remainder of the path.

// PathNode evaluates path against root and returns the node reached, or
// nil if the path cannot be fully resolved.
func PathNode(a *Arena, root *Node, path string) *Node {
	segments := a.SplitWithEscape('.', '\\', path)
	cur := root
	for _, seg := range segments {
		if cur == nil {
			return nil
		}
		cur = applySegment(cur, seg)
	}
	return cur
}

// PathText returns the scalar textual view (encoded form for strings,
// literal text for numbers/literals) at path, or "" if unresolved or the
// resolved node is a container/error.
func PathText(a *Arena, root *Node, path string) string {
	return ScalarToString(PathNode(a, root, path))
}

// PathString returns the decoded string at path: for a string node, its
// unescaped value; for any other scalar, its textual view; "" if
// unresolved.
func PathString(a *Arena, root *Node, path string) string {
	n := PathNode(a, root, path)
	if n == nil {
		return ""
	}
	return decodedScalarString(a, n)
}

func applySegment(cur *Node, seg string) *Node {
	switch {
	case cur.IsObject():
		e := cur.AsObject().Scan([]byte(seg))
		if e == nil {
			return nil
		}
		return e.Value
	case cur.IsArray():
		if key, value, ok := splitPredicate(seg); ok {
			return applyArrayPredicate(cur.AsArray(), key, value)
		}
		if idx, ok := allDigits(seg); ok {
			return cur.AsArray().ScanIndex(idx)
		}
		return nil
	default:
		return nil
	}
}

// splitPredicate splits "key=value" on the first '='. A segment with no
// '=' is not a predicate.
func splitPredicate(seg string) (key, value string, ok bool) {
	i := indexByteString(seg, '=')
	if i < 0 {
		return "", "", false
	}
	return seg[:i], seg[i+1:], true
}

func indexByteString(s string, c byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == c {
			return i
		}
	}
	return -1
}

func allDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}

func applyArrayPredicate(arr *Array, key, value string) *Node {
	keyBytes := []byte(key)
	valueBytes := []byte(value)
	for e := arr.First(); e != nil; e = e.Next {
		if !e.Value.IsObject() {
			continue
		}
		match := e.Value.AsObject().Scan(keyBytes)
		if match == nil {
			continue
		}
		if bytes.Equal([]byte(ScalarToString(match.Value)), valueBytes) {
			return e.Value
		}
	}
	return nil
}
