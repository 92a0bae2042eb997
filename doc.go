// Package doctree is an arena-backed JSON document engine.
//
// It parses JSON into a tree of tagged nodes allocated from a bump Arena,
// mutates that tree through ordered object/array container operations, and
// re-emits it through compact or pretty writers. Parse never mutates its
// input: every scalar's text is copied into the Arena as the tree is
// built, so the caller's buffer is read-only to the parser. ParseString is
// a convenience for callers starting from a Go string rather than a byte
// slice.
//
// Nodes, keys and string payloads are only valid for as long as the Arena
// that produced them is alive. The package performs no internal locking;
// a tree must not be mutated from more than one goroutine at a time.
package doctree
