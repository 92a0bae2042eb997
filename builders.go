package doctree

import "strconv"

// builders.go constructs scalar nodes directly, without going through
// Parse: the literal singletons, numbers from Go integers/floats/text, and
// strings under all four copy/escape policies a caller might want.
//
// Every builder here is pure: it allocates (or aliases) and returns a
// *Node with no Parent set, ready to be Append/Set/Insert'd into a
// container, which is what wires the parent pointer.

var zeroText = []byte("0")

// True, False, Null and Zero return a new literal node on every call, so
// each container that receives one owns its Parent pointer. Zero's text
// is a shared read-only "0".
func True() *Node { return &Node{Tag: TagBoolTrue} }
func False() *Node { return &Node{Tag: TagBoolFalse} }
func Null() *Node { return &Node{Tag: TagNull} }
func Zero() *Node { return &Node{Tag: TagZero, ValueBytes: zeroText, ByteLength: 1} }

// classifyNumberText applies the same zero/number/decimal rule the
// parser uses: an unsigned bare "0" is TagZero, anything with a '.' is
// TagDecimal, everything else is TagNumber.
func classifyNumberText(text string) Tag {
	switch {
	case text == "0":
		return TagZero
	case indexByte([]byte(text), '.') >= 0:
		return TagDecimal
	default:
		return TagNumber
	}
}

// NumberFromText builds a number node directly from pre-formatted integer
// text (no decimal point, no validation — the caller attests text is a
// valid JSON number).
func NumberFromText(a *Arena, text string) *Node {
	b := a.Strdup(text)
	return &Node{Tag: classifyNumberText(text), ValueBytes: b, ByteLength: len(b)}
}

// DecimalFromText builds a decimal (floating-point-shaped) number node
// directly from pre-formatted text, unconditionally tagged TagDecimal
// regardless of whether text actually contains a '.' — use this when the
// caller wants decimal semantics preserved even for whole numbers like
// "2e0".
func DecimalFromText(a *Arena, text string) *Node {
	b := a.Strdup(text)
	return &Node{Tag: TagDecimal, ValueBytes: b, ByteLength: len(b)}
}

// NumberFromInt64 builds a number node from a signed integer.
func NumberFromInt64(a *Arena, v int64) *Node {
	return NumberFromText(a, strconv.FormatInt(v, 10))
}

// NumberFromUint64 builds a number node from an unsigned integer.
func NumberFromUint64(a *Arena, v uint64) *Node {
	return NumberFromText(a, strconv.FormatUint(v, 10))
}

// NumberFromFloat builds a decimal-or-number node from a float64, using
// the same canonical formatting the emitters rely on for builder-created
// numbers (see numformat.go).
func NumberFromFloat(a *Arena, v float64) (*Node, error) {
	text, err := floatToString(v)
	if err != nil {
		return nil, err
	}
	b := a.Strdup(text)
	return &Node{Tag: classifyNumberText(text), ValueBytes: b, ByteLength: len(b)}, nil
}

// NewStringCopyEscape escapes raw and copies the escaped result into the
// arena unconditionally, even when no byte needed escaping. Use this when
// the source of raw is short-lived and the node must outlive it.
func NewStringCopyEscape(a *Arena, raw []byte) *Node {
	enc := a.Dup(Encode(a, raw))
	return &Node{Tag: TagString, ValueBytes: enc, ByteLength: len(enc) + 2}
}

// NewStringAliasEscape escapes raw, aliasing it directly (no allocation)
// when no byte required escaping, and allocating from the arena only when
// escaping actually changed the bytes. Use this when raw is guaranteed to
// outlive the tree.
func NewStringAliasEscape(a *Arena, raw []byte) *Node {
	enc := Encode(a, raw)
	return &Node{Tag: TagString, ValueBytes: enc, ByteLength: len(enc) + 2}
}

// NewStringCopyRaw copies encoded (already JSON-escaped, no surrounding
// quotes) into the arena verbatim, with no escaping pass. Use this for
// text a caller has already escaped (or knows needs no escaping) but whose
// backing memory will not outlive the tree.
func NewStringCopyRaw(a *Arena, encoded []byte) *Node {
	b := a.Dup(encoded)
	return &Node{Tag: TagString, ValueBytes: b, ByteLength: len(b) + 2}
}

// NewStringAliasRaw aliases encoded directly with no copy and no escaping
// pass: the cheapest constructor, valid only when the caller guarantees
// encoded is already correctly JSON-escaped and will outlive the tree.
func NewStringAliasRaw(encoded []byte) *Node {
	return &Node{Tag: TagString, ValueBytes: encoded, ByteLength: len(encoded) + 2}
}
