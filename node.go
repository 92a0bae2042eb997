package doctree

// Tag identifies the kind of value held by a Node. The ordering is part of
// the contract, not incidental: tags from TagString onward are exactly the
// "scalar with a textual value" tags, and TagZero/TagNumber/TagDecimal are
// exactly the number-like tags. Keep the declared order; IsScalarTextual
// below depends on it.
type Tag uint8

const (
	TagError Tag = iota
	TagObject
	TagArray
	TagNull
	TagString
	TagBoolFalse
	TagZero
	TagNumber
	TagDecimal
	TagBoolTrue
)

func (t Tag) String() string {
	switch t {
	case TagError:
		return "error"
	case TagObject:
		return "object"
	case TagArray:
		return "array"
	case TagNull:
		return "null"
	case TagString:
		return "string"
	case TagBoolFalse:
		return "bool_false"
	case TagZero:
		return "zero"
	case TagNumber:
		return "number"
	case TagDecimal:
		return "decimal"
	case TagBoolTrue:
		return "bool_true"
	default:
		return "unknown"
	}
}

// IsScalarTextual reports whether t carries a textual value, per the
// tag-ordering contract (tag >= TagString).
func (t Tag) IsScalarTextual() bool { return t >= TagString }

// IsNumberLike reports whether t is one of the number tags.
func (t Tag) IsNumberLike() bool {
	return t == TagZero || t == TagNumber || t == TagDecimal
}

// Node is the common value record shared by every tree element: the tag,
// the encoded byte length of the node's own textual representation (not
// counting children), the parent, and — for scalars — the textual payload.
//
// For TagString, ValueBytes is the JSON-encoded body without surrounding
// quotes (escapes are preserved, not decoded). For TagNumber/TagDecimal/
// TagZero it is the literal number text. For TagNull/TagBoolTrue/
// TagBoolFalse it is unused; Type alone carries the value.
//
// An object or array node points at its Object or Array container state,
// which in turn points back at the node.
type Node struct {
	Tag        Tag
	ByteLength int
	Parent     *Node
	ValueBytes []byte

	// obj/arr is set when Tag is TagObject/TagArray, pointing back at the
	// richer container value. errInfo is set when Tag is TagError.
	obj     *Object
	arr     *Array
	errInfo *ErrorInfo
}

// ErrorInfo is the payload of an error node.
type ErrorInfo struct {
	SourceStart int
	ErrorAt     int
	// Line and Column locate ErrorAt in the source; the parser fills them
	// in when it builds the error node, and Error() reports them.
	Line, Column int
	// Kind is the underlying *SyntaxError for this failure: one of the
	// package sentinels (ErrUnexpectedEOF, ErrTrailingComma,
	// ErrLeadingZero, ErrBOM) when the failure matches one of those
	// shapes, or an ad hoc *SyntaxError otherwise. Never nil on a node
	// built by the parser.
	Kind error
}

// IsError reports whether n is an error node (or n is nil, which is
// treated as an absent/erroneous result by lookup-miss-returning ops).
func (n *Node) IsError() bool { return n == nil || n.Tag == TagError }

// IsObject reports whether n is an object node.
func (n *Node) IsObject() bool { return n != nil && n.Tag == TagObject }

// IsArray reports whether n is an array node.
func (n *Node) IsArray() bool { return n != nil && n.Tag == TagArray }

// IsNull reports whether n is the null literal.
func (n *Node) IsNull() bool { return n != nil && n.Tag == TagNull }

// IsBool reports whether n is true or false.
func (n *Node) IsBool() bool { return n != nil && (n.Tag == TagBoolTrue || n.Tag == TagBoolFalse) }

// IsString reports whether n is a string node.
func (n *Node) IsString() bool { return n != nil && n.Tag == TagString }

// IsNumber reports whether n is number-like (zero, number or decimal).
func (n *Node) IsNumber() bool { return n != nil && n.Tag.IsNumberLike() }

// Type returns n's tag, or TagError for a nil node.
func (n *Node) Type() Tag {
	if n == nil {
		return TagError
	}
	return n.Tag
}

// AsObject returns the Object view of n, or nil if n is not an object.
func (n *Node) AsObject() *Object {
	if n == nil || n.Tag != TagObject {
		return nil
	}
	return n.obj
}

// AsArray returns the Array view of n, or nil if n is not an array.
func (n *Node) AsArray() *Array {
	if n == nil || n.Tag != TagArray {
		return nil
	}
	return n.arr
}

// Error returns the parse error carried by n, formatted as
// "Error at row R, column: C (N bytes into json)". Returns "" if n is not
// an error node.
func (n *Node) Error() string {
	if n == nil || n.Tag != TagError || n.errInfo == nil {
		return ""
	}
	e := n.errInfo
	return formatParseError(e.Line, e.Column, e.ErrorAt)
}

// Err returns the underlying *SyntaxError carried by an error node, or nil
// if n is not an error node. errors.Is/errors.As against the package
// sentinels (ErrUnexpectedEOF, ErrTrailingComma, ErrLeadingZero, ErrBOM)
// work against this value.
func (n *Node) Err() error {
	if n == nil || n.Tag != TagError || n.errInfo == nil {
		return nil
	}
	return n.errInfo.Kind
}

// BoolValue returns n's boolean value and whether n is in fact a bool node.
func (n *Node) BoolValue() (bool, bool) {
	if n == nil {
		return false, false
	}
	switch n.Tag {
	case TagBoolTrue:
		return true, true
	case TagBoolFalse:
		return false, true
	default:
		return false, false
	}
}

// Text returns the node's raw textual payload for scalar-with-textual-value
// nodes (strings, numbers). For strings this is the JSON-encoded body
// (escapes preserved, not decoded) — use Decode for the unescaped form.
func (n *Node) Text() []byte {
	if n == nil || !n.Tag.IsScalarTextual() {
		return nil
	}
	return n.ValueBytes
}
