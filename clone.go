package doctree

// Clone deep-copies n (and, for containers, its entire subtree) into
// dst, which may be a different Arena than the one n's bytes currently
// live in. The clone has no Parent; it is the caller's job to re-Append
// or re-Set it into whatever container should hold it next.
func (n *Node) Clone(dst *Arena) *Node {
	if n == nil {
		return nil
	}
	switch n.Tag {
	case TagObject:
		clone := NewObject(dst)
		for e := n.obj.First(); e != nil; e = e.Next {
			clone.AsObject().Append(dst.Dup(e.KeyBytes), e.Value.Clone(dst))
		}
		return clone
	case TagArray:
		clone := NewArray(dst)
		for e := n.arr.First(); e != nil; e = e.Next {
			clone.AsArray().Append(e.Value.Clone(dst))
		}
		return clone
	case TagError:
		info := *n.errInfo
		return &Node{Tag: TagError, errInfo: &info}
	case TagString, TagNumber, TagDecimal, TagZero:
		// TagZero still carries its own ValueBytes (parsed "0" is arena
		// text like any other number), so it must be re-Dup'd into dst
		// rather than shared, or it would dangle once the source arena
		// is torn down.
		return &Node{Tag: n.Tag, ValueBytes: dst.Dup(n.ValueBytes), ByteLength: n.ByteLength}
	default:
		// TagNull/TagBoolTrue/TagBoolFalse carry no bytes at all, but the
		// clone still needs its own node: appending it to a container sets
		// its Parent, which must not touch the source node.
		return &Node{Tag: n.Tag}
	}
}
