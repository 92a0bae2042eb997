package doctree

// FilterUTF8 copies only well-formed UTF-8 code-point sequences from src to
// dst, dropping malformed start or continuation bytes one byte at a time.
// It guarantees the result is valid UTF-8 of length <= len(src) and
// performs no normalization. Used exclusively by emitters when writing
// string node payloads.
func FilterUTF8(dst, src []byte) []byte {
	i := 0
	for i < len(src) {
		c := src[i]
		switch {
		case c < 0x80:
			dst = append(dst, c)
			i++
		case c&0xE0 == 0xC0:
			if ok, n := validSeq(src[i:], 2); ok {
				dst = append(dst, src[i:i+n]...)
				i += n
			} else {
				i++
			}
		case c&0xF0 == 0xE0:
			if ok, n := validSeq(src[i:], 3); ok {
				dst = append(dst, src[i:i+n]...)
				i += n
			} else {
				i++
			}
		case c&0xF8 == 0xF0:
			if ok, n := validSeq(src[i:], 4); ok {
				dst = append(dst, src[i:i+n]...)
				i += n
			} else {
				i++
			}
		default:
			// Stray continuation byte or invalid start byte.
			i++
		}
	}
	return dst
}

// validSeq reports whether src begins with a well-formed n-byte UTF-8
// sequence (src[0] already identified as an n-byte start byte by the
// caller); it checks that n-1 continuation bytes follow and match
// 10xxxxxx.
func validSeq(src []byte, n int) (bool, int) {
	if len(src) < n {
		return false, 0
	}
	for i := 1; i < n; i++ {
		if src[i]&0xC0 != 0x80 {
			return false, 0
		}
	}
	return true, n
}
