package doctree

// escape.go implements the JSON string escape codec: encoding raw bytes
// into JSON-quoted form and decoding JSON-quoted form (including UTF-16
// surrogate pairs) back to raw UTF-8.
//
// Encode also escapes a bare '/' to "\/", which callers may rely on when
// embedding encoded output inside HTML <script> blocks. Decode combines a
// hi/lo surrogate pair into one code point with plain arithmetic.

var hexDigits = [16]byte{'0', '1', '2', '3', '4', '5', '6', '7', '8', '9', 'a', 'b', 'c', 'd', 'e', 'f'}

// needsEscape reports whether b must be escaped when encoding a raw byte
// string into JSON.
func needsEscape(b byte) bool {
	return b == 0 || b == '"' || b == '\\' || b == '/' || b < 0x20
}

// EncodeNeedsEscape scans src and reports whether Encode would have to
// modify it. Exposed so callers building nodes can choose the cheaper
// "alias, no escaping" string constructor up front.
func EncodeNeedsEscape(src []byte) bool {
	for _, b := range src {
		if needsEscape(b) {
			return true
		}
	}
	return false
}

// Encode converts raw bytes into their JSON-escaped form. If no byte in src
// requires escaping, src is returned unchanged (zero-copy); otherwise the
// escaped form is allocated from a.
func Encode(a *Arena, src []byte) []byte {
	i := 0
	for ; i < len(src); i++ {
		if needsEscape(src[i]) {
			break
		}
	}
	if i == len(src) {
		return src
	}

	// Worst case: every remaining byte expands to \u00XX (6 bytes).
	out := a.Alloc(i + (len(src)-i)*6)
	out = out[:i]
	copy(out, src[:i])
	out = appendEscaped(out, src[i:])
	return out
}

// EncodeBytes appends the JSON-escaped form of src to dst and returns the
// extended slice, without involving an Arena. It escapes every byte the
// same way Encode does.
func EncodeBytes(dst, src []byte) []byte {
	return appendEscaped(dst, src)
}

func appendEscaped(dst, src []byte) []byte {
	for _, c := range src {
		switch c {
		case '"':
			dst = append(dst, '\\', '"')
		case '\\':
			dst = append(dst, '\\', '\\')
		case '/':
			dst = append(dst, '\\', '/')
		case '\b':
			dst = append(dst, '\\', 'b')
		case '\f':
			dst = append(dst, '\\', 'f')
		case '\n':
			dst = append(dst, '\\', 'n')
		case '\r':
			dst = append(dst, '\\', 'r')
		case '\t':
			dst = append(dst, '\\', 't')
		default:
			if c < 0x20 {
				dst = append(dst, '\\', 'u', '0', '0', hexDigits[c>>4], hexDigits[c&0xf])
			} else {
				dst = append(dst, c)
			}
		}
	}
	return dst
}

// Decode converts a JSON-escaped string body back to raw UTF-8. If src
// contains no backslash, src is returned unchanged. Otherwise a buffer
// sized len(src)+1 is allocated from a (decoding never expands).
func Decode(a *Arena, src []byte) []byte {
	out, _ := DecodeLen(a, src)
	return out
}

// DecodeLen is the "with length" variant of Decode: it also reports the
// decoded length (equal to len(result)).
func DecodeLen(a *Arena, src []byte) ([]byte, int) {
	i := indexByte(src, '\\')
	if i < 0 {
		return src, len(src)
	}

	out := a.Alloc(len(src) + 1)
	out = out[:0]
	out = append(out, src[:i]...)
	out = appendDecoded(out, src[i:])
	return out, len(out)
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func appendDecoded(dst, src []byte) []byte {
	for i := 0; i < len(src); {
		c := src[i]
		if c != '\\' {
			dst = append(dst, c)
			i++
			continue
		}
		if i+1 >= len(src) {
			dst = append(dst, c)
			i++
			continue
		}
		esc := src[i+1]
		switch esc {
		case '"':
			dst = append(dst, '"')
			i += 2
		case '\\':
			dst = append(dst, '\\')
			i += 2
		case '/':
			dst = append(dst, '/')
			i += 2
		case 'b':
			dst = append(dst, '\b')
			i += 2
		case 'f':
			dst = append(dst, '\f')
			i += 2
		case 'n':
			dst = append(dst, '\n')
			i += 2
		case 'r':
			dst = append(dst, '\r')
			i += 2
		case 't':
			dst = append(dst, '\t')
			i += 2
		case 'u':
			var n int
			dst, n = appendDecodedUnicodeEscape(dst, src[i:])
			i += n
		default:
			dst = append(dst, c)
			i++
		}
	}
	return dst
}

// appendDecodedUnicodeEscape decodes a single \uXXXX escape (and, if it is
// a high surrogate, the following \uXXXX low surrogate) starting at src[0].
// It returns the extended dst and the number of source bytes consumed.
func appendDecodedUnicodeEscape(dst, src []byte) ([]byte, int) {
	// src[0:2] == "\u"; need 4 more hex digits.
	if len(src) < 6 {
		return append(dst, src...), len(src)
	}
	hi, ok := parseHex4(src[2:6])
	if !ok {
		return append(dst, src[:6]...), 6
	}
	if hi < 0xD800 || hi > 0xDBFF {
		return appendRune(dst, rune(hi)), 6
	}
	// High surrogate: need a following \uXXXX low surrogate.
	if len(src) < 12 || src[6] != '\\' || src[7] != 'u' {
		return append(dst, src[:6]...), 6
	}
	lo, ok := parseHex4(src[8:12])
	if !ok || lo < 0xDC00 || lo > 0xDFFF {
		return append(dst, src[:6]...), 6
	}
	cp := rune(((hi - 0xD800) << 10) + (lo - 0xDC00) + 0x10000)
	return appendRune(dst, cp), 12
}

func parseHex4(s []byte) (int, bool) {
	v := 0
	for i := 0; i < 4; i++ {
		c := s[i]
		var d int
		switch {
		case c >= '0' && c <= '9':
			d = int(c - '0')
		case c >= 'a' && c <= 'f':
			d = int(c-'a') + 10
		case c >= 'A' && c <= 'F':
			d = int(c-'A') + 10
		default:
			return 0, false
		}
		v = v<<4 | d
	}
	return v, true
}

// appendRune appends the UTF-8 encoding of r to dst, following the
// standard 1/2/3/4-byte production rules for code points < 0x110000.
func appendRune(dst []byte, r rune) []byte {
	switch {
	case r < 0x80:
		return append(dst, byte(r))
	case r < 0x800:
		return append(dst, byte(0xC0|r>>6), byte(0x80|r&0x3F))
	case r < 0x10000:
		return append(dst, byte(0xE0|r>>12), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
	default:
		return append(dst, byte(0xF0|r>>18), byte(0x80|(r>>12)&0x3F), byte(0x80|(r>>6)&0x3F), byte(0x80|r&0x3F))
	}
}
