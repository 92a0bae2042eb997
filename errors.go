package doctree

import "fmt"

// SyntaxError reports a JSON parse failure, in the idiom of a8m-djson's
// SyntaxError (msg + byte Offset): a concrete error type satisfying the
// standard error interface, with package-level sentinels for the few
// failures that don't carry a useful custom message.
type SyntaxError struct {
	Msg    string
	Offset int
}

func (e *SyntaxError) Error() string {
	if e.Msg == "" {
		return "doctree: syntax error"
	}
	return e.Msg
}

// The four sentinels below are reachable through an error node's Err()
// method, which callers can test with errors.Is/errors.As the normal way:
// if errors.Is(n.Err(), doctree.ErrLeadingZero) { ... }. Parse failures that
// don't match one of these shapes carry an unexported ad hoc *SyntaxError
// instead.
var (
	// ErrUnexpectedEOF is returned when the input ends mid-token.
	ErrUnexpectedEOF = &SyntaxError{Msg: "unexpected end of JSON input", Offset: -1}
	// ErrTrailingComma is returned for a comma immediately before a
	// closing bracket or brace.
	ErrTrailingComma = &SyntaxError{Msg: "trailing comma", Offset: -1}
	// ErrLeadingZero is returned for a number with a disallowed leading
	// zero, e.g. "01".
	ErrLeadingZero = &SyntaxError{Msg: "invalid number: leading zero", Offset: -1}
	// ErrBOM is returned when the input begins with a UTF-8 byte order
	// mark; this parser treats it as an error rather than skipping it.
	ErrBOM = &SyntaxError{Msg: "unexpected byte order mark", Offset: -1}
)

// formatParseError renders a parse error as
// "Error at row R, column: C (N bytes into json)".
func formatParseError(row, col, bytesIn int) string {
	return fmt.Sprintf("Error at row %d, column: %d (%d bytes into json)", row, col, bytesIn)
}

// rowColumnOf computes (row, column) for byte offset pos within src. A
// newline increments the row and resets the column; a backslash causes the
// scan to skip the following byte too, an approximation of ignoring
// escaped newlines inside string literals that over-skips outside of them.
// This quirk is intentionally preserved rather than special-cased away.
func rowColumnOf(src []byte, pos int) (row, col int) {
	row, col = 1, 1
	for i := 0; i < pos && i < len(src); i++ {
		if src[i] == '\\' {
			i++
			col += 2
			continue
		}
		if src[i] == '\n' {
			row++
			col = 1
			continue
		}
		col++
	}
	return row, col
}
