/*
File    : go-fresh/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

// isDigit reports whether c is an ASCII decimal digit ('0'..'9').
// This is used in the hot path for number scanning.
func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// isLetter reports whether c is an ASCII letter or underscore.
// Identifiers may start with any of these.
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

// isLetterOrDigit reports whether c may continue an identifier.
func isLetterOrDigit(c byte) bool {
	return isLetter(c) || isDigit(c)
}

// escapeChar converts an escape sequence character to its actual byte value.
// Only the five sequences of the language are valid; anything else is an
// InvalidSyntaxError at the call site.
//
// Example:
//
//	escapeChar('n') -> ('\n', true)
//	escapeChar('x') -> (0, false)
func escapeChar(c byte) (byte, bool) {
	switch c {
	case 'n':
		return '\n', true // Newline
	case 't':
		return '\t', true // Tab
	case '\\':
		return '\\', true // Backslash
	case '"':
		return '"', true // Double quote
	case '\'':
		return '\'', true // Single quote
	default:
		return 0, false // Invalid escape sequence
	}
}
