package lexer

// Character classes. All predicates are pure and total over bytes.
// Decaf source is ASCII; any byte >= 0x80 belongs to no class.

// IsIdentStart reports whether b may begin an identifier.
func IsIdentStart(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// IsIdentContinue reports whether b may appear after the first identifier character.
func IsIdentContinue(b byte) bool {
	return IsIdentStart(b) || IsDigit(b) || b == '_'
}

func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

func IsHexDigit(b byte) bool {
	return IsDigit(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

// IsWhitespace reports blanks and line breaks.
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// isBlank is whitespace that does not end a line.
func isBlank(b byte) bool {
	return b != '\n' && IsWhitespace(b)
}

// IsOperatorChar reports whether b can start an operator or punctuation token.
// '&' and '|' only form operators when doubled; the scanner checks that.
func IsOperatorChar(b byte) bool {
	switch b {
	case '+', '-', '*', '/', '%', '<', '>', '=', '!', '&', '|',
		';', ',', '.', '[', ']', '(', ')', '{', '}':
		return true
	}
	return false
}
