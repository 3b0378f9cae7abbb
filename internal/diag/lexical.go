package diag

import (
	"strings"

	"decaf/internal/source"
)

// Lexical diagnostic constructors. Each one owns its message template so
// producers never assemble messages from format strings.

// UntermComment reports a block comment still open at end of input.
// It carries no location.
func UntermComment(primary source.Span) Diagnostic {
	return NewError(LexUnterminatedComment, primary, nil, "Input ends with unterminated comment")
}

// InvalidDirective reports a malformed '#' line at line granularity.
func InvalidDirective(primary source.Span, line uint32) Diagnostic {
	loc := source.LineOnlyLocation(line)
	return NewError(LexInvalidDirective, primary, &loc, "Invalid # directive")
}

// LongIdentifier reports an identifier over the length limit.
func LongIdentifier(primary source.Span, loc source.Location, ident string) Diagnostic {
	var b strings.Builder
	b.Grow(len(ident) + 24)
	b.WriteString(`Identifier too long: "`)
	b.WriteString(ident)
	b.WriteByte('"')
	return NewError(LexIdentTooLong, primary, &loc, b.String())
}

// UntermString reports a string literal cut by a newline or end of input.
// partial is the text after the opening quote.
func UntermString(primary source.Span, loc source.Location, partial string) Diagnostic {
	return NewError(LexUnterminatedString, primary, &loc, "Unterminated string constant: "+partial)
}

// UnrecogChar reports a character no token rule accepts.
func UnrecogChar(primary source.Span, loc source.Location, ch rune) Diagnostic {
	return NewError(LexUnrecognizedChar, primary, &loc, "Unrecognized char: '"+string(ch)+"'")
}

// UnrecogByte reports a byte that is not valid UTF-8, printed as \xNN.
func UnrecogByte(primary source.Span, loc source.Location, b byte) Diagnostic {
	const hex = "0123456789ABCDEF"
	msg := []byte("Unrecognized char: '\\x")
	msg = append(msg, hex[b>>4], hex[b&0x0F], '\'')
	return NewError(LexUnrecognizedChar, primary, &loc, string(msg))
}
