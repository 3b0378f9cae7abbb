package lexer

import (
	"decaf/internal/diag"
	"decaf/internal/token"
)

// scanString reads "..." on a single line; there are no escapes.
// A newline or end of input before the closing quote is reported and the
// consumed text becomes an Invalid token. The newline itself is left for
// the trivia scanner, so the next token starts on the following line.
func (lx *Lexer) scanString() token.Token {
	lx.state = StateString
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'

	for {
		if lx.cursor.EOF() || lx.cursor.Peek() == '\n' || lx.atCRLineEnd() {
			tok := lx.emit(token.Invalid, start)
			lx.report(diag.UntermString(tok.Span, tok.Loc, tok.Text[1:]))
			return tok
		}
		if lx.cursor.Bump() == '"' {
			return lx.emit(token.StringLit, start)
		}
	}
}

// atCRLineEnd reports a '\r' that ends the line (before '\n' or EOF).
// Files from FileSet.Load are already folded; virtual files may not be.
func (lx *Lexer) atCRLineEnd() bool {
	if lx.cursor.Peek() != '\r' {
		return false
	}
	_, b1, ok := lx.cursor.Peek2()
	return !ok || b1 == '\n'
}
