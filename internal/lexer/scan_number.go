package lexer

import (
	"decaf/internal/token"
)

// scanNumber recognises
//
//	decimal  [0-9]+
//	hex      0[xX][0-9a-fA-F]+
//	double   [0-9]+ '.' [0-9]* ([eE][+-]?[0-9]+)?
//
// Prefixes and exponents are only consumed when a digit follows, so "0x"
// is IntLit "0" followed by Ident "x" and "1.5E" is DoubleLit "1.5"
// followed by Ident "E". Numbers never produce diagnostics.
func (lx *Lexer) scanNumber() token.Token {
	lx.state = StateNumber
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' && (b1 == 'x' || b1 == 'X') && IsHexDigit(lx.cursor.PeekAt(2)) {
		lx.cursor.BumpN(2)
		for IsHexDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.emit(token.IntLit, start)
	}

	lx.eatDigits()
	if lx.cursor.Peek() != '.' {
		return lx.emit(token.IntLit, start)
	}

	lx.cursor.Bump() // '.'
	lx.eatDigits()
	if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
		switch sign := lx.cursor.PeekAt(1); {
		case IsDigit(sign):
			lx.cursor.Bump()
			lx.eatDigits()
		case (sign == '+' || sign == '-') && IsDigit(lx.cursor.PeekAt(2)):
			lx.cursor.BumpN(2)
			lx.eatDigits()
		}
	}
	return lx.emit(token.DoubleLit, start)
}

func (lx *Lexer) eatDigits() {
	for IsDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
