package lexer

import (
	"decaf/internal/token"
)

// scanOperator: сначала двухсимвольные, затем односимвольные.
// It reports ok=false without consuming anything when the input is a lone
// '&' or '|', which Decaf does not have.
func (lx *Lexer) scanOperator() (token.Token, bool) {
	start := lx.cursor.Mark()

	switch {
	case lx.try2('<', '='):
		return lx.emit(token.LtEq, start), true
	case lx.try2('>', '='):
		return lx.emit(token.GtEq, start), true
	case lx.try2('=', '='):
		return lx.emit(token.EqEq, start), true
	case lx.try2('!', '='):
		return lx.emit(token.BangEq, start), true
	case lx.try2('&', '&'):
		return lx.emit(token.AndAnd, start), true
	case lx.try2('|', '|'):
		return lx.emit(token.OrOr, start), true
	case lx.try2('[', ']'):
		return lx.emit(token.Dims, start), true
	}

	var kind token.Kind
	switch lx.cursor.Peek() {
	case '+':
		kind = token.Plus
	case '-':
		kind = token.Minus
	case '*':
		kind = token.Star
	case '/':
		kind = token.Slash
	case '%':
		kind = token.Percent
	case '<':
		kind = token.Lt
	case '>':
		kind = token.Gt
	case '=':
		kind = token.Assign
	case '!':
		kind = token.Bang
	case ';':
		kind = token.Semicolon
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	default:
		return token.Token{}, false
	}
	lx.cursor.Bump()
	return lx.emit(kind, start), true
}

// try2 пробует "съесть" 2 байта, если совпадает.
func (lx *Lexer) try2(a, b byte) bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != a || b1 != b {
		return false
	}
	lx.cursor.BumpN(2)
	return true
}
