package lexer

import (
	"decaf/internal/diag"
	"decaf/internal/token"
)

// scanIdentOrKeyword сканирует идентификатор и проверяет через LookupKeyword.
// Identifiers over the limit are reported and truncated, not rejected.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	lx.state = StateIdentOrKeyword
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for IsIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	tok := lx.emit(token.Ident, start)
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
		return tok
	}

	if limit := lx.opts.maxIdentLen(); len(tok.Text) > limit {
		lx.report(diag.LongIdentifier(tok.Span, tok.Loc, tok.Text))
		tok.Text = tok.Text[:limit]
	}
	return tok
}
