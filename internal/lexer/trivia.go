package lexer

import (
	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

// collectLeadingTrivia consumes whitespace, comments and directives into
// lx.hold. It stops before the first significant byte, at EOF, or after an
// unterminated block comment (which moves the lexer to StateDone).
func (lx *Lexer) collectLeadingTrivia() {
	for !lx.cursor.EOF() {
		ch := lx.cursor.Peek()
		switch {
		case ch == '\n':
			start := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.pushTrivia(token.TriviaNewline, start)

		case isBlank(ch):
			start := lx.cursor.Mark()
			for isBlank(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)

		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			lx.scanLineComment()

		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			if !lx.scanBlockComment() {
				return
			}

		case ch == '#' && lx.atLineStart():
			lx.scanDirective()

		default:
			return
		}
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Text: lx.cursor.Text(start),
	})
}

// scanLineComment: "//" до конца строки, перевод строки остаётся.
func (lx *Lexer) scanLineComment() {
	lx.state = StateLineComment
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	lx.pushTrivia(token.TriviaLineComment, start)
	lx.state = StateStart
}

// scanBlockComment reads a non-nesting /* ... */ comment. It returns false
// when the input ends first; the comment is then reported once and the
// lexer is done.
func (lx *Lexer) scanBlockComment() bool {
	lx.state = StateBlockComment
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	for !lx.cursor.EOF() {
		if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
			lx.cursor.BumpN(2)
			lx.pushTrivia(token.TriviaBlockComment, start)
			lx.state = StateStart
			return true
		}
		lx.cursor.Bump()
	}

	lx.pushTrivia(token.TriviaBlockComment, start)
	opening := source.Span{File: lx.file.ID, Start: start.Offset(), End: start.Offset() + 2}
	diag.NewReportBuilder(lx.opts.Reporter, diag.UntermComment(lx.cursor.SpanFrom(start))).
		WithNote(opening, "comment opened here").
		Emit()
	lx.state = StateDone
	return false
}

// atLineStart reports whether only blanks precede the cursor on its line.
func (lx *Lexer) atLineStart() bool {
	content := lx.file.Content
	for i := int(lx.cursor.Off) - 1; i >= 0; i-- {
		switch b := content[i]; {
		case b == '\n':
			return true
		case !isBlank(b):
			return false
		}
	}
	return true
}
