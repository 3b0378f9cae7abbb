package lexer

import (
	"maps"
	"unicode/utf8"

	"decaf/internal/diag"
	"decaf/internal/source"
	"decaf/internal/token"
)

// TokenSource is what a parser pulls tokens from.
type TokenSource interface {
	Next() token.Token
}

var _ TokenSource = (*Lexer)(nil)

// Lexer turns one file into a stream of tokens. It is not safe for
// concurrent use; scan several files with several lexers.
type Lexer struct {
	file    *source.File
	cursor  Cursor
	opts    Options
	state   State
	look    *token.Token   // 1 элементный буфер для токена
	hold    []token.Trivia // накопленные leading trivia
	defines map[string]string
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:    file,
		cursor:  NewCursor(file),
		opts:    opts,
		state:   StateStart,
		defines: make(map[string]string),
	}
}

// Next returns the next significant token with its Leading trivia.
// Malformed input is reported and skipped; once EOF has been returned,
// every later call returns EOF again.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	for {
		if lx.state == StateDone {
			return lx.eof()
		}
		lx.state = StateStart
		lx.collectLeadingTrivia()
		if lx.state == StateDone || lx.cursor.EOF() {
			lx.state = StateDone
			return lx.eof()
		}

		ch := lx.cursor.Peek()
		var tok token.Token
		ok := true
		switch {
		case IsIdentStart(ch):
			tok = lx.scanIdentOrKeyword()
		case IsDigit(ch):
			tok = lx.scanNumber()
		case ch == '"':
			tok = lx.scanString()
		case IsOperatorChar(ch):
			tok, ok = lx.scanOperator()
		default:
			ok = false
		}
		if !ok {
			lx.skipUnrecognized()
			continue
		}

		lx.state = StateStart
		tok.Leading = lx.takeHold()
		return tok
	}
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	if lx.look != nil {
		return *lx.look
	}
	t := lx.Next()
	lx.look = &t
	return t
}

// State reports where the state machine currently is.
func (lx *Lexer) State() State {
	return lx.state
}

// Pos returns the position of the next unread character.
func (lx *Lexer) Pos() source.LineCol {
	return lx.cursor.Pos()
}

// Defines returns a copy of the macros defined so far by '#define'.
func (lx *Lexer) Defines() map[string]string {
	return maps.Clone(lx.defines)
}

// eof builds the terminal token. Trivia still held (trailing comments,
// directives) is attached so nothing consumed is lost.
func (lx *Lexer) eof() token.Token {
	at := lx.cursor.Mark()
	return token.Token{
		Kind:    token.EOF,
		Span:    lx.cursor.SpanFrom(at),
		Loc:     lx.cursor.LocFrom(at),
		Leading: lx.takeHold(),
	}
}

func (lx *Lexer) takeHold() []token.Trivia {
	h := lx.hold
	lx.hold = nil
	return h
}

// skipUnrecognized reports and consumes one character no rule accepts.
// The character is kept as trivia so token text plus trivia still covers
// the whole input.
func (lx *Lexer) skipUnrecognized() {
	start := lx.cursor.Mark()
	r := lx.cursor.BumpRune()

	sp := lx.cursor.SpanFrom(start)
	loc := lx.cursor.LocFrom(start)
	if r == utf8.RuneError && sp.End-sp.Start == 1 {
		lx.report(diag.UnrecogByte(sp, loc, lx.file.Content[sp.Start]))
	} else {
		lx.report(diag.UnrecogChar(sp, loc, r))
	}
	lx.hold = append(lx.hold, token.Trivia{
		Kind: token.TriviaSkipped,
		Span: sp,
		Text: lx.cursor.Text(start),
	})
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	return token.Token{
		Kind: kind,
		Span: lx.cursor.SpanFrom(start),
		Loc:  lx.cursor.LocFrom(start),
		Text: lx.cursor.Text(start),
	}
}
