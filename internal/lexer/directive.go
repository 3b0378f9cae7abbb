package lexer

import (
	"strings"

	"decaf/internal/diag"
	"decaf/internal/token"
)

// scanDirective consumes a '#' line up to (not including) the newline.
//
//	#define NAME [replacement]
//	#undef NAME
//
// Anything else is reported with a line-only location. Either way the
// line becomes TriviaDirective; Directive is nil for malformed lines.
func (lx *Lexer) scanDirective() {
	lx.state = StateDirective
	start := lx.cursor.Mark()
	line := lx.cursor.Line
	for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}

	text := lx.cursor.Text(start)
	tv := token.Trivia{
		Kind: token.TriviaDirective,
		Span: lx.cursor.SpanFrom(start),
		Text: text,
	}

	dir, ok := parseDirective(text)
	if ok {
		dir.Line = line
		switch dir.Name {
		case "define":
			lx.defines[dir.Macro] = dir.Value
		case "undef":
			delete(lx.defines, dir.Macro)
		}
		tv.Directive = &dir
	} else {
		lx.report(diag.InvalidDirective(tv.Span, line))
	}

	lx.hold = append(lx.hold, tv)
	lx.state = StateStart
}

// parseDirective разбирает строку директивы, начиная с '#'.
func parseDirective(text string) (token.Directive, bool) {
	rest, ok := strings.CutPrefix(text, "#")
	if !ok {
		return token.Directive{}, false
	}
	rest = strings.TrimRight(rest, " \t\r\v\f")

	name, rest := cutIdent(rest)
	switch name {
	case "define", "undef":
	default:
		return token.Directive{}, false
	}
	if rest == "" || !isBlank(rest[0]) {
		return token.Directive{}, false
	}

	macro, rest := cutIdent(strings.TrimLeft(rest, " \t\v\f"))
	if macro == "" {
		return token.Directive{}, false
	}
	if rest != "" && !isBlank(rest[0]) {
		return token.Directive{}, false
	}
	value := strings.TrimSpace(rest)

	if name == "undef" && value != "" {
		return token.Directive{}, false
	}
	return token.Directive{Name: name, Macro: macro, Value: value}, true
}

// cutIdent splits a leading identifier off s.
func cutIdent(s string) (ident, rest string) {
	if s == "" || !IsIdentStart(s[0]) {
		return "", s
	}
	i := 1
	for i < len(s) && IsIdentContinue(s[i]) {
		i++
	}
	return s[:i], s[i:]
}
