package token

import "decaf/internal/source"

// Directive is a parsed '#' line.
type Directive struct {
	Name  string // "define" or "undef"
	Macro string
	Value string // replacement text for define, trimmed
	Line  uint32
}

type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaLineComment
	TriviaBlockComment
	TriviaDirective
	TriviaSkipped // unrecognised character, already reported
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaDirective:
		return "Directive"
	case TriviaSkipped:
		return "Skipped"
	}
	return "Unknown"
}

type Trivia struct {
	Kind      TriviaKind
	Span      source.Span
	Text      string
	Directive *Directive // только для TriviaDirective; nil, если директива некорректна
}
