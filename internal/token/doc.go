// Package token defines lexical token kinds and trivia for the Decaf scanner.
// Invariants:
//   - Token.Text is the source text the token was recognised from, except
//     for over-long identifiers, whose Text is truncated to the limit.
//   - Token.Span covers the consumed bytes; Token.Loc is the same range
//     in 1-based line/column form with an inclusive end.
//   - Whitespace, comments and '#' directives never appear in the main
//     token stream; they are attached to the next token as Leading trivia.
//   - true/false are keywords that produce BoolLit; null produces NullLit.
package token
