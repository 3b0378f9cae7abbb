package token_test

import (
	"testing"

	"decaf/internal/token"
)

func TestKindCategories(t *testing.T) {
	tests := []struct {
		kind     token.Kind
		keyword  bool
		literal  bool
		operator bool
	}{
		{token.Ident, false, false, false},
		{token.EOF, false, false, false},
		{token.KwVoid, true, false, false},
		{token.KwReadLine, true, false, false},
		{token.KwNewArray, true, false, false},
		{token.NullLit, false, true, false},
		{token.BoolLit, false, true, false},
		{token.StringLit, false, true, false},
		{token.Plus, false, false, true},
		{token.Dims, false, false, true},
		{token.OrOr, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			tok := token.Token{Kind: tt.kind}
			if tok.IsKeyword() != tt.keyword {
				t.Errorf("IsKeyword = %v", tok.IsKeyword())
			}
			if tok.IsLiteral() != tt.literal {
				t.Errorf("IsLiteral = %v", tok.IsLiteral())
			}
			if tok.IsOperator() != tt.operator {
				t.Errorf("IsOperator = %v", tok.IsOperator())
			}
		})
	}
}

func TestKindString(t *testing.T) {
	if got := token.DoubleLit.String(); got != "DoubleLit" {
		t.Errorf("DoubleLit.String() = %q", got)
	}
	if got := token.Kind(250).String(); got != "Kind(250)" {
		t.Errorf("out of range String() = %q", got)
	}
	if got := token.TriviaBlockComment.String(); got != "BlockComment" {
		t.Errorf("TriviaBlockComment.String() = %q", got)
	}
}

func TestLookupKeyword(t *testing.T) {
	cases := map[string]token.Kind{
		"void":        token.KwVoid,
		"NewArray":    token.KwNewArray,
		"ReadInteger": token.KwReadInteger,
		"true":        token.BoolLit,
		"false":       token.BoolLit,
		"null":        token.NullLit,
	}
	for lexeme, want := range cases {
		got, ok := token.LookupKeyword(lexeme)
		if !ok || got != want {
			t.Errorf("LookupKeyword(%q) = %v, %v; want %v", lexeme, got, ok, want)
		}
	}

	// регистр важен
	for _, s := range []string{"new", "Void", "print", "TRUE", "main"} {
		if _, ok := token.LookupKeyword(s); ok {
			t.Errorf("LookupKeyword(%q) must fail", s)
		}
	}
}

func TestKeywordsCopy(t *testing.T) {
	kw := token.Keywords()
	delete(kw, "void")
	if _, ok := token.LookupKeyword("void"); !ok {
		t.Fatal("mutating the copy must not affect the table")
	}
}
