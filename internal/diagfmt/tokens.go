package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"decaf/internal/token"
)

type TokenOutput struct {
	Kind    string   `json:"kind"`
	Text    string   `json:"text,omitempty"`
	Start   uint32   `json:"start"`
	End     uint32   `json:"end"`
	Loc     string   `json:"loc"`
	Leading []string `json:"leading,omitempty"`
	Define  []string `json:"define,omitempty"`
}

func leadingKinds(tok token.Token) []string {
	if len(tok.Leading) == 0 {
		return nil
	}
	leading := make([]string, 0, len(tok.Leading))
	for _, tv := range tok.Leading {
		leading = append(leading, tv.Kind.String())
	}
	return leading
}

func directives(tok token.Token) []string {
	var out []string
	for _, tv := range tok.Leading {
		if tv.Directive != nil {
			out = append(out, tv.Directive.Name+" "+tv.Directive.Macro)
		}
	}
	return out
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		var b strings.Builder
		fmt.Fprintf(&b, "%3d: %-14s", i+1, tok.Kind.String())
		if tok.Text != "" {
			fmt.Fprintf(&b, " %q", tok.Text)
		}
		fmt.Fprintf(&b, " at %s", tok.Loc)
		if leading := leadingKinds(tok); len(leading) > 0 {
			fmt.Fprintf(&b, " (leading: %s)", strings.Join(leading, ", "))
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:    tok.Kind.String(),
			Text:    tok.Text,
			Start:   tok.Span.Start,
			End:     tok.Span.End,
			Loc:     tok.Loc.String(),
			Leading: leadingKinds(tok),
			Define:  directives(tok),
		})
		if tok.Kind == token.EOF {
			break
		}
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
