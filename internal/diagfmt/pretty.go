package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"decaf/internal/diag"
	"decaf/internal/source"
)

type palette struct {
	err, warn, note, code, gutter, caret, path *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		note:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Faint),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgRed, color.Bold),
		path:   color.New(color.Bold),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.note, p.code, p.gutter, p.caret, p.path} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.note
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
//
//	<path>:<line>:<col>: <sev> <CODE>: <Message>
//
// затем строку исходника с подчёркиванием ^~~~ по Location, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for i := range bag.Items() {
		d := bag.Items()[i]
		if err := prettyOne(w, &d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d *diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	loc, hasLoc := locate(d, fs)
	path := formatPath(fs, d.Primary.File, opts.PathMode)

	var head strings.Builder
	if path != "" {
		head.WriteString(path)
		head.WriteString(":")
	}
	if hasLoc {
		if loc.HasColumns() {
			fmt.Fprintf(&head, "%d:%d:", loc.First.Line, loc.First.Col)
		} else {
			fmt.Fprintf(&head, "%d:", loc.Line())
		}
	}
	prefix := p.path.Sprint(head.String())
	if prefix != "" {
		prefix += " "
	}
	if _, err := fmt.Fprintf(w, "%s%s %s: %s\n",
		prefix,
		p.severity(d.Severity).Sprint(d.Severity.Label()),
		p.code.Sprint(d.Code.ID()),
		d.Message,
	); err != nil {
		return err
	}

	if hasLoc && fs != nil {
		if f, ok := fs.Lookup(d.Primary.File); ok {
			if err := writeSnippet(w, f, loc, opts.Context, p); err != nil {
				return err
			}
		}
	}

	if opts.ShowNotes {
		for _, n := range d.Notes {
			notePath := formatPath(fs, n.Span.File, opts.PathMode)
			if fs != nil {
				if _, ok := fs.Lookup(n.Span.File); ok {
					nl := fs.ResolveLocation(n.Span)
					notePath = fmt.Sprintf("%s:%d:%d", notePath, nl.First.Line, nl.First.Col)
				}
			}
			if _, err := fmt.Fprintf(w, "  %s %s: %s\n", p.note.Sprint("note"), notePath, n.Msg); err != nil {
				return err
			}
		}
	}
	return nil
}

// writeSnippet prints context lines and the primary line with a caret
// run under loc. Multi-line locations are underlined to the end of the
// first line; line-only locations get no caret.
func writeSnippet(w io.Writer, f *source.File, loc source.Location, context int, p palette) error {
	line := loc.Line()
	first := line
	if context > 0 && uint32(context) < line {
		first = line - uint32(context)
	} else if context > 0 {
		first = 1
	}
	width := len(fmt.Sprint(line))

	for n := first; n <= line; n++ {
		text := expandTabs(f.GetLine(n))
		if _, err := fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", width, n), text); err != nil {
			return err
		}
	}
	if !loc.HasColumns() {
		return nil
	}

	src := f.GetLine(line)
	startCol := int(loc.First.Col)
	var endCol int
	if loc.Last.Line == loc.First.Line {
		endCol = int(loc.Last.Col)
	} else {
		endCol = columnCount(src)
	}
	pad := displayWidth(src, startCol-1)
	span := max(displayWidth(src, endCol)-pad, 1)

	marker := "^" + strings.Repeat("~", span-1)
	_, err := fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), strings.Repeat(" ", pad), p.caret.Sprint(marker))
	return err
}

// displayWidth is the terminal width of the first cols characters of s.
func displayWidth(s string, cols int) int {
	w := 0
	for i, r := range []rune(s) {
		if i >= cols {
			break
		}
		if r == '\t' {
			w += 4
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func columnCount(s string) int {
	return len([]rune(s))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
