package diag

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"decaf/internal/source"
)

type recordingFlusher struct {
	calls int
}

func (f *recordingFlusher) Flush() error {
	f.calls++
	return nil
}

func TestErrorReporterClassicOutput(t *testing.T) {
	tests := []struct {
		name string
		emit func(r *ErrorReporter)
		want string
	}{
		{
			name: "unterminated comment has no line",
			emit: func(r *ErrorReporter) { r.UntermComment() },
			want: "\n*** Error.\n*** Input ends with unterminated comment\n\n",
		},
		{
			name: "invalid directive",
			emit: func(r *ErrorReporter) { r.InvalidDirective(7) },
			want: "\n*** Error line 7.\n*** Invalid # directive\n\n",
		},
		{
			name: "long identifier",
			emit: func(r *ErrorReporter) {
				r.LongIdentifier(source.PointLocation(source.LineCol{Line: 3, Col: 1}), "abc")
			},
			want: "\n*** Error line 3.\n*** Identifier too long: \"abc\"\n\n",
		},
		{
			name: "unterminated string",
			emit: func(r *ErrorReporter) {
				r.UntermString(source.PointLocation(source.LineCol{Line: 1, Col: 5}), "hello")
			},
			want: "\n*** Error line 1.\n*** Unterminated string constant: hello\n\n",
		},
		{
			name: "unrecognized char",
			emit: func(r *ErrorReporter) {
				r.UnrecogChar(source.PointLocation(source.LineCol{Line: 12, Col: 2}), '@')
			},
			want: "\n*** Error line 12.\n*** Unrecognized char: '@'\n\n",
		},
		{
			name: "generic message without location",
			emit: func(r *ErrorReporter) { r.OutputError(nil, "something broke") },
			want: "\n*** Error.\n*** something broke\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r := NewErrorReporter(&buf, nil)
			tt.emit(r)
			if buf.String() != tt.want {
				t.Fatalf("output mismatch:\nwant %q\ngot  %q", tt.want, buf.String())
			}
			if r.NumErrors() != 1 {
				t.Fatalf("NumErrors = %d, want 1", r.NumErrors())
			}
		})
	}
}

func TestErrorReporterIgnoresNonErrors(t *testing.T) {
	var buf bytes.Buffer
	r := NewErrorReporter(&buf, nil)
	r.Report(New(SevWarning, IOCacheError, source.Span{}, nil, "just a hint"))
	if buf.Len() != 0 || r.NumErrors() != 0 {
		t.Fatalf("warning must not be printed or counted: %q, %d", buf.String(), r.NumErrors())
	}
}

func TestErrorReporterFlushesBeforeWriting(t *testing.T) {
	f := &recordingFlusher{}
	r := NewErrorReporter(&bytes.Buffer{}, nil).FlushBefore(f)
	r.UntermComment()
	r.InvalidDirective(1)
	if f.calls != 2 {
		t.Fatalf("flush calls = %d, want 2", f.calls)
	}
}

func TestSharedCounterAcrossReporters(t *testing.T) {
	counter := &Counter{}
	a := NewErrorReporter(nil, counter)
	b := NewErrorReporter(nil, counter)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); a.UntermComment() }()
		go func() { defer wg.Done(); b.InvalidDirective(2) }()
	}
	wg.Wait()

	if got := counter.Load(); got != 100 {
		t.Fatalf("counter = %d, want 100", got)
	}
	if a.NumErrors() != b.NumErrors() {
		t.Fatal("reporters sharing a counter must agree")
	}
}

func TestLexicalConstructors(t *testing.T) {
	loc := source.NewLocation(source.LineCol{Line: 2, Col: 1}, source.LineCol{Line: 2, Col: 4})

	d := InvalidDirective(source.Span{}, 9)
	if d.Loc == nil || d.Loc.HasColumns() || d.Line() != 9 {
		t.Errorf("InvalidDirective location = %+v", d.Loc)
	}
	if d := UntermComment(source.Span{}); d.Loc != nil || d.Line() != 0 {
		t.Errorf("UntermComment must not carry a location")
	}
	if d := UnrecogChar(source.Span{}, loc, 'é'); d.Message != "Unrecognized char: 'é'" {
		t.Errorf("UnrecogChar message = %q", d.Message)
	}
	long := strings.Repeat("x", 40)
	if d := LongIdentifier(source.Span{}, loc, long); d.Message != `Identifier too long: "`+long+`"` || d.Code != LexIdentTooLong {
		t.Errorf("LongIdentifier = %+v", d)
	}
}
