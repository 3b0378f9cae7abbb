package diag

import (
	"io"
	"sync"

	"decaf/internal/source"
)

type flusher interface {
	Flush() error
}

// ErrorReporter prints every error in the classic format and counts it.
// It is an observer: it never stops the caller and swallows write errors.
type ErrorReporter struct {
	mu      sync.Mutex
	w       io.Writer
	counter *Counter
	before  flusher // e.g. buffered stdout, flushed so output interleaves sanely
}

// NewErrorReporter creates a reporter writing to w. A nil counter gets a
// private one.
func NewErrorReporter(w io.Writer, counter *Counter) *ErrorReporter {
	if counter == nil {
		counter = &Counter{}
	}
	return &ErrorReporter{w: w, counter: counter}
}

// FlushBefore registers a writer that is flushed before each error is printed.
func (r *ErrorReporter) FlushBefore(f flusher) *ErrorReporter {
	r.before = f
	return r
}

// Counter returns the shared error counter.
func (r *ErrorReporter) Counter() *Counter {
	return r.counter
}

// NumErrors returns how many errors were reported through the counter.
func (r *ErrorReporter) NumErrors() int {
	return r.counter.Load()
}

// OutputError counts one error and prints it; loc may be nil.
func (r *ErrorReporter) OutputError(loc *source.Location, msg string) {
	r.counter.Inc()

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.before != nil {
		_ = r.before.Flush()
	}
	if r.w != nil {
		_ = WriteClassic(r.w, loc, msg)
	}
}

// Report implements Reporter. Only errors are counted and printed.
func (r *ErrorReporter) Report(d Diagnostic) {
	if d.Severity < SevError {
		return
	}
	r.OutputError(d.Loc, d.Message)
}

func (r *ErrorReporter) UntermComment() {
	r.Report(UntermComment(source.Span{}))
}

func (r *ErrorReporter) InvalidDirective(line uint32) {
	r.Report(InvalidDirective(source.Span{}, line))
}

func (r *ErrorReporter) LongIdentifier(loc source.Location, ident string) {
	r.Report(LongIdentifier(source.Span{}, loc, ident))
}

func (r *ErrorReporter) UntermString(loc source.Location, partial string) {
	r.Report(UntermString(source.Span{}, loc, partial))
}

func (r *ErrorReporter) UnrecogChar(loc source.Location, ch rune) {
	r.Report(UnrecogChar(source.Span{}, loc, ch))
}
